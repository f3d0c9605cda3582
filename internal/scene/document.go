package scene

import (
	"fmt"
	"strings"
	"text/template"
)

// documentSkeleton is the WebXR page every generated document is built from.
const documentSkeleton = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ .Title }}</title>
    <style>
        body {
            background-image: url('{{ .BackgroundURL }}');
            background-attachment: fixed;
            height: 100vh;
            margin: 0;
            overflow: hidden;
            display: flex;
            justify-content: center;
            align-items: center;
        }
        #vr-canvas {
            width: 100%;
            height: 80vh;
            border: none;
        }
        .floating-element {
            position: absolute;
            background-color: rgba(255, 255, 255, 0.3);
            padding: 10px;
            border-radius: 5px;
            box-shadow: 0 0 10px rgba(255,255,255,0.7);
        }
    </style>
</head>
<body>

    <canvas id="vr-canvas"></canvas>

    <script>
        const canvas = document.getElementById('vr-canvas');

        // Basic WebXR setup
        const startVR = async () => {
            if (!canvas.reqVR) {
                alert('WebXR is not supported in this browser.');
                return;
            }

            try {
                await canvas.requestVRDevice();
                const session = canvas.createVRSession('My VR Session');
{{ .Elements }}
                // Keep the session open
                await new Promise(r => session.requestEnd());

                // Teardown
                canvas.endVR();
            } catch (error) {
                console.error('Error starting VR:', error);
            }
        };

        canvas.addEventListener('interactive', startVR);

    </script>
</body>
</html>
`

var documentTemplate = template.Must(template.New("document").Parse(documentSkeleton))

// Document is a generated page together with the topic and assets it was
// built from.
type Document struct {
	Topic  Topic
	Assets SceneAssets
	HTML   string
}

// GenerateDocument returns the complete HTML document for a prompt. The same
// prompt always yields byte-identical output.
func GenerateDocument(prompt string) string {
	return Generate(prompt).HTML
}

// Generate detects the prompt's topic and renders its document.
func Generate(prompt string) Document {
	return GenerateForTopic(DetectTopic(prompt))
}

// GenerateForTopic renders the document for an explicit topic, bypassing
// keyword detection. Unknown topics render the DefaultTopic scene.
func GenerateForTopic(topic Topic) Document {
	if _, ok := assetTable[topic]; !ok {
		topic = DefaultTopic
	}
	assets := LookupAssets(topic)
	return Document{
		Topic:  topic,
		Assets: assets,
		HTML:   render(assets),
	}
}

func render(assets SceneAssets) string {
	var b strings.Builder
	// The template and its inputs are fixed, so execution can only fail on a
	// programming error.
	if err := documentTemplate.Execute(&b, assets); err != nil {
		panic(fmt.Sprintf("scene: rendering document: %v", err))
	}
	return b.String()
}
