package site

// pageShell is the html/template for every page of the web UI.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Heading}} | xrforge</title>
  <style>` + styleCSS + `</style>
</head>
<body>
  <main class="container">
    <h1>xrforge</h1>
    <form method="post" action="/generate" class="prompt-form">
      <label for="prompt">Describe the scene you want</label>
      <textarea id="prompt" name="prompt" rows="4" placeholder="A misty forest with tall trees...">{{.Prompt}}</textarea>
      <div class="controls">
        <select name="topic" aria-label="Topic">
          <option value="">Detect from prompt</option>
          {{- range .Topics}}
          <option value="{{.}}"{{if eq $.Topic .}} selected{{end}}>{{.}}</option>
          {{- end}}
        </select>
        <button type="submit" id="generate-button">Generate WebXR App</button>
      </div>
    </form>
    {{- if .Error}}
    <div class="error-message" role="alert">{{.Error}}</div>
    {{- end}}
    <section id="result-container">
      {{- if .Content}}
      <p class="meta">Topic: <strong>{{.Topic}}</strong>{{if .PreviewURL}} | <a href="{{.PreviewURL}}" target="_blank" rel="noopener">Open preview</a>{{end}}</p>
      {{.Content}}
      {{- else}}
      <h2>{{.Heading}}</h2>
      <p>Enter a prompt above and click 'Generate WebXR App'</p>
      {{- end}}
    </section>
  </main>
</body>
</html>
`

const styleCSS = `
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; background: #f6f8fa; color: #1f2328; }
.container { max-width: 960px; margin: 0 auto; padding: 2rem 1.5rem; }
h1 { margin-top: 0; }
.prompt-form label { display: block; font-weight: 600; margin-bottom: .5rem; }
.prompt-form textarea { width: 100%; box-sizing: border-box; padding: .75rem; font: inherit; border: 1px solid #d0d7de; border-radius: 6px; }
.controls { display: flex; gap: .75rem; margin-top: .75rem; }
.controls select, .controls button { font: inherit; padding: .5rem .9rem; border-radius: 6px; border: 1px solid #d0d7de; }
.controls button { background: #1f883d; color: #fff; border-color: #1a7f37; cursor: pointer; }
.error-message { margin-top: 1rem; padding: .75rem 1rem; background: #ffebe9; border: 1px solid #ff8182; border-radius: 6px; }
#result-container { margin-top: 2rem; }
#result-container pre { overflow-x: auto; padding: 1rem; border-radius: 6px; border: 1px solid #d0d7de; }
.meta { color: #59636e; }
`
