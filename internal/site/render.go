package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/xrforge/internal/scene"
)

var (
	pageTmpl = template.Must(template.New("page").Parse(pageShell))

	markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
)

// IndexData is rendered by RenderIndex.
type IndexData struct {
	Prompt string
	Topic  scene.Topic
	Error  string
}

// ResultData is rendered by RenderResult.
type ResultData struct {
	Prompt     string
	Topic      scene.Topic
	Title      string
	Document   string
	PreviewURL string
}

// pageData is what the page shell template sees.
type pageData struct {
	Heading    string
	Prompt     string
	Topic      scene.Topic
	Topics     []scene.Topic
	Error      string
	Content    template.HTML
	PreviewURL string
}

// RenderIndex writes the prompt page. A non-empty Error is shown above the
// result area.
func RenderIndex(w io.Writer, data IndexData) error {
	return pageTmpl.Execute(w, pageData{
		Heading: "Create Your WebXR App",
		Prompt:  data.Prompt,
		Topic:   data.Topic,
		Topics:  scene.Topics(),
		Error:   data.Error,
	})
}

// RenderResult writes the prompt page with the generated document shown as a
// highlighted code block followed by usage instructions.
func RenderResult(w io.Writer, data ResultData) error {
	content, err := RenderMarkdown(resultMarkdown(data.Document))
	if err != nil {
		return err
	}
	return pageTmpl.Execute(w, pageData{
		Heading:    data.Title,
		Prompt:     data.Prompt,
		Topic:      data.Topic,
		Topics:     scene.Topics(),
		Content:    content,
		PreviewURL: data.PreviewURL,
	})
}

// RenderMarkdown converts markdown to HTML. Raw HTML in src is not passed
// through.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func resultMarkdown(document string) string {
	fence := codeFence(document)

	var b strings.Builder
	b.WriteString("## Your WebXR App Code\n\n")
	b.WriteString(fence + "html\n")
	b.WriteString(document)
	if !strings.HasSuffix(document, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(fence + "\n\n")
	b.WriteString("1. Save this HTML file.\n")
	b.WriteString("2. Open it in a modern browser (Chrome, Firefox).\n")
	b.WriteString("3. Enable WebXR for VR support.\n")
	return b.String()
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
