package report

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const briefingCSS = `
body{font-family:Georgia,serif;color:#1c1917;max-width:860px;margin:0 auto;padding:1rem;}
h1{border-bottom:2px solid #1c1917;padding-bottom:0.3rem;}
h2{margin-top:1.6rem;border-bottom:1px solid #d6d3d1;padding-bottom:0.2rem;}
blockquote{border-left:3px solid #92400e;margin:0.6rem 0;padding:0.2rem 0.8rem;background:#faf8f5;}
table{width:100%;border-collapse:collapse;font-size:0.85rem;}
th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
thead th{background:#f1f5f9;font-weight:700;}
a{color:#1d4ed8;}
`

// RenderHTML converts briefing Markdown into a standalone HTML document.
func RenderHTML(title, markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + title + "</title>" +
		"<style>" + briefingCSS + "</style></head><body>" +
		content.String() +
		"</body></html>", nil
}
