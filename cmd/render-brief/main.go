package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joelkehle/mediawatch/internal/report"
)

func main() {
	inputPath := flag.String("input", "", "Path to a briefing markdown file")
	outputPath := flag.String("output", "", "Path to write the PDF (defaults to <input>.pdf)")
	htmlPath := flag.String("html", "", "Optional path to also write the standalone HTML")
	title := flag.String("title", "", "Document title (defaults to the input file name)")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	markdown, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	docTitle := *title
	if docTitle == "" {
		base := filepath.Base(*inputPath)
		docTitle = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if *htmlPath != "" {
		htmlDoc, err := report.RenderHTML(docTitle, string(markdown))
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := os.WriteFile(*htmlPath, []byte(htmlDoc), 0o644); err != nil {
			log.Fatalf("write html: %v", err)
		}
	}

	pdfPath := *outputPath
	if pdfPath == "" {
		pdfPath = strings.TrimSuffix(*inputPath, filepath.Ext(*inputPath)) + ".pdf"
	}

	renderer := report.NewChromiumPDFRenderer()
	pdf, err := renderer.Render(context.Background(), docTitle, string(markdown))
	if err != nil {
		log.Fatalf("render pdf: %v", err)
	}
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	log.Printf("render-brief wrote pdf=%s", pdfPath)
}
