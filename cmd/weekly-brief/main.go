package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/joelkehle/mediawatch/internal/config"
	"github.com/joelkehle/mediawatch/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("MEDIAWATCH_CONFIG"), "Path to YAML config")
	date := flag.String("date", "", "Week-ending reference date (YYYY-MM-DD), defaults to today")
	outputDir := flag.String("output", "", "Output directory override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	dir := cfg.OutputDir
	if *outputDir != "" {
		dir = *outputDir
	}

	res, err := pipeline.RunWeekly(dir, *date, nil)
	if err != nil {
		log.Fatalf("weekly-brief: %v", err)
	}
	log.Printf("weekly-brief completed reference=%s groups=%d markdown=%s", res.Reference, len(res.Groups), res.MarkdownPath)
}
