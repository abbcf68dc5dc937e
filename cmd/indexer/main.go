// Command indexer rebuilds the passage table from the PDF drop directory,
// the same operation the admin reindex endpoint performs, runnable from cron
// or CI without a server.
package main

import (
	"context"
	"flag"
	"log"

	"rso-assistant-be/internal/bootstrap"
	"rso-assistant-be/internal/config"
	"rso-assistant-be/pkg/pdfload"
)

func main() {
	dataDir := flag.String("data", "", "directory of PDFs to index (defaults to DATA_DIR)")
	flag.Parse()

	cfg := config.Load()
	if *dataDir != "" {
		cfg.Ingest.DataDir = *dataDir
	}

	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	docs, err := pdfload.LoadDirectory(cfg.Ingest.DataDir)
	if err != nil {
		log.Fatalf("load %s: %v", cfg.Ingest.DataDir, err)
	}
	log.Printf("loaded %d pages from %s", len(docs), cfg.Ingest.DataDir)

	n, err := container.Indexer.Reindex(context.Background(), docs)
	if err != nil {
		log.Fatalf("reindex: %v", err)
	}
	log.Printf("indexed %d chunks", n)
}
