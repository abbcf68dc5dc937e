// Package pdfload extracts per-page text from a directory of PDF files for
// indexing. Page extraction is deliberately dumb: one Page per PDF page, text
// as the library yields it, provenance in metadata. Cleaning and chunking
// happen downstream.
package pdfload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"rso-assistant-be/pkg/chunk"
)

// LoadDirectory reads every *.pdf under dir (sorted by name, pages in order)
// and returns one document per page with source and 1-based page metadata.
// A missing directory yields an empty result, not an error: an operator who
// has not mounted the handbook yet gets "0 indexed", not a crash.
func LoadDirectory(dir string) ([]chunk.Document, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var docs []chunk.Document
	for _, name := range names {
		pages, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		docs = append(docs, pages...)
	}
	return docs, nil
}

func loadFile(path string) ([]chunk.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, err
	}

	source := filepath.Base(path)
	var docs []chunk.Document
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		docs = append(docs, chunk.Document{
			Text: text,
			Metadata: map[string]any{
				"source": source,
				"page":   i,
			},
		})
	}
	return docs, nil
}
