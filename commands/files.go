package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"quotecalc/services"
)

// document is a quote loaded from disk, with the import report when it was
// built from a line-item sheet.
type document struct {
	Path   string
	Quote  services.Quote
	Import *services.ImportResult
}

// loadDocument reads a .json quote, or a .csv/.xlsx line-item sheet priced
// with the configured tax rate. Documents without a currency get the
// configured one.
func loadDocument(env *Env, path string) (*document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc := &document{Path: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		q, err := services.LoadQuote(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		doc.Quote = q
	case ".csv", ".xlsx":
		result, err := services.ParseLineItems(f, filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		doc.Import = result
		doc.Quote = services.Quote{
			Status:  "draft",
			TaxRate: env.Config.TaxRate,
			Items:   result.Items,
		}
		for _, w := range result.Warnings {
			env.Logger.Warn().Str("file", path).Int("row", w.Row).Str("field", w.Field).Msg(w.Message)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, services.ErrUnsupportedFormat)
	}

	if strings.TrimSpace(doc.Quote.Currency) == "" {
		doc.Quote.Currency = env.Config.Currency
	}
	env.Logger.Debug().
		Str("file", path).
		Int("lines", len(doc.Quote.Items)).
		Msg("documents: loaded")
	return doc, nil
}

// quoteFiles lists the .json documents in dir, sorted by name.
func quoteFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// writeOutput writes data to path and logs its size.
func writeOutput(env *Env, area, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	env.Logger.Info().
		Str("file", path).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg(area + ": wrote file")
	return nil
}

// sanitizeFilename replaces characters that are unsafe in file names.
func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// documentName is the base used for generated file names.
func documentName(q services.Quote) string {
	if name := sanitizeFilename(q.Number); name != "" {
		return name
	}
	return "quotation"
}
