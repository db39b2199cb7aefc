package benchreport

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Encode writes the report as indented JSON.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Save writes the report to path, creating parent directories as needed.
func Save(r *Report, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Encode(f)
}

// Loaded pairs a report with the file it was read from.
type Loaded struct {
	Path   string
	Report Report
}

// LoadDir walks dir and decodes every .json file into a report. Files that
// do not decode are skipped rather than failing the whole load, so foreign
// JSON can live next to reports.
func LoadDir(dir string) ([]Loaded, error) {
	var out []Loaded
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".json") {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		var r Report
		if err := json.NewDecoder(f).Decode(&r); err != nil {
			return nil
		}
		out = append(out, Loaded{Path: path, Report: r})
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	return out, nil
}
