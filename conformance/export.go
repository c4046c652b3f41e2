package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	geometa "github.com/geoparq/geometa"
)

// WriteFiles materializes every catalog entry into dir as
// <valid|invalid>_<name>.json containing {"geo": <fragment>}, pretty-printed
// with sorted keys. The files are regression and inspection artifacts, not a
// runtime interface.
func WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("conformance: create dir: %w", err)
	}
	for _, c := range Catalog() {
		data, err := geometa.EncodeJSONIndent(geometa.Obj(geometa.F("geo", c.Metadata)))
		if err != nil {
			return fmt.Errorf("conformance: encode %s: %w", c.Name, err)
		}
		name := FileName(c)
		if err := os.WriteFile(filepath.Join(dir, name), append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("conformance: write %s: %w", name, err)
		}
	}
	return nil
}

// FileName returns the materialized file name for a case.
func FileName(c Case) string {
	prefix := "invalid_"
	if c.Valid {
		prefix = "valid_"
	}
	return prefix + c.Name + ".json"
}
