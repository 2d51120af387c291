package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// candidateSchemaPaths are tried in order when no schema path is configured.
var candidateSchemaPaths = []string{
	"convex/schema.ts",
	"schema.ts",
	"src/convex/schema.ts",
}

// FindSchema locates the schema document. An explicit path wins; otherwise
// the well-known locations are tried, then a shallow walk looks for any
// schema.ts.
func FindSchema(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("schema file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, p := range candidateSchemaPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	var found string
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if name == "node_modules" || strings.HasPrefix(name, ".") && name != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if found == "" && info.Name() == "schema.ts" {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching for schema.ts: %w", err)
	}
	if found == "" {
		return "", fmt.Errorf("no schema.ts found. Run 'convexgen init' first or pass --schema")
	}
	return found, nil
}

// ReadSchema loads the schema document text.
func ReadSchema(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading schema file: %w", err)
	}
	return string(data), nil
}
