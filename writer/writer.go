package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// ApplyOptions controls how a plan is written to disk.
type ApplyOptions struct {
	// DryRun leaves the working tree untouched.
	DryRun bool

	// Backup saves the previous contents to <path>.bak before overwriting.
	Backup bool
}

// Apply writes every Create/Overwrite entry under root and saves the updated
// manifest. Unchanged and skipped entries are left alone but still recorded
// in the manifest so the next run keeps tracking them.
func (p *Plan) Apply(root string, opts ApplyOptions) error {
	if opts.DryRun {
		return nil
	}

	manifest := p.manifest
	if manifest == nil {
		manifest = Manifest{}
	}

	for _, e := range p.Entries {
		path := filepath.Join(root, e.File.Path)
		switch e.Action {
		case Create, Overwrite:
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("creating output folder: %w", err)
			}
			if e.Action == Overwrite && opts.Backup {
				prev, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s for backup: %w", e.File.Path, err)
				}
				if err := os.WriteFile(path+".bak", prev, 0644); err != nil {
					return fmt.Errorf("writing backup for %s: %w", e.File.Path, err)
				}
			}
			if err := os.WriteFile(path, []byte(e.File.Contents), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", e.File.Path, err)
			}
			manifest[e.File.Path] = hashContents(e.File.Contents)
		case Unchanged:
			manifest[e.File.Path] = hashContents(e.File.Contents)
		case SkipEdited:
			// Keep the old hash; the user owns this file now.
		}
	}

	return manifest.Save(root)
}
