package writer

import (
	"os"
	"path/filepath"

	"github.com/convexgen/convexgen/generator"
)

// Action says what applying a plan entry will do to the file on disk.
type Action string

const (
	Create     Action = "CREATE"
	Overwrite  Action = "OVERWRITE"
	Unchanged  Action = "UNCHANGED"
	SkipEdited Action = "SKIP_EDITED"
)

// Entry is one file in a generation plan.
type Entry struct {
	File   generator.File
	Action Action
}

// Plan is the full set of file operations for one generate run.
type Plan struct {
	Entries  []Entry
	manifest Manifest
}

// BuildPlan compares generated files against the working tree and the
// manifest from the previous run. A file whose on-disk content no longer
// matches its manifest hash was edited by hand and is skipped rather than
// clobbered.
func BuildPlan(root string, files []generator.File, manifest Manifest) (*Plan, error) {
	plan := &Plan{manifest: manifest}
	for _, f := range files {
		entry := Entry{File: f}

		existing, err := os.ReadFile(filepath.Join(root, f.Path))
		switch {
		case os.IsNotExist(err):
			entry.Action = Create
		case err != nil:
			return nil, err
		case string(existing) == f.Contents:
			entry.Action = Unchanged
		default:
			recorded, tracked := manifest[f.Path]
			if tracked && recorded != hashContents(string(existing)) {
				entry.Action = SkipEdited
			} else {
				entry.Action = Overwrite
			}
		}
		plan.Entries = append(plan.Entries, entry)
	}
	return plan, nil
}

// Count returns how many entries carry the given action.
func (p *Plan) Count(a Action) int {
	n := 0
	for _, e := range p.Entries {
		if e.Action == a {
			n++
		}
	}
	return n
}
