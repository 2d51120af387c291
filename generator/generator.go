package generator

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/convexgen/convexgen/report"
	"github.com/convexgen/convexgen/rules"
	"github.com/convexgen/convexgen/schema"
)

// File is one generated source file, path relative to the project root.
type File struct {
	Path     string
	Contents string
}

// Options configures output locations and validator emission.
type Options struct {
	BackendDir    string
	ComponentsDir string
	RoutesDir     string
	Serialize     rules.Options
	Reporter      report.Reporter
}

type tableData struct {
	Table     string
	Component string
	Camel     string
	Fields    []fieldData
	Indexes   []string
}

type fieldData struct {
	Name       string
	Label      string
	RawType    string
	TSType     string
	Input      string
	Optional   bool
	Rule       string
	ChangeExpr string
}

var templates = map[string]*template.Template{
	"backend":    template.Must(template.New("backend").Parse(backendTemplate)),
	"validators": template.Must(template.New("validators").Parse(validatorsTemplate)),
	"form":       template.Must(template.New("form").Parse(formTemplate)),
	"list":       template.Must(template.New("list").Parse(listTemplate)),
	"detail":     template.Must(template.New("detail").Parse(detailTemplate)),
	"routes":     template.Must(template.New("routes").Parse(routesTemplate)),
}

// Generate stamps out all source files for the parsed schema: per-table
// backend stubs, form/list/detail components, a shared validators module and
// the route file. It is pure: callers hand the result to the writer.
func Generate(s *schema.Schema, opts Options) ([]File, error) {
	if opts.Reporter == nil {
		opts.Reporter = report.Discard
	}
	if opts.Serialize.Reporter == nil {
		opts.Serialize.Reporter = opts.Reporter
	}

	var all []tableData
	for _, table := range s.Tables {
		data, err := buildTableData(table, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, data)
	}

	var files []File
	for _, data := range all {
		backend, err := render("backend", data)
		if err != nil {
			return nil, err
		}
		form, err := render("form", data)
		if err != nil {
			return nil, err
		}
		list, err := render("list", data)
		if err != nil {
			return nil, err
		}
		detail, err := render("detail", data)
		if err != nil {
			return nil, err
		}
		files = append(files,
			File{Path: filepath.Join(opts.BackendDir, data.Table+".ts"), Contents: backend},
			File{Path: filepath.Join(opts.ComponentsDir, data.Component+"Form.tsx"), Contents: form},
			File{Path: filepath.Join(opts.ComponentsDir, data.Component+"List.tsx"), Contents: list},
			File{Path: filepath.Join(opts.ComponentsDir, data.Component+"Detail.tsx"), Contents: detail},
		)
	}

	group := struct{ Tables []tableData }{Tables: all}
	validators, err := render("validators", group)
	if err != nil {
		return nil, err
	}
	routes, err := render("routes", group)
	if err != nil {
		return nil, err
	}
	files = append(files,
		File{Path: filepath.Join(opts.ComponentsDir, "validators.ts"), Contents: validators},
		File{Path: filepath.Join(opts.RoutesDir, "routes.tsx"), Contents: routes},
	)
	return files, nil
}

func buildTableData(table schema.TableRecord, opts Options) (tableData, error) {
	data := tableData{
		Table:     table.Name,
		Component: pascalSingular(table.Name),
		Camel:     camelSingular(table.Name),
	}
	for name := range table.Indexes {
		data.Indexes = append(data.Indexes, name)
	}
	sort.Strings(data.Indexes)

	for _, field := range table.Fields {
		ruleText, err := rules.Serialize(field.Rule, opts.Serialize)
		if err != nil {
			return tableData{}, fmt.Errorf("serializing rule for %s.%s: %w", table.Name, field.Name, err)
		}
		data.Fields = append(data.Fields, fieldData{
			Name:       field.Name,
			Label:      humanize(field.Name),
			RawType:    field.RawType,
			TSType:     tsType(field.Type),
			Input:      inputKind(field.Type),
			Optional:   field.Optional,
			Rule:       ruleText,
			ChangeExpr: changeExpr(field.Type),
		})
	}
	return data, nil
}

// changeExpr is the event-to-value expression used in form onChange handlers.
func changeExpr(n *schema.TypeNode) string {
	switch inputKind(n) {
	case "checkbox":
		return "e.target.checked"
	case "number":
		return "Number(e.target.value)"
	default:
		return "e.target.value"
	}
}

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates[name].Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", name, err)
	}
	return buf.String(), nil
}
