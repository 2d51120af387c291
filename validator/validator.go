package validator

import (
	"fmt"
	"strings"

	"github.com/convexgen/convexgen/schema"
)

// ValidationError is one finding with its location and severity.
type ValidationError struct {
	Type     string `json:"type"`
	Table    string `json:"table,omitempty"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
}

// ValidationResult contains all findings for one schema.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Info     []ValidationError `json:"info"`
}

// Validate lints a parsed schema: duplicate fields, unknown type
// expressions, dangling references and oversized identifiers. Structural
// problems were already rejected by the parser; everything here is advisory
// except duplicates and dangling references.
func Validate(s *schema.Schema) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Info:     []ValidationError{},
	}

	tables := map[string]bool{}
	for _, t := range s.Tables {
		tables[t.Name] = true
	}

	for _, table := range s.Tables {
		validateTable(table, tables, result)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func validateTable(table schema.TableRecord, tables map[string]bool, result *ValidationResult) {
	if len(table.Name) > 64 {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "table_name",
			Table:    table.Name,
			Message:  fmt.Sprintf("Table name '%s' is unusually long", table.Name),
			Severity: "warning",
		})
	}

	seen := map[string]bool{}
	for _, field := range table.Fields {
		if seen[field.Name] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "duplicate_field",
				Table:    table.Name,
				Field:    field.Name,
				Message:  fmt.Sprintf("Duplicate field name '%s' in table '%s'", field.Name, table.Name),
				Severity: "error",
			})
			continue
		}
		seen[field.Name] = true

		validateNode(table.Name, field.Name, field.Type, tables, result)
	}

	for name := range table.Indexes {
		if strings.TrimSpace(name) == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "index_name",
				Table:    table.Name,
				Message:  "Index with empty name",
				Severity: "warning",
			})
		}
	}
}

func validateNode(table, field string, n *schema.TypeNode, tables map[string]bool, result *ValidationResult) {
	if n == nil {
		return
	}
	switch n.Kind {
	case schema.KindAtom:
		if n.Base == schema.UnknownAtom {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "unknown_type",
				Table:    table,
				Field:    field,
				Message:  fmt.Sprintf("Field '%s.%s' has unrecognized type expression %q", table, field, n.Raw),
				Severity: "warning",
			})
		}
	case schema.KindReference:
		if !tables[n.Table] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "dangling_reference",
				Table:    table,
				Field:    field,
				Message:  fmt.Sprintf("Field '%s.%s' references unknown table '%s'", table, field, n.Table),
				Severity: "error",
			})
		}
	case schema.KindOptional, schema.KindArray:
		validateNode(table, field, n.Elem, tables, result)
	case schema.KindUnion:
		if len(n.Alternatives) == 0 {
			result.Info = append(result.Info, ValidationError{
				Type:     "empty_union",
				Table:    table,
				Field:    field,
				Message:  fmt.Sprintf("Field '%s.%s' is a union with no alternatives", table, field),
				Severity: "info",
			})
		}
		for _, alt := range n.Alternatives {
			validateNode(table, field, alt, tables, result)
		}
	case schema.KindObject:
		names := map[string]bool{}
		for _, f := range n.Fields {
			if names[f.Name] {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:     "duplicate_object_field",
					Table:    table,
					Field:    field,
					Message:  fmt.Sprintf("Nested object on '%s.%s' repeats field '%s'", table, field, f.Name),
					Severity: "warning",
				})
			}
			names[f.Name] = true
			validateNode(table, field, f.Type, tables, result)
		}
	}
}
