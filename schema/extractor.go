package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/convexgen/convexgen/report"
)

var (
	defineSchemaRe = regexp.MustCompile(`defineSchema\s*\(`)
	defineTableRe  = regexp.MustCompile(`([A-Za-z0-9_$]+)\s*:\s*defineTable\s*\(`)
	fieldDeclRe    = regexp.MustCompile(`^([A-Za-z0-9_$]+)\s*:\s*(.+)$`)
	indexCallRe    = regexp.MustCompile(`\.index\(\s*['"]([^'"]+)['"]`)
	identifierRe   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// JavaScript reserved words; a table or field using one of these is skipped
// because the generated source would not compile.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "yield": true,
}

func validIdentifier(name string) bool {
	return identifierRe.MatchString(name) && !reservedWords[name]
}

// Parse extracts every table and field from a schema document. resolve is
// called once per parsed field to attach its validation rule; pass nil to
// leave rules unset. Structural problems (no defineSchema block, unbalanced
// braces, zero tables) are errors; a bad table or field is skipped with a
// warning and the rest of the document still parses.
func Parse(document string, resolve ResolveFunc, rep report.Reporter) (*Schema, error) {
	if rep == nil {
		rep = report.Discard
	}
	doc := StripComments(document)

	loc := defineSchemaRe.FindStringIndex(doc)
	if loc == nil {
		return nil, ErrNoSchemaBlock
	}
	block, err := ExtractBalanced(doc, loc[1])
	if err != nil {
		return nil, fmt.Errorf("schema block: %w", err)
	}

	// Index names are collected from the whole document, not per table body,
	// so every table sees the full set. Matches the established behavior of
	// the dialect's tooling.
	indexes := map[string]bool{}
	for _, m := range indexCallRe.FindAllStringSubmatch(doc, -1) {
		indexes[m[1]] = true
	}

	result := &Schema{}
	for _, m := range defineTableRe.FindAllStringSubmatchIndex(block, -1) {
		tableName := block[m[2]:m[3]]
		if !validIdentifier(tableName) {
			rep.Warnf("skipping table %q: not a valid identifier", tableName)
			continue
		}

		body, err := ExtractBalanced(block, m[1])
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", tableName, err)
		}

		table := TableRecord{Name: tableName, Indexes: indexes}
		var decls []string
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			// More than one declaration can share a line.
			decls = append(decls, SplitTopLevel(line, ',')...)
		}
		for _, decl := range decls {
			fm := fieldDeclRe.FindStringSubmatch(decl)
			if fm == nil {
				continue
			}
			fieldName, typeText := fm[1], fm[2]
			if !validIdentifier(fieldName) {
				rep.Warnf("skipping field %s.%s: not a valid identifier", tableName, fieldName)
				continue
			}

			node, err := ParseTypeExpressionWith(typeText, rep)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", tableName, fieldName, err)
			}

			field := FieldRecord{
				Name:     fieldName,
				Type:     node,
				Optional: node.IsOptional(),
				IsArray:  node.IsArray(),
				RawType:  typeText,
			}
			if resolve != nil {
				field.Rule = resolve(tableName, fieldName, node.BaseType(), node.IsOptional())
			}
			table.Fields = append(table.Fields, field)
		}

		if len(table.Fields) == 0 {
			rep.Warnf("dropping table %q: no valid fields", tableName)
			continue
		}
		result.Tables = append(result.Tables, table)
	}

	if len(result.Tables) == 0 {
		return nil, ErrNoTablesFound
	}
	return result, nil
}
