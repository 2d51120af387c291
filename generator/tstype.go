package generator

import (
	"fmt"
	"strings"

	"github.com/convexgen/convexgen/schema"
)

// tsType renders the TypeScript type for a parsed type node, used in the
// generated component props and handler signatures.
func tsType(n *schema.TypeNode) string {
	if n == nil {
		return "unknown"
	}
	switch n.Kind {
	case schema.KindOptional:
		return tsType(n.Elem) + " | undefined"
	case schema.KindArray:
		item := tsType(n.Elem)
		if strings.ContainsAny(item, "|{") {
			return "Array<" + item + ">"
		}
		return item + "[]"
	case schema.KindReference:
		return fmt.Sprintf("Id<%q>", n.Table)
	case schema.KindUnion:
		parts := make([]string, len(n.Alternatives))
		for i, alt := range n.Alternatives {
			parts[i] = tsType(alt)
		}
		return strings.Join(parts, " | ")
	case schema.KindObject:
		parts := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, tsType(f.Type))
		}
		return "{ " + strings.Join(parts, "; ") + " }"
	case schema.KindAtom:
		switch n.Base {
		case "string", "id":
			return "string"
		case "number", "float64":
			return "number"
		case "int64", "bigint":
			return "bigint"
		case "boolean":
			return "boolean"
		case "null":
			return "null"
		case "bytes":
			return "ArrayBuffer"
		default:
			return "unknown"
		}
	}
	return "unknown"
}

// inputKind picks the form control for a field.
func inputKind(n *schema.TypeNode) string {
	switch n.BaseType() {
	case "boolean":
		return "checkbox"
	case "number", "float64", "int64", "bigint":
		return "number"
	default:
		return "text"
	}
}
