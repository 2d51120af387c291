package introspect

import (
	"fmt"
	"strings"
)

// pgTypeExpr maps a Postgres data type to a type expression in the schema
// dialect. Timestamps become numbers (epoch millis) as the dialect stores
// them that way.
func pgTypeExpr(dataType string) string {
	switch strings.ToLower(dataType) {
	case "text", "character varying", "varchar", "character", "char", "uuid":
		return "v.string()"
	case "smallint", "integer", "numeric", "decimal", "real", "double precision", "serial":
		return "v.number()"
	case "bigint", "bigserial":
		return "v.int64()"
	case "boolean":
		return "v.boolean()"
	case "bytea":
		return "v.bytes()"
	case "date", "timestamp without time zone", "timestamp with time zone", "time without time zone":
		return "v.number()"
	default:
		return "v.any()"
	}
}

// EmitSchemaDocument renders the introspected tables as a schema document
// that parses back through the extractor. Primary key columns are dropped
// (the dialect supplies its own document ids), foreign keys become
// references and nullable columns become optional.
func EmitSchemaDocument(tables []ExistingTable) string {
	var b strings.Builder
	b.WriteString("import { defineSchema, defineTable } from \"convex/server\";\n")
	b.WriteString("import { v } from \"convex/values\";\n\n")
	b.WriteString("export default defineSchema({\n")

	for _, table := range tables {
		fks := map[string]string{}
		for _, fk := range table.ForeignKeys {
			fks[fk.ColumnName] = fk.ReferencesTable
		}

		fmt.Fprintf(&b, "  %s: defineTable({\n", table.TableName)
		for _, col := range table.Columns {
			if col.IsPrimaryKey {
				continue
			}
			expr := pgTypeExpr(col.DataType)
			if target, ok := fks[col.ColumnName]; ok {
				expr = fmt.Sprintf("v.id('%s')", target)
			}
			if col.IsNullable {
				expr = fmt.Sprintf("v.optional(%s)", expr)
			}
			fmt.Fprintf(&b, "    %s: %s,\n", col.ColumnName, expr)
		}
		b.WriteString("  })")

		for _, idx := range table.Indexes {
			if strings.HasSuffix(idx.IndexName, "_pkey") {
				continue
			}
			quoted := make([]string, len(idx.Columns))
			for i, col := range idx.Columns {
				quoted[i] = `"` + col + `"`
			}
			fmt.Fprintf(&b, "\n    .index(\"%s\", [%s])", idx.IndexName, strings.Join(quoted, ", "))
		}
		b.WriteString(",\n")
	}

	b.WriteString("});\n")
	return b.String()
}
