package introspect

import (
	"testing"

	"github.com/convexgen/convexgen/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgTypeExpr(t *testing.T) {
	cases := map[string]string{
		"text":                        "v.string()",
		"character varying":           "v.string()",
		"uuid":                        "v.string()",
		"integer":                     "v.number()",
		"double precision":            "v.number()",
		"bigint":                      "v.int64()",
		"boolean":                     "v.boolean()",
		"bytea":                       "v.bytes()",
		"timestamp without time zone": "v.number()",
		"jsonb":                       "v.any()",
	}
	for pg, want := range cases {
		assert.Equal(t, want, pgTypeExpr(pg), pg)
	}
}

func TestEmitSchemaDocumentRoundTrips(t *testing.T) {
	tables := []ExistingTable{
		{
			TableName: "posts",
			Columns: []ExistingColumn{
				{ColumnName: "id", DataType: "uuid", IsPrimaryKey: true},
				{ColumnName: "title", DataType: "text"},
				{ColumnName: "views", DataType: "integer", IsNullable: true},
				{ColumnName: "author_id", DataType: "uuid"},
			},
			ForeignKeys: []ExistingForeignKey{
				{ColumnName: "author_id", ReferencesTable: "users"},
			},
			Indexes: []ExistingIndex{
				{IndexName: "posts_pkey", Columns: []string{"id"}},
				{IndexName: "posts_by_author", Columns: []string{"author_id"}},
			},
		},
	}

	doc := EmitSchemaDocument(tables)
	parsed, err := schema.Parse(doc, nil, nil)
	require.NoError(t, err)

	table := parsed.Table("posts")
	require.NotNil(t, table)

	// Primary key columns are dropped.
	names := make([]string, 0, len(table.Fields))
	for _, f := range table.Fields {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"title", "views", "author_id"}, names)

	for _, f := range table.Fields {
		switch f.Name {
		case "title":
			assert.Equal(t, "string", f.Type.BaseType())
			assert.False(t, f.Optional)
		case "views":
			assert.True(t, f.Optional)
			assert.Equal(t, "number", f.Type.BaseType())
		case "author_id":
			assert.Equal(t, "id", f.Type.BaseType())
			assert.Equal(t, schema.KindReference, f.Type.Kind)
			assert.Equal(t, "users", f.Type.Table)
		}
	}

	// The primary key index is filtered, the secondary index survives.
	assert.True(t, table.Indexes["posts_by_author"])
	assert.False(t, table.Indexes["posts_pkey"])
}
