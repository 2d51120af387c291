package schema

import (
	"errors"
	"testing"

	"github.com/convexgen/convexgen/report"
	"github.com/convexgen/convexgen/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const todosDoc = `defineSchema({ todos: defineTable({ text: v.string(), done: v.boolean() }) })`

func TestParseSingleTable(t *testing.T) {
	s, err := Parse(todosDoc, nil, nil)
	require.NoError(t, err)
	require.Len(t, s.Tables, 1)

	table := s.Tables[0]
	assert.Equal(t, "todos", table.Name)
	require.Len(t, table.Fields, 2)
	assert.Equal(t, "text", table.Fields[0].Name)
	assert.Equal(t, "done", table.Fields[1].Name)
	assert.Equal(t, KindAtom, table.Fields[0].Type.Kind)
	assert.Equal(t, KindAtom, table.Fields[1].Type.Kind)
	assert.False(t, table.Fields[0].Optional)
	assert.False(t, table.Fields[1].Optional)
}

func TestParseMultipleTablesKeepOrder(t *testing.T) {
	doc := `
export default defineSchema({
  projects: defineTable({
    name: v.string(),
  }),
  tasks: defineTable({
    title: v.string(),
    projectId: v.id('projects'),
    done: v.optional(v.boolean()),
  }),
});
`
	s, err := Parse(doc, nil, nil)
	require.NoError(t, err)
	require.Len(t, s.Tables, 2)
	assert.Equal(t, "projects", s.Tables[0].Name)
	assert.Equal(t, "tasks", s.Tables[1].Name)

	tasks := s.Table("tasks")
	require.NotNil(t, tasks)
	require.Len(t, tasks.Fields, 3)
	assert.Equal(t, KindReference, tasks.Fields[1].Type.Kind)
	assert.True(t, tasks.Fields[2].Optional)
}

func TestParseNoSchemaBlock(t *testing.T) {
	_, err := Parse("const x = 1;", nil, nil)
	assert.True(t, errors.Is(err, ErrNoSchemaBlock))
}

func TestParseNoTables(t *testing.T) {
	_, err := Parse("defineSchema({})", nil, nil)
	assert.True(t, errors.Is(err, ErrNoTablesFound))
}

func TestParseSkipsReservedFieldName(t *testing.T) {
	doc := `defineSchema({
  things: defineTable({
    class: v.string(),
    name: v.string(),
  }),
})`
	var rep report.Collector
	s, err := Parse(doc, nil, &rep)
	require.NoError(t, err)
	require.Len(t, s.Tables, 1)
	require.Len(t, s.Tables[0].Fields, 1)
	assert.Equal(t, "name", s.Tables[0].Fields[0].Name)
	assert.NotEmpty(t, rep.Warnings)
}

func TestParseDropsTableWithNoValidFields(t *testing.T) {
	doc := `defineSchema({
  empty: defineTable({
  }),
  real: defineTable({
    name: v.string(),
  }),
})`
	var rep report.Collector
	s, err := Parse(doc, nil, &rep)
	require.NoError(t, err)
	require.Len(t, s.Tables, 1)
	assert.Equal(t, "real", s.Tables[0].Name)
}

func TestParseStripsComments(t *testing.T) {
	doc := `defineSchema({
  // table of todos
  todos: defineTable({
    text: v.string(), // the label
    /* done flag */
    done: v.boolean(),
  }),
})`
	s, err := Parse(doc, nil, nil)
	require.NoError(t, err)
	require.Len(t, s.Tables[0].Fields, 2)
}

func TestParseCollectsIndexNamesDocumentWide(t *testing.T) {
	doc := `defineSchema({
  todos: defineTable({
    text: v.string(),
  }).index("by_text", ["text"]),
  users: defineTable({
    name: v.string(),
  }).index("by_name", ["name"]),
})`
	s, err := Parse(doc, nil, nil)
	require.NoError(t, err)

	// Index names are collected across the whole document; every table
	// carries the full set.
	for _, table := range s.Tables {
		assert.True(t, table.Indexes["by_text"], table.Name)
		assert.True(t, table.Indexes["by_name"], table.Name)
	}
}

func TestParseInvokesResolver(t *testing.T) {
	type call struct {
		table, field, base string
		optional           bool
	}
	var calls []call
	resolve := func(table, field, baseType string, optional bool) rules.Node {
		calls = append(calls, call{table, field, baseType, optional})
		return rules.String{}
	}

	doc := `defineSchema({
  users: defineTable({
    name: v.string(),
    age: v.optional(v.number()),
  }),
})`
	s, err := Parse(doc, resolve, nil)
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, call{"users", "name", "string", false}, calls[0])
	assert.Equal(t, call{"users", "age", "number", true}, calls[1])
	assert.NotNil(t, s.Tables[0].Fields[0].Rule)
}

func TestParseUnknownFieldTypeDegrades(t *testing.T) {
	doc := `defineSchema({
  todos: defineTable({
    text: v.string(),
    extra: someMacro(v.string(), 3),
  }),
})`
	var rep report.Collector
	s, err := Parse(doc, nil, &rep)
	require.NoError(t, err)
	require.Len(t, s.Tables[0].Fields, 2)
	assert.Equal(t, UnknownAtom, s.Tables[0].Fields[1].Type.Base)
	assert.NotEmpty(t, rep.Warnings)
}
