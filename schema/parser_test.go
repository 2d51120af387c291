package schema

import (
	"errors"
	"testing"

	"github.com/convexgen/convexgen/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeExpressionAtoms(t *testing.T) {
	for _, expr := range []string{"v.string()", "string()", "v.boolean()", "v.int64()", "v.float64()"} {
		node, err := ParseTypeExpression(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, KindAtom, node.Kind)
		assert.Equal(t, expr, node.Raw)
		assert.False(t, node.IsOptional())
		assert.False(t, node.IsArray())
	}

	node, err := ParseTypeExpression("v.number()")
	require.NoError(t, err)
	assert.Equal(t, "number", node.Base)
}

func TestParseTypeExpressionEmpty(t *testing.T) {
	_, err := ParseTypeExpression("")
	assert.True(t, errors.Is(err, ErrEmptyExpression))

	_, err = ParseTypeExpression("   \t ")
	assert.True(t, errors.Is(err, ErrEmptyExpression))
}

func TestParseTypeExpressionNesting(t *testing.T) {
	raw := "v.optional(v.array(v.id('users')))"
	node, err := ParseTypeExpression(raw)
	require.NoError(t, err)

	// Kind nesting mirrors the textual nesting exactly.
	require.Equal(t, KindOptional, node.Kind)
	require.Equal(t, KindArray, node.Elem.Kind)
	require.Equal(t, KindReference, node.Elem.Elem.Kind)
	assert.Equal(t, "users", node.Elem.Elem.Table)

	assert.True(t, node.IsOptional())
	assert.True(t, node.IsArray())
	// The optional node's raw covers the whole wrapped expression.
	assert.Equal(t, raw, node.Raw)
}

func TestParseTypeExpressionReference(t *testing.T) {
	node, err := ParseTypeExpression(`v.id("projects")`)
	require.NoError(t, err)
	assert.Equal(t, KindReference, node.Kind)
	assert.Equal(t, "projects", node.Table)
	assert.Equal(t, "id", node.BaseType())
}

func TestParseTypeExpressionUnionOrder(t *testing.T) {
	node, err := ParseTypeExpression("v.union(a(), b(), c())")
	require.NoError(t, err)
	require.Equal(t, KindUnion, node.Kind)
	require.Len(t, node.Alternatives, 3)
	assert.Equal(t, "a", node.Alternatives[0].Base)
	assert.Equal(t, "b", node.Alternatives[1].Base)
	assert.Equal(t, "c", node.Alternatives[2].Base)
}

func TestParseTypeExpressionObject(t *testing.T) {
	node, err := ParseTypeExpression("v.object({name: v.string(), age: v.number()})")
	require.NoError(t, err)
	require.Equal(t, KindObject, node.Kind)
	require.Len(t, node.Fields, 2)
	assert.Equal(t, "name", node.Fields[0].Name)
	assert.Equal(t, "string", node.Fields[0].Type.Base)
	assert.Equal(t, "age", node.Fields[1].Name)
	assert.Equal(t, "number", node.Fields[1].Type.Base)
}

func TestParseTypeExpressionObjectSkipsPairsWithoutColon(t *testing.T) {
	node, err := ParseTypeExpression("v.object({name: v.string(), dangling})")
	require.NoError(t, err)
	require.Len(t, node.Fields, 1)
	assert.Equal(t, "name", node.Fields[0].Name)
}

func TestParseTypeExpressionUnknownFallback(t *testing.T) {
	var rep report.Collector
	node, err := ParseTypeExpressionWith("weirdThing(1,2,3)", &rep)
	require.NoError(t, err, "unrecognized expressions degrade, never fail")
	assert.Equal(t, KindAtom, node.Kind)
	assert.Equal(t, UnknownAtom, node.Base)
	assert.Len(t, rep.Warnings, 1)
}

func TestParseTypeExpressionArrayCollapsesOptionalElement(t *testing.T) {
	// array(optional(x)) parses the same as array(x); the element's own
	// optionality is dropped. Longstanding dialect behavior.
	node, err := ParseTypeExpression("v.array(v.optional(v.string()))")
	require.NoError(t, err)
	require.Equal(t, KindArray, node.Kind)
	assert.Equal(t, KindAtom, node.Elem.Kind)
	assert.Equal(t, "string", node.Elem.Base)
}

func TestParseTypeExpressionUnionPropagatesSubError(t *testing.T) {
	_, err := ParseTypeExpression("v.union(v.string(), )")
	// The trailing empty segment is dropped by the splitter, so this still
	// parses; a genuinely empty alternative inside does not occur. Nested
	// structural failures do propagate through object bodies instead.
	require.NoError(t, err)

	_, err = ParseTypeExpression("v.object({a: })")
	assert.Error(t, err)
}

func TestBaseTypeThroughWrappers(t *testing.T) {
	node, err := ParseTypeExpression("v.optional(v.string())")
	require.NoError(t, err)
	assert.Equal(t, "string", node.BaseType())

	node, err = ParseTypeExpression("v.optional(v.array(v.boolean()))")
	require.NoError(t, err)
	assert.Equal(t, "array", node.BaseType())
}
