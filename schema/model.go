package schema

import (
	"errors"

	"github.com/convexgen/convexgen/rules"
)

// Kind discriminates the variants of a TypeNode.
type Kind int

const (
	KindAtom Kind = iota
	KindOptional
	KindArray
	KindReference
	KindUnion
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindOptional:
		return "optional"
	case KindArray:
		return "array"
	case KindReference:
		return "reference"
	case KindUnion:
		return "union"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// TypeNode is the parsed form of a single type expression. Exactly the fields
// for the node's Kind are populated; Raw always holds the original textual
// slice for diagnostics and is never re-parsed.
type TypeNode struct {
	Kind Kind
	Raw  string

	// Elem is the single child of an Optional or Array node.
	Elem *TypeNode

	// Table is the target table name of a Reference node.
	Table string

	// Alternatives are the ordered members of a Union node. Order is
	// preserved and duplicates are kept.
	Alternatives []*TypeNode

	// Fields are the ordered members of an Object node.
	Fields []ObjectField

	// Base is the primitive type name of an Atom node. The value "unknown"
	// marks an expression the parser could not classify.
	Base string
}

// ObjectField is one `name: type` pair inside an object expression.
type ObjectField struct {
	Name string
	Type *TypeNode
}

// UnknownAtom is the Base of the fallback node produced for expressions the
// parser does not recognize.
const UnknownAtom = "unknown"

// IsOptional reports whether the outermost wrapper is optional.
func (n *TypeNode) IsOptional() bool {
	return n != nil && n.Kind == KindOptional
}

// IsArray reports whether the node is an array, looking through an outer
// optional wrapper. Optional(Array(x)) is both optional and an array.
func (n *TypeNode) IsArray() bool {
	if n == nil {
		return false
	}
	if n.Kind == KindOptional {
		return n.Elem.IsArray()
	}
	return n.Kind == KindArray
}

// BaseType returns the primitive name the node bottoms out at, looking
// through optional wrappers. Non-atom kinds answer with their kind name,
// which is what the rule resolver keys on.
func (n *TypeNode) BaseType() string {
	if n == nil {
		return UnknownAtom
	}
	switch n.Kind {
	case KindAtom:
		return n.Base
	case KindOptional:
		return n.Elem.BaseType()
	case KindReference:
		return "id"
	default:
		return n.Kind.String()
	}
}

// FieldRecord is one parsed field declaration. Optional/IsArray are hoisted
// from Type for convenience and stay consistent with its shape.
type FieldRecord struct {
	Name     string
	Type     *TypeNode
	Optional bool
	IsArray  bool
	RawType  string
	Rule     rules.Node
}

// TableRecord is one parsed table. Fields keep declaration order. Indexes
// holds every index name literal found in the schema document.
type TableRecord struct {
	Name    string
	Fields  []FieldRecord
	Indexes map[string]bool
}

// Schema is the result of parsing a schema document. Tables keep their
// declaration order.
type Schema struct {
	Tables []TableRecord
}

// Table returns the named table, or nil.
func (s *Schema) Table(name string) *TableRecord {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}

// ResolveFunc maps a parsed field to its validation rule. It is supplied by
// the caller and opaque to the extractor.
type ResolveFunc func(table, field, baseType string, optional bool) rules.Node

// Structural errors. Anything else the parser degrades around with a warning.
var (
	ErrEmptyExpression       = errors.New("empty type expression")
	ErrUnmatchedClosingBrace = errors.New("unmatched closing brace")
	ErrUnclosedBraces        = errors.New("unclosed braces")
	ErrNoSchemaBlock         = errors.New("no defineSchema block found")
	ErrNoTablesFound         = errors.New("no tables found in schema")
)
