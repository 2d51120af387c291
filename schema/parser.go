package schema

import (
	"regexp"
	"strings"

	"github.com/convexgen/convexgen/report"
)

// Wrapper and call shapes of the v.* type-expression dialect. The whole
// expression is one call, so a greedy inner group that stops at the final
// closing paren is enough; nested arguments are handled by recursion.
var (
	optionalRe = regexp.MustCompile(`^(?:v\.)?optional\(\s*(.*)\s*\)$`)
	arrayRe    = regexp.MustCompile(`^(?:v\.)?array\(\s*(.*)\s*\)$`)
	idRe       = regexp.MustCompile(`^(?:v\.)?id\(\s*['"]([^'"]+)['"]\s*\)$`)
	unionRe    = regexp.MustCompile(`^(?:v\.)?union\(\s*(.*)\s*\)$`)
	objectRe   = regexp.MustCompile(`^(?:v\.)?object\(\s*(\{[\s\S]*\})\s*\)$`)
	atomRe     = regexp.MustCompile(`^(?:v\.)?([A-Za-z_$][A-Za-z0-9_$]*)\(\s*\)$`)
)

// ParseTypeExpression parses one textual type expression into a TypeNode.
// Diagnostics for unrecognized shapes go to report.Discard; use
// ParseTypeExpressionWith to capture them.
func ParseTypeExpression(raw string) (*TypeNode, error) {
	return ParseTypeExpressionWith(raw, report.Discard)
}

// ParseTypeExpressionWith parses one type expression, reporting degradations
// to rep.
//
// Pattern order matters: optional and array wrap any other expression, id and
// union and object are narrower calls, and the bare zero-argument call is the
// most general shape, so each case must be ruled out before the next is
// tried. An expression matching none of them becomes Atom("unknown") with a
// warning rather than an error; only an empty expression (or a structural
// failure inside a nested object body) is fatal.
func ParseTypeExpressionWith(raw string, rep report.Reporter) (*TypeNode, error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	if m := optionalRe.FindStringSubmatch(expr); m != nil {
		inner, err := ParseTypeExpressionWith(m[1], rep)
		if err != nil {
			return nil, err
		}
		// The optional node's raw covers the whole wrapped form.
		return &TypeNode{Kind: KindOptional, Raw: expr, Elem: inner}, nil
	}

	if m := arrayRe.FindStringSubmatch(expr); m != nil {
		inner, err := ParseTypeExpressionWith(m[1], rep)
		if err != nil {
			return nil, err
		}
		// An optional element type is collapsed to its inner type here:
		// array(optional(x)) parses the same as array(x). Known quirk of
		// the dialect, kept as-is.
		if inner.Kind == KindOptional {
			inner = inner.Elem
		}
		return &TypeNode{Kind: KindArray, Raw: expr, Elem: inner}, nil
	}

	if m := idRe.FindStringSubmatch(expr); m != nil {
		return &TypeNode{Kind: KindReference, Raw: expr, Table: m[1]}, nil
	}

	if m := unionRe.FindStringSubmatch(expr); m != nil {
		var alts []*TypeNode
		for _, part := range SplitTopLevel(m[1], ',') {
			alt, err := ParseTypeExpressionWith(part, rep)
			if err != nil {
				return nil, err
			}
			alts = append(alts, alt)
		}
		return &TypeNode{Kind: KindUnion, Raw: expr, Alternatives: alts}, nil
	}

	if objectRe.MatchString(expr) {
		body, err := ExtractBalanced(expr, 0)
		if err != nil {
			return nil, err
		}
		node := &TypeNode{Kind: KindObject, Raw: expr}
		for _, pair := range SplitTopLevel(body, ',') {
			colon := indexTopLevel(pair, ':')
			if colon < 0 {
				continue
			}
			name := strings.TrimSpace(pair[:colon])
			value, err := ParseTypeExpressionWith(pair[colon+1:], rep)
			if err != nil {
				return nil, err
			}
			node.Fields = append(node.Fields, ObjectField{Name: name, Type: value})
		}
		return node, nil
	}

	if m := atomRe.FindStringSubmatch(expr); m != nil {
		return &TypeNode{Kind: KindAtom, Raw: expr, Base: m[1]}, nil
	}

	rep.Warnf("unrecognized type expression %q, treating as unknown", expr)
	return &TypeNode{Kind: KindAtom, Raw: expr, Base: UnknownAtom}, nil
}
