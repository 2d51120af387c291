package rules

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/convexgen/convexgen/report"
)

// AnyRule is the accept-anything placeholder emitted for missing input and
// for every construct whose source form cannot be reconstructed.
const AnyRule = "z.any()"

// ErrInvalidNode is returned when a node claims a kind tag but is missing a
// required field (both sides of an intersection, both ends of a pipeline).
// Every recognized-but-unsupported kind degrades to AnyRule instead.
var ErrInvalidNode = errors.New("invalid rule node")

// Options controls serialization.
type Options struct {
	// IncludeErrorMessages re-emits custom error messages on refinement
	// calls, e.g. .min(1, "required").
	IncludeErrorMessages bool

	// CustomKindOverrides maps a kind name to literal replacement text for
	// node kinds this package does not recognize.
	CustomKindOverrides map[string]string

	Reporter report.Reporter
}

// Serialize converts a validation-rule tree back into equivalent rule
// construction source text. A nil node serializes to AnyRule with a warning.
// The visited set guarding against self-referential wrapper chains is scoped
// to this call.
func Serialize(node Node, opts Options) (string, error) {
	if opts.Reporter == nil {
		opts.Reporter = report.Discard
	}
	s := &serializer{opts: opts, visited: map[reflect.Type]bool{}}
	return s.serialize(node)
}

type serializer struct {
	opts    Options
	visited map[reflect.Type]bool
}

func (s *serializer) serialize(node Node) (string, error) {
	if node == nil {
		s.opts.Reporter.Warnf("missing rule node, emitting %s", AnyRule)
		return AnyRule, nil
	}

	// Nodes held by pointer (as self-referential chains must be) dispatch
	// and guard identically to their value form.
	if v := reflect.ValueOf(node); v.Kind() == reflect.Ptr {
		if v.IsNil() {
			s.opts.Reporter.Warnf("missing rule node, emitting %s", AnyRule)
			return AnyRule, nil
		}
		node = v.Elem().Interface().(Node)
	}

	switch n := node.(type) {
	case Primitive:
		return "z." + string(n.K) + "()", nil

	case String:
		return s.stringRule(n), nil

	case Number:
		return s.numberRule(n), nil

	case Array:
		item, err := s.serialize(n.Item)
		if err != nil {
			return "", err
		}
		out := fmt.Sprintf("z.array(%s)", item)
		if n.ExactLen != nil {
			out += fmt.Sprintf(".length(%d%s)", *n.ExactLen, s.arrayMsg(n, "length"))
		}
		if n.MinLen != nil {
			out += fmt.Sprintf(".min(%d%s)", *n.MinLen, s.arrayMsg(n, "min"))
		}
		if n.MaxLen != nil {
			out += fmt.Sprintf(".max(%d%s)", *n.MaxLen, s.arrayMsg(n, "max"))
		}
		return out, nil

	case Object:
		// Object rule bodies are never reconstructed.
		return "z.object({})", nil

	case Union:
		if len(n.Alternatives) == 0 {
			s.opts.Reporter.Warnf("union with no alternatives, emitting %s", AnyRule)
			return AnyRule, nil
		}
		parts := make([]string, 0, len(n.Alternatives))
		for _, alt := range n.Alternatives {
			text, err := s.serialize(alt)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		}
		return fmt.Sprintf("z.union([%s])", strings.Join(parts, ", ")), nil

	case DiscriminatedUnion:
		s.opts.Reporter.Warnf("discriminated unions are not serializable, emitting %s", AnyRule)
		return AnyRule, nil

	case Intersection:
		if n.Left == nil || n.Right == nil {
			return "", fmt.Errorf("intersection with missing side: %w", ErrInvalidNode)
		}
		left, err := s.serialize(n.Left)
		if err != nil {
			return "", err
		}
		right, err := s.serialize(n.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.and(%s)", left, right), nil

	case Tuple:
		parts := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			text, err := s.serialize(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		}
		return fmt.Sprintf("z.tuple([%s])", strings.Join(parts, ", ")), nil

	case Record:
		if n.Value == nil {
			return "z.record(z.any())", nil
		}
		value, err := s.serialize(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("z.record(%s)", value), nil

	case Map:
		s.opts.Reporter.Warnf("map rules are not serializable, emitting any/any placeholder")
		return "z.map(z.any(), z.any())", nil

	case Set:
		if n.Value == nil {
			return "z.set(z.any())", nil
		}
		value, err := s.serialize(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("z.set(%s)", value), nil

	case Function:
		return "z.function()", nil

	case Lazy:
		// Recursive definitions are not expanded.
		return "z.lazy(() => z.any())", nil

	case Literal:
		switch v := n.Value.(type) {
		case string:
			return `z.literal("` + jsEscape(v) + `")`, nil
		case bool, int, int64, float64:
			return fmt.Sprintf("z.literal(%v)", v), nil
		default:
			s.opts.Reporter.Warnf("literal of unsupported type %T, emitting %s", n.Value, AnyRule)
			return AnyRule, nil
		}

	case Enum:
		if len(n.Values) == 0 {
			s.opts.Reporter.Warnf("enum with no values, emitting %s", AnyRule)
			return AnyRule, nil
		}
		quoted := make([]string, len(n.Values))
		for i, v := range n.Values {
			quoted[i] = `"` + jsEscape(v) + `"`
		}
		return fmt.Sprintf("z.enum([%s])", strings.Join(quoted, ", ")), nil

	case NativeEnum:
		s.opts.Reporter.Warnf("native enums are not serializable, emitting %s", AnyRule)
		return AnyRule, nil

	case Promise:
		if s.revisited(node) {
			return AnyRule, nil
		}
		inner, err := s.descend(node, n.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("z.promise(%s)", inner), nil

	case Branded:
		// Brand metadata is dropped; the inner rule passes through.
		if s.revisited(node) {
			return AnyRule, nil
		}
		return s.descend(node, n.Inner)

	case Pipeline:
		if n.In == nil || n.Out == nil {
			return "", fmt.Errorf("pipeline with missing side: %w", ErrInvalidNode)
		}
		in, err := s.serialize(n.In)
		if err != nil {
			return "", err
		}
		out, err := s.serialize(n.Out)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.pipe(%s)", in, out), nil

	case Readonly:
		if s.revisited(node) {
			return AnyRule, nil
		}
		inner, err := s.descend(node, n.Inner)
		if err != nil {
			return "", err
		}
		return inner + ".readonly()", nil

	case Optional:
		if s.revisited(node) {
			return AnyRule, nil
		}
		inner, err := s.descend(node, n.Inner)
		if err != nil {
			return "", err
		}
		return inner + ".optional()", nil

	case Nullable:
		if s.revisited(node) {
			return AnyRule, nil
		}
		inner, err := s.descend(node, n.Inner)
		if err != nil {
			return "", err
		}
		return inner + ".nullable()", nil

	case Default:
		if s.revisited(node) {
			return AnyRule, nil
		}
		inner, err := s.descend(node, n.Inner)
		if err != nil {
			return "", err
		}
		return inner + fmt.Sprintf(".default(%s)", s.defaultValue(n.Value)), nil

	case Catch:
		if s.revisited(node) {
			return AnyRule, nil
		}
		inner, err := s.descend(node, n.Inner)
		if err != nil {
			return "", err
		}
		// The caught fallback value is not recoverable from the rule object.
		return inner + ".catch(undefined /* original catch value */)", nil

	default:
		name := string(node.RuleKind())
		if text, ok := s.opts.CustomKindOverrides[name]; ok {
			return text, nil
		}
		s.opts.Reporter.Warnf("unsupported rule kind %q, emitting %s", name, AnyRule)
		return AnyRule, nil
	}
}

// revisited checks the recursion guard for a wrapper node. The guard is keyed
// on the node's runtime type, the closest analogue of constructor identity:
// it breaks self-referential wrapper chains, not arbitrary cycles.
func (s *serializer) revisited(node Node) bool {
	if s.visited[reflect.TypeOf(node)] {
		s.opts.Reporter.Warnf("recursive %s wrapper, emitting %s", node.RuleKind(), AnyRule)
		return true
	}
	return false
}

// descend serializes a wrapper's child with the wrapper's identity held in
// the visited set for the duration of the subtree.
func (s *serializer) descend(wrapper, child Node) (string, error) {
	t := reflect.TypeOf(wrapper)
	s.visited[t] = true
	defer delete(s.visited, t)
	return s.serialize(child)
}

func (s *serializer) stringRule(n String) string {
	var b strings.Builder
	b.WriteString("z.string()")
	for _, c := range n.Checks {
		switch c.Name {
		case "min", "max", "length":
			fmt.Fprintf(&b, ".%s(%v%s)", c.Name, c.Value, s.checkMsg(c))
		case "email", "url", "uuid", "cuid", "datetime", "ip":
			fmt.Fprintf(&b, ".%s(%s)", c.Name, strings.TrimPrefix(s.checkMsg(c), ", "))
		case "regex":
			// Pattern source is re-emitted verbatim.
			fmt.Fprintf(&b, ".regex(/%v/)", c.Value)
		case "includes", "startsWith", "endsWith":
			fmt.Fprintf(&b, ".%s(\"%s\"%s)", c.Name, jsEscape(fmt.Sprintf("%v", c.Value)), s.checkMsg(c))
		case "trim", "toLowerCase", "toUpperCase":
			fmt.Fprintf(&b, ".%s()", c.Name)
		default:
			s.opts.Reporter.Debugf("skipping unrecognized string check %q", c.Name)
		}
	}
	return b.String()
}

func (s *serializer) numberRule(n Number) string {
	var b strings.Builder
	b.WriteString("z.number()")
	for _, c := range n.Checks {
		switch c.Name {
		case "min":
			if isZero(c.Value) && c.Inclusive {
				fmt.Fprintf(&b, ".nonnegative(%s)", strings.TrimPrefix(s.checkMsg(c), ", "))
			} else if isZero(c.Value) {
				fmt.Fprintf(&b, ".positive(%s)", strings.TrimPrefix(s.checkMsg(c), ", "))
			} else if c.Inclusive {
				fmt.Fprintf(&b, ".gte(%v%s)", c.Value, s.checkMsg(c))
			} else {
				fmt.Fprintf(&b, ".gt(%v%s)", c.Value, s.checkMsg(c))
			}
		case "max":
			if c.Inclusive {
				fmt.Fprintf(&b, ".lte(%v%s)", c.Value, s.checkMsg(c))
			} else {
				fmt.Fprintf(&b, ".lt(%v%s)", c.Value, s.checkMsg(c))
			}
		case "int":
			fmt.Fprintf(&b, ".int(%s)", strings.TrimPrefix(s.checkMsg(c), ", "))
		case "multipleOf":
			fmt.Fprintf(&b, ".multipleOf(%v%s)", c.Value, s.checkMsg(c))
		case "finite":
			b.WriteString(".finite()")
		default:
			s.opts.Reporter.Debugf("skipping unrecognized number check %q", c.Name)
		}
	}
	return b.String()
}

// checkMsg renders the optional message argument for a chained check,
// including the leading comma.
func (s *serializer) checkMsg(c Check) string {
	if !s.opts.IncludeErrorMessages || c.Message == "" {
		return ""
	}
	return `, "` + jsEscape(c.Message) + `"`
}

func (s *serializer) arrayMsg(n Array, check string) string {
	if !s.opts.IncludeErrorMessages || n.Messages[check] == "" {
		return ""
	}
	return `, "` + jsEscape(n.Messages[check]) + `"`
}

func (s *serializer) defaultValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "undefined"
	case FuncValue:
		// Function bodies cannot be reconstructed from a closure.
		return "undefined /* function default */"
	case string:
		return `"` + jsEscape(val) + `"`
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		s.opts.Reporter.Warnf("default value of unsupported type %T, emitting undefined", v)
		return "undefined"
	}
}

func isZero(v interface{}) bool {
	switch n := v.(type) {
	case int:
		return n == 0
	case int64:
		return n == 0
	case float64:
		return n == 0
	}
	return false
}
