package rules

// Kind identifies a validation-rule node variant.
type Kind string

const (
	KindString             Kind = "string"
	KindNumber             Kind = "number"
	KindBoolean            Kind = "boolean"
	KindDate               Kind = "date"
	KindBigInt             Kind = "bigint"
	KindSymbol             Kind = "symbol"
	KindUndefined          Kind = "undefined"
	KindNull               Kind = "null"
	KindVoid               Kind = "void"
	KindAny                Kind = "any"
	KindUnknown            Kind = "unknown"
	KindNever              Kind = "never"
	KindArray              Kind = "array"
	KindObject             Kind = "object"
	KindUnion              Kind = "union"
	KindDiscriminatedUnion Kind = "discriminatedUnion"
	KindIntersection       Kind = "intersection"
	KindTuple              Kind = "tuple"
	KindRecord             Kind = "record"
	KindMap                Kind = "map"
	KindSet                Kind = "set"
	KindFunction           Kind = "function"
	KindLazy               Kind = "lazy"
	KindLiteral            Kind = "literal"
	KindEnum               Kind = "enum"
	KindNativeEnum         Kind = "nativeEnum"
	KindPromise            Kind = "promise"
	KindBranded            Kind = "branded"
	KindPipeline           Kind = "pipeline"
	KindReadonly           Kind = "readonly"
	KindOptional           Kind = "optional"
	KindNullable           Kind = "nullable"
	KindDefault            Kind = "default"
	KindCatch              Kind = "catch"
)

// Node is the read surface the serializer works against: a kind tag plus the
// per-kind payload on the concrete type. The serializer only ever reads nodes;
// it never constructs or mutates them.
type Node interface {
	RuleKind() Kind
}

// Check is one refinement chained onto a string, number or array rule.
// Value carries the bound, length, pattern source or call argument as the
// check requires; Inclusive distinguishes gte/lte from gt/lt on numeric
// bounds. Message is an optional custom error message.
type Check struct {
	Name      string
	Value     interface{}
	Inclusive bool
	Message   string
}

// String is a string rule with optional chained checks (min, max, email, url,
// uuid, regex, includes, startsWith, endsWith, datetime, ip).
type String struct {
	Checks []Check
}

func (String) RuleKind() Kind { return KindString }

// Number is a numeric rule with optional bound checks (min, max, int,
// multipleOf, finite).
type Number struct {
	Checks []Check
}

func (Number) RuleKind() Kind { return KindNumber }

// Primitive covers the leaf kinds that serialize to a bare constructor call:
// boolean, date, bigint, symbol, undefined, null, void, any, unknown, never.
type Primitive struct {
	K Kind
}

func (p Primitive) RuleKind() Kind { return p.K }

// Array wraps an item rule. Length bounds on the array itself (as opposed to
// checks on the item) live in MinLen/MaxLen/ExactLen.
type Array struct {
	Item     Node
	MinLen   *int
	MaxLen   *int
	ExactLen *int
	Messages map[string]string
}

func (Array) RuleKind() Kind { return KindArray }

// Object is deliberately opaque: object rule bodies are not serialized and
// always render as an empty object rule.
type Object struct{}

func (Object) RuleKind() Kind { return KindObject }

// Union is an ordered list of alternatives.
type Union struct {
	Alternatives []Node
}

func (Union) RuleKind() Kind { return KindUnion }

// DiscriminatedUnion is not serializable; it renders the accept-anything
// placeholder.
type DiscriminatedUnion struct{}

func (DiscriminatedUnion) RuleKind() Kind { return KindDiscriminatedUnion }

// Intersection of two rules, rendered with .and().
type Intersection struct {
	Left  Node
	Right Node
}

func (Intersection) RuleKind() Kind { return KindIntersection }

// Tuple is an ordered fixed-length list of item rules.
type Tuple struct {
	Items []Node
}

func (Tuple) RuleKind() Kind { return KindTuple }

// Record maps string keys to a value rule.
type Record struct {
	Value Node
}

func (Record) RuleKind() Kind { return KindRecord }

// Map rules are not serializable beyond an any/any placeholder.
type Map struct{}

func (Map) RuleKind() Kind { return KindMap }

// Set wraps a value rule.
type Set struct {
	Value Node
}

func (Set) RuleKind() Kind { return KindSet }

// Function rules render a bare function constructor.
type Function struct{}

func (Function) RuleKind() Kind { return KindFunction }

// Lazy rules are never expanded; they render a lazy any placeholder.
type Lazy struct{}

func (Lazy) RuleKind() Kind { return KindLazy }

// Literal holds a string, number or boolean value.
type Literal struct {
	Value interface{}
}

func (Literal) RuleKind() Kind { return KindLiteral }

// Enum is an ordered list of string values.
type Enum struct {
	Values []string
}

func (Enum) RuleKind() Kind { return KindEnum }

// NativeEnum cannot be reconstructed from text; it renders the
// accept-anything placeholder.
type NativeEnum struct{}

func (NativeEnum) RuleKind() Kind { return KindNativeEnum }

// Promise wraps an inner rule.
type Promise struct {
	Inner Node
}

func (Promise) RuleKind() Kind { return KindPromise }

// Branded wraps an inner rule; the brand itself is dropped on serialization.
type Branded struct {
	Inner Node
}

func (Branded) RuleKind() Kind { return KindBranded }

// Pipeline chains an input rule into an output rule via .pipe().
type Pipeline struct {
	In  Node
	Out Node
}

func (Pipeline) RuleKind() Kind { return KindPipeline }

// Readonly wraps an inner rule.
type Readonly struct {
	Inner Node
}

func (Readonly) RuleKind() Kind { return KindReadonly }

// Optional wraps an inner rule.
type Optional struct {
	Inner Node
}

func (Optional) RuleKind() Kind { return KindOptional }

// Nullable wraps an inner rule.
type Nullable struct {
	Inner Node
}

func (Nullable) RuleKind() Kind { return KindNullable }

// Default wraps an inner rule with a default value. Function-valued defaults
// cannot be reconstructed and render a placeholder.
type Default struct {
	Inner Node
	Value interface{}
}

func (Default) RuleKind() Kind { return KindDefault }

// FuncValue marks a Default whose value was a function in the source rule.
type FuncValue struct{}

// Catch wraps an inner rule; the caught fallback value is not recoverable.
type Catch struct {
	Inner Node
}

func (Catch) RuleKind() Kind { return KindCatch }

// Custom is an escape hatch for rule kinds this package does not model. The
// serializer resolves it through Options.CustomKindOverrides or falls back to
// the accept-anything placeholder.
type Custom struct {
	Name string
}

func (c Custom) RuleKind() Kind { return Kind(c.Name) }
