package resolver

import (
	"strings"

	"github.com/convexgen/convexgen/report"
	"github.com/convexgen/convexgen/rules"
)

// FieldOverride is a per-field validation override, usually loaded from the
// project config. Set flags add format checks; Min/Max add length bounds.
type FieldOverride struct {
	Email   bool   `yaml:"email"`
	URL     bool   `yaml:"url"`
	UUID    bool   `yaml:"uuid"`
	Pattern string `yaml:"pattern"`
	Min     *int   `yaml:"min"`
	Max     *int   `yaml:"max"`
	Message string `yaml:"message"`
}

// Resolver maps parsed fields to validation rules. Resolution is by declared
// base type first, then field-name heuristics, then per-table overrides.
type Resolver struct {
	rep       report.Reporter
	overrides map[string]map[string]FieldOverride
}

func New(rep report.Reporter) *Resolver {
	if rep == nil {
		rep = report.Discard
	}
	return &Resolver{rep: rep, overrides: map[string]map[string]FieldOverride{}}
}

// Override registers a per-field override. Later registrations replace
// earlier ones for the same table and field.
func (r *Resolver) Override(table, field string, o FieldOverride) {
	if r.overrides[table] == nil {
		r.overrides[table] = map[string]FieldOverride{}
	}
	r.overrides[table][field] = o
}

// Resolve is the callback handed to schema.Parse.
func (r *Resolver) Resolve(table, field, baseType string, optional bool) rules.Node {
	rule := r.baseRule(table, field, baseType)
	if optional {
		rule = rules.Optional{Inner: rule}
	}
	return rule
}

func (r *Resolver) baseRule(table, field, baseType string) rules.Node {
	switch baseType {
	case "string", "id":
		return rules.String{Checks: r.stringChecks(table, field)}
	case "number", "float64":
		return rules.Number{Checks: r.numberChecks(table, field)}
	case "int64", "bigint":
		return rules.Primitive{K: rules.KindBigInt}
	case "boolean":
		return rules.Primitive{K: rules.KindBoolean}
	case "null":
		return rules.Primitive{K: rules.KindNull}
	case "array":
		return rules.Array{Item: rules.Primitive{K: rules.KindAny}}
	case "object":
		return rules.Object{}
	case "union":
		return rules.Primitive{K: rules.KindAny}
	case "bytes", "any":
		return rules.Primitive{K: rules.KindAny}
	default:
		r.rep.Warnf("no rule mapping for base type %q on %s.%s, using any", baseType, table, field)
		return rules.Primitive{K: rules.KindAny}
	}
}

func (r *Resolver) stringChecks(table, field string) []rules.Check {
	var checks []rules.Check
	o, hasOverride := r.override(table, field)

	name := strings.ToLower(field)
	switch {
	case hasOverride && o.Email, !hasOverride && strings.Contains(name, "email"):
		checks = append(checks, rules.Check{Name: "email", Message: o.Message})
	case hasOverride && o.URL, !hasOverride && (strings.Contains(name, "url") || strings.HasSuffix(name, "link")):
		checks = append(checks, rules.Check{Name: "url", Message: o.Message})
	case hasOverride && o.UUID, !hasOverride && name == "uuid":
		checks = append(checks, rules.Check{Name: "uuid", Message: o.Message})
	}

	if hasOverride {
		if o.Pattern != "" {
			checks = append(checks, rules.Check{Name: "regex", Value: o.Pattern})
		}
		if o.Min != nil {
			checks = append(checks, rules.Check{Name: "min", Value: *o.Min, Inclusive: true, Message: o.Message})
		}
		if o.Max != nil {
			checks = append(checks, rules.Check{Name: "max", Value: *o.Max, Inclusive: true, Message: o.Message})
		}
	}
	return checks
}

func (r *Resolver) numberChecks(table, field string) []rules.Check {
	o, ok := r.override(table, field)
	if !ok {
		return nil
	}
	var checks []rules.Check
	if o.Min != nil {
		checks = append(checks, rules.Check{Name: "min", Value: *o.Min, Inclusive: true, Message: o.Message})
	}
	if o.Max != nil {
		checks = append(checks, rules.Check{Name: "max", Value: *o.Max, Inclusive: true, Message: o.Message})
	}
	return checks
}

func (r *Resolver) override(table, field string) (FieldOverride, bool) {
	o, ok := r.overrides[table][field]
	return o, ok
}
