package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Reporter receives non-fatal diagnostics from the parser, the resolver and
// the serializer. Degraded output (unknown type expressions, unsupported rule
// kinds, skipped identifiers) is reported here and never changes the shape of
// a returned value.
type Reporter interface {
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Discard drops every diagnostic.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Warnf(string, ...interface{})  {}
func (discard) Debugf(string, ...interface{}) {}

// Collector accumulates diagnostics in memory so callers can inspect or
// re-render them after the fact.
type Collector struct {
	Warnings []string
	Debug    []string
}

func (c *Collector) Warnf(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Collector) Debugf(format string, args ...interface{}) {
	c.Debug = append(c.Debug, fmt.Sprintf(format, args...))
}

// Console writes diagnostics to stderr. Warnings are yellow; debug lines are
// only written when Verbose is set.
type Console struct {
	Verbose bool
}

func (c *Console) Warnf(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(os.Stderr, "⚠️  "+format+"\n", args...)
}

func (c *Console) Debugf(format string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(os.Stderr, "   "+format+"\n", args...)
}
