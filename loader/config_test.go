package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/convexgen/convexgen/resolver"
	"github.com/convexgen/convexgen/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "convex", cfg.Output.Backend)
	assert.Equal(t, "src/components", cfg.Output.Components)
	assert.Equal(t, "src/routes", cfg.Output.Routes)
	assert.True(t, cfg.Validation.IncludeMessages)
}

func TestLoadConfigParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convexgen.yaml")
	content := `
schema: convex/schema.ts
output:
  backend: api
validation:
  includeMessages: false
overrides:
  users:
    email:
      email: true
      max: 320
      message: "Enter a valid email"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "convex/schema.ts", cfg.Schema)
	assert.Equal(t, "api", cfg.Output.Backend)
	// Unset output fields fall back to defaults.
	assert.Equal(t, "src/components", cfg.Output.Components)
	assert.False(t, cfg.Validation.IncludeMessages)

	o := cfg.Overrides["users"]["email"]
	assert.True(t, o.Email)
	require.NotNil(t, o.Max)
	assert.Equal(t, 320, *o.Max)
	assert.Equal(t, "Enter a valid email", o.Message)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	min := 1
	cfg.Overrides = map[string]map[string]resolver.FieldOverride{
		"todos": {"text": {Min: &min}},
	}

	r := resolver.New(nil)
	cfg.ApplyOverrides(r)

	rule := r.Resolve("todos", "text", "string", false)
	str, ok := rule.(rules.String)
	require.True(t, ok)
	require.Len(t, str.Checks, 1)
	assert.Equal(t, "min", str.Checks[0].Name)
	assert.Equal(t, 1, str.Checks[0].Value)
}
