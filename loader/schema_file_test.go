package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestFindSchemaExplicitMissing(t *testing.T) {
	_, err := FindSchema(filepath.Join(t.TempDir(), "absent.ts"))
	assert.Error(t, err)
}

func TestFindSchemaExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.ts")
	require.NoError(t, os.WriteFile(path, []byte("defineSchema({})"), 0644))

	got, err := FindSchema(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindSchemaWellKnownLocation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "convex"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "convex", "schema.ts"), []byte("x"), 0644))
	chdir(t, dir)

	got, err := FindSchema("")
	require.NoError(t, err)
	assert.Equal(t, "convex/schema.ts", got)
}

func TestFindSchemaWalkSkipsNodeModules(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node_modules", "pkg", "schema.ts"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app", "schema.ts"), []byte("x"), 0644))
	chdir(t, dir)

	got, err := FindSchema("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("app", "schema.ts"), got)
}

func TestFindSchemaNothingFound(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := FindSchema("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "convexgen init")
}

func TestReadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.ts")
	require.NoError(t, os.WriteFile(path, []byte("defineSchema({})"), 0644))

	text, err := ReadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "defineSchema({})", text)
}
