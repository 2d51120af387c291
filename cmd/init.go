package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/convexgen/convexgen/loader"
	"github.com/spf13/cobra"
)

const starterSchema = `import { defineSchema, defineTable } from "convex/server";
import { v } from "convex/values";

export default defineSchema({
  todos: defineTable({
    text: v.string(),
    done: v.boolean(),
    dueAt: v.optional(v.number()),
    tags: v.array(v.string()),
  }).index("by_done", ["done"]),
});
`

const starterConfig = `# convexgen project configuration
schema: convex/schema.ts

output:
  backend: convex
  components: src/components
  routes: src/routes

validation:
  includeMessages: true

# Per-field validation overrides, e.g.:
# overrides:
#   users:
#     email:
#       email: true
#       max: 320
#       message: "Enter a valid email address"
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new convexgen project",
	Long: `Create a starter convexgen.yaml and, when missing, an example
convex/schema.ts to generate from.

Examples:
  convexgen init
`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(loader.DefaultConfigFile); err == nil {
			fmt.Printf("❌ %s already exists!\n", loader.DefaultConfigFile)
			return
		}
		if err := os.WriteFile(loader.DefaultConfigFile, []byte(starterConfig), 0644); err != nil {
			fmt.Println("❌ Writing config:", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Created %s\n", loader.DefaultConfigFile)

		schemaPath := filepath.Join("convex", "schema.ts")
		if _, err := os.Stat(schemaPath); err == nil {
			fmt.Printf("ℹ️  %s already exists, leaving it alone.\n", schemaPath)
			return
		}
		if err := os.MkdirAll("convex", 0755); err != nil {
			fmt.Println("❌ Creating convex folder:", err)
			os.Exit(1)
		}
		if err := os.WriteFile(schemaPath, []byte(starterSchema), 0644); err != nil {
			fmt.Println("❌ Writing schema:", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Created %s\n", schemaPath)
		fmt.Println("\nNext: convexgen generate")
	},
}
