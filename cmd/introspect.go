package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/convexgen/convexgen/introspect"
	"github.com/spf13/cobra"
)

var (
	introspectOut   string
	introspectForce bool
)

func init() {
	introspectCmd.Flags().StringVarP(&introspectOut, "out", "o", "", "Write the schema document here instead of stdout")
	introspectCmd.Flags().BoolVar(&introspectForce, "force", false, "Overwrite the output file if it exists")
}

var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Bootstrap a schema document from an existing Postgres database",
	Long: `Read tables, columns, foreign keys and indexes from the database at
DATABASE_URL and emit an equivalent schema document. Useful when moving an
existing application onto the toolkit.

Examples:
  convexgen introspect
  convexgen introspect --out convex/schema.ts
`,
	Run: func(cmd *cobra.Command, args []string) {
		tables, err := introspect.IntrospectDatabase()
		if err != nil {
			fmt.Println("❌ Introspecting database:", err)
			os.Exit(1)
		}
		if len(tables) == 0 {
			fmt.Println("❌ No tables found in database")
			os.Exit(1)
		}

		document := introspect.EmitSchemaDocument(tables)

		if introspectOut == "" {
			fmt.Print(document)
			return
		}
		if _, err := os.Stat(introspectOut); err == nil && !introspectForce {
			fmt.Printf("❌ %s already exists (use --force to overwrite)\n", introspectOut)
			os.Exit(1)
		}
		if dir := filepath.Dir(introspectOut); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				fmt.Println("❌ Creating output folder:", err)
				os.Exit(1)
			}
		}
		if err := os.WriteFile(introspectOut, []byte(document), 0644); err != nil {
			fmt.Println("❌ Writing schema:", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Schema written to %s (%d tables)\n", introspectOut, len(tables))
	},
}
