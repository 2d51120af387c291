package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/convexgen/convexgen/loader"
	"github.com/convexgen/convexgen/report"
	"github.com/convexgen/convexgen/schema"
	"github.com/spf13/cobra"
)

var (
	docsSchemaFile string
	docsOutput     string
)

func init() {
	docsCmd.Flags().StringVarP(&docsSchemaFile, "schema", "f", "", "Schema file to document (default: auto-discover schema.ts)")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Write markdown here instead of stdout")
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate markdown documentation from the schema",
	Long: `Render the parsed schema as a markdown reference: one section per
table with its fields, types and indexes.

Examples:
  convexgen docs
  convexgen docs --output docs/schema.md
`,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := loader.FindSchema(docsSchemaFile)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}
		document, err := loader.ReadSchema(path)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}

		parsed, err := schema.Parse(document, nil, &report.Console{Verbose: verbose})
		if err != nil {
			fmt.Println("❌ Parsing schema:", err)
			os.Exit(1)
		}

		md := renderMarkdown(parsed)
		if docsOutput == "" {
			fmt.Print(md)
			return
		}
		if err := os.WriteFile(docsOutput, []byte(md), 0644); err != nil {
			fmt.Println("❌ Writing docs:", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Documentation written to %s\n", docsOutput)
	},
}

func renderMarkdown(s *schema.Schema) string {
	var b strings.Builder
	b.WriteString("# Schema Reference\n\n")
	for _, table := range s.Tables {
		fmt.Fprintf(&b, "## %s\n\n", table.Name)
		b.WriteString("| Field | Type | Optional | Array |\n")
		b.WriteString("|-------|------|----------|-------|\n")
		for _, f := range table.Fields {
			fmt.Fprintf(&b, "| %s | `%s` | %v | %v |\n", f.Name, f.RawType, f.Optional, f.IsArray)
		}
		if len(table.Indexes) > 0 {
			var names []string
			for name := range table.Indexes {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintf(&b, "\nIndexes: %s\n", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
