package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/convexgen/convexgen/loader"
	"github.com/convexgen/convexgen/report"
	"github.com/convexgen/convexgen/schema"
	"github.com/convexgen/convexgen/validator"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	validateSchemaFile string
	validateFormat     string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "f", "", "Schema file to validate (default: auto-discover schema.ts)")
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "Output format: text or json")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the schema without generating anything",
	Long: `Parse the schema and report problems: duplicate fields, unknown type
expressions, references to tables that do not exist.

Examples:
  convexgen validate
  convexgen validate --format json
`,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := loader.FindSchema(validateSchemaFile)
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

		result := validator.Validate(parsed)
		if validateFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				fmt.Println("❌", err)
				os.Exit(1)
			}
		} else {
			printResult(result)
		}
		if !result.Valid {
			os.Exit(1)
		}
	},
}

func printResult(result *validator.ValidationResult) {
	if result.Valid {
		color.Green("✅ Schema validation passed!")
	} else {
		color.Red("❌ Schema validation failed!")
	}

	printFindings("🔴 Errors", result.Errors)
	printFindings("🟡 Warnings", result.Warnings)
	printFindings("🔵 Info", result.Info)

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Errors: %d\n", len(result.Errors))
	fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	fmt.Printf("  • Info: %d\n", len(result.Info))
}

func printFindings(heading string, findings []validator.ValidationError) {
	if len(findings) == 0 {
		return
	}
	fmt.Printf("\n%s (%d):\n", heading, len(findings))
	for i, f := range findings {
		fmt.Printf("  %d. ", i+1)
		if f.Table != "" {
			fmt.Printf("[%s]", f.Table)
		}
		if f.Field != "" {
			fmt.Printf(".%s", f.Field)
		}
		fmt.Printf(": %s\n", f.Message)
	}
}
