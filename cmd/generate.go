package cmd

import (
	"fmt"
	"os"

	"github.com/convexgen/convexgen/generator"
	"github.com/convexgen/convexgen/loader"
	"github.com/convexgen/convexgen/report"
	"github.com/convexgen/convexgen/resolver"
	"github.com/convexgen/convexgen/rules"
	"github.com/convexgen/convexgen/schema"
	"github.com/convexgen/convexgen/writer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	schemaFile     string
	configFile     string
	dryRunGenerate bool
	backupGenerate bool
)

func init() {
	generateCmd.Flags().StringVarP(&schemaFile, "schema", "f", "", "Schema file to parse (default: auto-discover schema.ts)")
	generateCmd.Flags().StringVarP(&configFile, "config", "c", loader.DefaultConfigFile, "Project config file")
	generateCmd.Flags().BoolVar(&dryRunGenerate, "dry-run", false, "Preview the files that would be written without touching the working tree")
	generateCmd.Flags().BoolVar(&backupGenerate, "backup", true, "Save a .bak copy before overwriting a generated file")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate backend stubs, components and routes from the schema",
	Long: `Generate application source files from the schema definition.

Examples:
  convexgen generate                  # Generate from the discovered schema.ts
  convexgen generate -f convex/schema.ts
  convexgen generate --dry-run        # Show the plan only
`,
	Run: func(cmd *cobra.Command, args []string) {
		rep := &report.Console{Verbose: verbose}

		cfg, err := loader.LoadConfig(configFile)
		if err != nil {
			fmt.Println("❌ Loading config:", err)
			os.Exit(1)
		}

		path, err := loader.FindSchema(schemaFile)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}
		document, err := loader.ReadSchema(path)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}

		res := resolver.New(rep)
		cfg.ApplyOverrides(res)

		parsed, err := schema.Parse(document, res.Resolve, rep)
		if err != nil {
			fmt.Println("❌ Parsing schema:", err)
			os.Exit(1)
		}

		files, err := generator.Generate(parsed, generator.Options{
			BackendDir:    cfg.Output.Backend,
			ComponentsDir: cfg.Output.Components,
			RoutesDir:     cfg.Output.Routes,
			Serialize: rules.Options{
				IncludeErrorMessages: cfg.Validation.IncludeMessages,
				Reporter:             rep,
			},
			Reporter: rep,
		})
		if err != nil {
			fmt.Println("❌ Generating files:", err)
			os.Exit(1)
		}

		manifest, err := writer.LoadManifest(".")
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}
		plan, err := writer.BuildPlan(".", files, manifest)
		if err != nil {
			fmt.Println("❌ Planning writes:", err)
			os.Exit(1)
		}

		printPlan(plan)

		if dryRunGenerate {
			fmt.Println("(Dry run only. No files were written.)")
			return
		}

		if err := plan.Apply(".", writer.ApplyOptions{Backup: backupGenerate}); err != nil {
			fmt.Println("❌ Writing files:", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Generated %d files (%d new, %d updated, %d unchanged, %d skipped)\n",
			len(plan.Entries), plan.Count(writer.Create), plan.Count(writer.Overwrite),
			plan.Count(writer.Unchanged), plan.Count(writer.SkipEdited))
	},
}

func printPlan(plan *writer.Plan) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	blue := color.New(color.FgBlue)

	for _, e := range plan.Entries {
		switch e.Action {
		case writer.Create:
			green.Printf("  + %s\n", e.File.Path)
		case writer.Overwrite:
			yellow.Printf("  ~ %s\n", e.File.Path)
		case writer.Unchanged:
			blue.Printf("  = %s\n", e.File.Path)
		case writer.SkipEdited:
			yellow.Printf("  ! %s (edited by hand, skipping)\n", e.File.Path)
		}
	}
}
