package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "convexgen",
	Short: "Generate app source files from a Convex schema",
	Long: `convexgen parses a Convex schema.ts and stamps out backend
query/mutation stubs, React form components, list/detail views and routes,
with Zod validators derived from your field types.

Examples:

  convexgen init
  convexgen generate
  convexgen validate
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug diagnostics")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(introspectCmd)
	rootCmd.AddCommand(docsCmd)
}
