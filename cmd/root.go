package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/pathdive/internal/ui"
)

const Version = "0.1.0"

var limitFlag int

var rootCmd = &cobra.Command{
	Use:   "pathdive [PATH]",
	Short: "Find filesystem paths that are too long",
	Long: `PathDive walks a directory tree and reports every path whose length
exceeds a configurable limit. Long paths break Windows tools, archive
extractors and sync clients; PathDive finds them before they bite.

Run without arguments for the interactive UI, or use "pathdive scan"
for plain CSV output suitable for scripts.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runRootCommand,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&limitFlag, "limit", "l", 0,
		"path length limit in characters (0 uses the saved default)")
	rootCmd.AddCommand(scanCmd)
}

func runRootCommand(cmd *cobra.Command, args []string) {
	var scanPath string
	if len(args) > 0 {
		scanPath = filepath.Clean(args[0])

		info, err := os.Stat(scanPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot access path %q: %v\n", scanPath, err)
			os.Exit(1)
		}
		if !info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: path %q is not a directory\n", scanPath)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		ui.NewApp(Version, scanPath, limitFlag),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
