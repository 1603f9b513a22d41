package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumipallolabs/pathdive/internal/core"
	"github.com/lumipallolabs/pathdive/internal/export"
	"github.com/lumipallolabs/pathdive/internal/model"
	"github.com/lumipallolabs/pathdive/internal/scanner"
)

var outputFlag string

var scanCmd = &cobra.Command{
	Use:   "scan PATH",
	Short: "Scan a folder and print over-limit paths as CSV",
	Long: `Scan walks PATH without the interactive UI and writes the findings
as CSV, longest path first. Output goes to stdout unless -o is given.
Interrupting with Ctrl-C stops the walk and emits the partial results.`,
	Args: cobra.ExactArgs(1),
	RunE: runScanCommand,
}

func init() {
	scanCmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"write the CSV report to this file instead of stdout")
}

func runScanCommand(cmd *cobra.Command, args []string) error {
	root := filepath.Clean(args[0])
	limit := limitFlag
	if limit <= 0 {
		limit = core.DefaultLimit
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", root)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := scanner.NewWalker()

	var entries []model.Entry
	var scanned int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range w.Snapshots() {
			scanned = snap.Scanned
			entries = append(entries, snap.NewEntries...)
			fmt.Fprintf(os.Stderr, "\rscanned %d, found %d", scanned, len(entries))
		}
	}()

	fmt.Fprintf(os.Stderr, "scanning %s with limit %d\n", root, limit)
	result := w.Scan(ctx, root, limit)
	<-done
	fmt.Fprintln(os.Stderr)

	if result.Outcome == scanner.Cancelled {
		fmt.Fprintln(os.Stderr, "scan interrupted, writing partial results")
	}
	for _, scanErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", scanErr)
	}

	model.SortByLength(entries)

	if outputFlag == "" {
		_, err := os.Stdout.WriteString(export.Render(entries))
		return err
	}

	if err := export.Write(entries, outputFlag); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, export.Summary(len(entries), outputFlag))
	return nil
}
