// Command teamselect is the CLI driver for the team selection pipeline,
// grounded on the cobra command-tree shape used elsewhere in the retrieved
// corpus: one root command, one subcommand per mode, flags bound with
// StringVarP/BoolVar.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/domain/categorymap"
	"github.com/jstittsworth/fm-teamselect/internal/obslog"
	"github.com/jstittsworth/fm-teamselect/internal/pipeline"
	"github.com/jstittsworth/fm-teamselect/internal/report"
	"github.com/jstittsworth/fm-teamselect/internal/teamerrors"
)

var (
	roleFilePath    string
	tablePath       string
	withDepth       bool
	explainUnfilled bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "teamselect",
		Short: "Select an optimal eleven from a role file and a player table",
		Long: `teamselect reads a role-and-filter file and a player table, computes a
deterministic greedy assignment of players to the eleven declared role
slots, and prints a human-readable report.`,
	}

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Run the full pipeline and print the team report",
		Run:   runSelect,
	}
	selectCmd.Flags().StringVarP(&roleFilePath, "roles", "r", "", "Path to the role-and-filter file (required)")
	selectCmd.Flags().StringVarP(&tablePath, "table", "t", "", "Path to the player table CSV (required)")
	selectCmd.Flags().BoolVar(&withDepth, "depth", false, "Append a squad-depth appendix to the report")
	selectCmd.Flags().BoolVar(&explainUnfilled, "explain-unassigned", false, "Annotate unassigned players with the categories that would have unlocked a slot")
	selectCmd.MarkFlagRequired("roles")
	selectCmd.MarkFlagRequired("table")

	dryRunCmd := &cobra.Command{
		Use:   "dry-run",
		Short: "Preview category/role eligibility without running the solver",
		Run:   runDryRun,
	}
	dryRunCmd.Flags().StringVarP(&roleFilePath, "roles", "r", "", "Path to the role-and-filter file (required)")
	dryRunCmd.Flags().StringVarP(&tablePath, "table", "t", "", "Path to the player table CSV (required)")
	dryRunCmd.MarkFlagRequired("roles")
	dryRunCmd.MarkFlagRequired("table")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("teamselect version 0.1.0")
		},
	}

	rootCmd.AddCommand(selectCmd, dryRunCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSelect(cmd *cobra.Command, args []string) {
	log := obslog.Get()

	roleFileBytes, err := os.ReadFile(roleFilePath)
	if err != nil {
		fatal(log, "failed to read role file", err)
	}

	rows, err := readTable(tablePath)
	if err != nil {
		fatal(log, "failed to read player table", err)
	}

	result, err := pipeline.Run(roleFileBytes, rows, nil)
	if err != nil {
		reportPipelineError(log, err)
	}

	for _, w := range result.Warnings {
		log.WithField("row", w.Row).Warn(w.Message)
	}

	if explainUnfilled {
		fmt.Println(report.RenderWithBreakdown(result.Players, result.Team, result.Unassigned, result.Index))
	} else {
		fmt.Println(result.Report)
	}

	if withDepth {
		if depth := report.DepthAppendix(result.Players, result.Team, result.Index); depth != "" {
			fmt.Println()
			fmt.Println(depth)
		}
	}
}

func runDryRun(cmd *cobra.Command, args []string) {
	log := obslog.Get()

	roleFileBytes, err := os.ReadFile(roleFilePath)
	if err != nil {
		fatal(log, "failed to read role file", err)
	}

	rows, err := readTable(tablePath)
	if err != nil {
		fatal(log, "failed to read player table", err)
	}

	_, players, idx, err := pipeline.Eligibility(roleFileBytes, rows)
	if err != nil {
		reportPipelineError(log, err)
	}

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}

	for pIdx, name := range names {
		var cats []string
		for _, cat := range domain.Categories() {
			for _, role := range categorymap.RolesFor(cat) {
				if idx.IsEligible(pIdx, role) {
					cats = append(cats, string(cat))
					break
				}
			}
		}
		sort.Strings(cats)
		if len(cats) == 0 {
			fmt.Printf("%s: ineligible for every role\n", name)
			continue
		}
		fmt.Printf("%s: %v\n", name, cats)
	}
}

func readTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func reportPipelineError(log interface{ Fatalf(string, ...interface{}) }, err error) {
	if te, ok := teamerrors.As(err); ok {
		log.Fatalf("%s", te.Error())
		return
	}
	log.Fatalf("%v", err)
}

func fatal(log interface{ Fatalf(string, ...interface{}) }, msg string, err error) {
	log.Fatalf("%s: %v", msg, err)
}
