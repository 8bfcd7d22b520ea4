package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staffsight/staffsight/app"
	"github.com/staffsight/staffsight/config"
	"github.com/staffsight/staffsight/pkg/export"
)

var assignJSON bool

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Run a full matching pass and print assignments and unfilled openings",
	RunE:  runAssign,
}

func init() {
	assignCmd.Flags().BoolVar(&assignJSON, "json", false, "emit the full run result as JSON")
	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	res, err := svc.RunOnce()
	if err != nil {
		return err
	}
	if assignJSON {
		return export.WriteJSON(cmd.OutOrStdout(), res)
	}
	if err := export.WriteAssignmentsCSV(cmd.OutOrStdout(), res.Assignments); err != nil {
		return err
	}
	if len(res.Unfilled) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
		return err
	}
	return export.WriteUnfilledCSV(cmd.OutOrStdout(), res.Unfilled)
}
