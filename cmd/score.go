package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staffsight/staffsight/app"
	"github.com/staffsight/staffsight/config"
	"github.com/staffsight/staffsight/pkg/export"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the employee table and print utilization per employee",
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
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
	return export.WriteScoredCSV(cmd.OutOrStdout(), res.Scored)
}
