package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"subtran/config"
	"subtran/internal/display"
	"subtran/internal/pipeline"
	"subtran/internal/sanitize"
)

func newSanitizeCmd(configPath *string) *cobra.Command {
	var flags stageFlags

	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Convert script and fix mixed-width spacing in translated CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			s, err := sanitize.NewOpenCC(cfg.Sanitize.Conversion)
			if err != nil {
				return err
			}
			in, out := flags.dirs()
			results, err := pipeline.NewRunner().Sanitize(in, out, s)
			if err != nil {
				return err
			}
			display.PrintResults(os.Stdout, results)
			return nil
		},
	}
	flags.register(cmd, "pretranslated csv", "sanitized csv")
	return cmd
}
