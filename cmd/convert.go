package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"subtran/internal/display"
	"subtran/internal/pipeline"
)

func newConvertCmd() *cobra.Command {
	var flags stageFlags

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert sanitized CSV files back to SRT",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := flags.dirs()
			results, err := pipeline.NewRunner().Convert(in, out)
			if err != nil {
				return err
			}
			display.PrintResults(os.Stdout, results)
			return nil
		},
	}
	flags.register(cmd, "sanitized csv", "translated subtitles")
	return cmd
}
