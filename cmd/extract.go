package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"subtran/internal/display"
	"subtran/internal/pipeline"
)

func newExtractCmd() *cobra.Command {
	var flags stageFlags

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract cleaned SRT files into CSV form",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := flags.dirs()
			results, err := pipeline.NewRunner().Extract(in, out)
			if err != nil {
				return err
			}
			display.PrintResults(os.Stdout, results)
			return nil
		},
	}
	flags.register(cmd, "preprocessed subtitles", "extracted csv")
	return cmd
}
