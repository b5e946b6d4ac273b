package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"subtran/internal/display"
	"subtran/internal/pipeline"
)

func newPreprocessCmd() *cobra.Command {
	var flags stageFlags

	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Clean and reflow raw SRT files",
		Long: "Parse raw SRT files, trim whitespace, fold two-line captions, merge\n" +
			"unterminated captions with their successors, renumber, and write the\n" +
			"cleaned SRT files to the output subdirectory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := flags.dirs()
			results, err := pipeline.NewRunner().Preprocess(in, out)
			if err != nil {
				return err
			}
			display.PrintResults(os.Stdout, results)
			return nil
		},
	}
	flags.register(cmd, "raw subtitles", "preprocessed subtitles")
	return cmd
}
