package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subtran/internal/display"
	"subtran/internal/pipeline"
)

func newListCmd() *cobra.Command {
	var path, input string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subtitle files and their block counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := filepath.Join(path, input)
			infos, err := pipeline.NewRunner().Inspect(in)
			if err != nil {
				return err
			}
			if jsonOutput {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal file list: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}
			display.PrintFilesTable(os.Stdout, infos)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", "", "Main working directory")
	cmd.Flags().StringVarP(&input, "input", "i", "raw subtitles", "Input subdirectory name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
