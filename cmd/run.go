package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subtran/config"
	"subtran/internal/display"
	"subtran/internal/pipeline"
	"subtran/internal/sanitize"
)

func newRunCmd(configPath *string) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every stage in sequence over one working directory",
		Long: "Run preprocess, extract, translate, sanitize, and convert in order,\n" +
			"using the standard subdirectory layout under the working directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}
			s, err := sanitize.NewOpenCC(cfg.Sanitize.Conversion)
			if err != nil {
				return err
			}

			dir := func(name string) string { return filepath.Join(path, name) }
			runner := pipeline.NewRunner()

			type stage struct {
				name string
				exec func() ([]pipeline.Result, error)
			}
			stages := []stage{
				{"preprocess", func() ([]pipeline.Result, error) {
					return runner.Preprocess(dir("raw subtitles"), dir("preprocessed subtitles"))
				}},
				{"extract", func() ([]pipeline.Result, error) {
					return runner.Extract(dir("preprocessed subtitles"), dir("extracted csv"))
				}},
				{"translate", func() ([]pipeline.Result, error) {
					return runner.Translate(cmd.Context(), dir("extracted csv"), dir("pretranslated csv"), engine)
				}},
				{"sanitize", func() ([]pipeline.Result, error) {
					return runner.Sanitize(dir("pretranslated csv"), dir("sanitized csv"), s)
				}},
				{"convert", func() ([]pipeline.Result, error) {
					return runner.Convert(dir("sanitized csv"), dir("translated subtitles"))
				}},
			}

			for _, st := range stages {
				fmt.Printf("=== %s ===\n", st.name)
				results, err := st.exec()
				if err != nil {
					return fmt.Errorf("%s: %w", st.name, err)
				}
				display.PrintResults(os.Stdout, results)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", "", "Main working directory")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
