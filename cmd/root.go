// Package cmd wires the subtran CLI.
package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for subtran.
func NewRootCmd() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:          "subtran",
		Short:        "Batch pipeline for cleaning, extracting, and translating SRT subtitles",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newPreprocessCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newTranslateCmd(&configFlag))
	rootCmd.AddCommand(newSanitizeCmd(&configFlag))
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newRunCmd(&configFlag))
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// stageFlags are the directory flags every stage command shares: a main
// working directory plus the input and output subdirectory names.
type stageFlags struct {
	path   string
	input  string
	output string
}

func (f *stageFlags) register(cmd *cobra.Command, defaultIn, defaultOut string) {
	cmd.Flags().StringVarP(&f.path, "path", "p", "", "Main working directory")
	cmd.Flags().StringVarP(&f.input, "input", "i", defaultIn, "Input subdirectory name")
	cmd.Flags().StringVarP(&f.output, "output", "o", defaultOut, "Output subdirectory name")
	_ = cmd.MarkFlagRequired("path")
}

func (f *stageFlags) dirs() (in, out string) {
	return filepath.Join(f.path, f.input), filepath.Join(f.path, f.output)
}
