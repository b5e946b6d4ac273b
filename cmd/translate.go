package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"subtran/config"
	"subtran/internal/display"
	"subtran/internal/pipeline"
	"subtran/internal/translate"
)

func newTranslateCmd(configPath *string) *cobra.Command {
	var flags stageFlags
	var providerFlag string

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate the Content column of extracted CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if providerFlag != "" {
				cfg.Translate.Provider.Name = providerFlag
			}
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}
			in, out := flags.dirs()
			results, err := pipeline.NewRunner().Translate(cmd.Context(), in, out, engine)
			if err != nil {
				return err
			}
			display.PrintResults(os.Stdout, results)
			return nil
		},
	}
	flags.register(cmd, "extracted csv", "pretranslated csv")
	cmd.Flags().StringVar(&providerFlag, "provider", "", "Translation provider (overrides config)")
	return cmd
}

// buildEngine assembles the provider, its retry wrapper, and the batch
// engine from configuration.
func buildEngine(cfg config.Config) (*translate.Engine, error) {
	provider, err := translate.New(cfg.Translate.Provider.Name, translate.Options{
		APIKey:  cfg.Translate.Provider.APIKey,
		BaseURL: cfg.Translate.Provider.BaseURL,
		Model:   cfg.Translate.Provider.Model,
		Context: cfg.Translate.Provider.Context,
	})
	if err != nil {
		return nil, err
	}
	provider = translate.WithRetry(provider, cfg.Translate.MaxRetries, time.Second)
	return translate.NewEngine(provider, cfg.Translate.BatchSize), nil
}
