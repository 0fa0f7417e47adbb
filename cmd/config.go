package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hauran/git-ai/internal/config"
	"github.com/hauran/git-ai/internal/message"
	"github.com/hauran/git-ai/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fail(err)
		}

		key := "(not set)"
		if cfg.APIKey != "" {
			key = "****" + lastN(cfg.APIKey, 4)
		}

		fmt.Printf("Provider:      %s\n", cfg.Provider)
		if cfg.Endpoint != "" {
			fmt.Printf("Endpoint:      %s\n", cfg.Endpoint)
		}
		fmt.Printf("Model:         %s\n", cfg.Model)
		fmt.Printf("API key:       %s\n", key)
		fmt.Printf("Style:         %s\n", cfg.Style)
		fmt.Printf("Max tokens:    %d\n", cfg.MaxTokens)
		fmt.Printf("Temperature:   %g\n", cfg.Temperature)
		fmt.Printf("Max diff size: %d\n", cfg.MaxDiffSize)
		if len(cfg.ExcludeGlobs) > 0 {
			fmt.Printf("Exclude:       %s\n", strings.Join(cfg.ExcludeGlobs, ", "))
		}
		fmt.Printf("Color:         %t\n", cfg.Color)
	},
}

var setModelCmd = &cobra.Command{
	Use:   "set-model [model-name]",
	Short: "Set the default model",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fail(err)
		}

		if len(args) == 1 {
			if err := config.SetModel(args[0]); err != nil {
				fail(err)
			}
			fmt.Printf("Model set to: %s\n", args[0])
			return
		}

		client := newProvider(cfg)

		err = ui.WithSpinner("Connecting to provider...", client.CheckConnection)
		if err != nil {
			fail(fmt.Errorf("failed to connect to provider: %w", err))
		}

		models, err := client.ListModels()
		if err != nil {
			fail(fmt.Errorf("failed to list models: %w", err))
		}
		if len(models) == 0 {
			fmt.Fprintln(os.Stderr, "No models available from provider")
			os.Exit(1)
		}

		selected, err := ui.SelectModel(models, cfg.Model)
		if err != nil {
			fail(err)
		}

		if err := config.SetModel(selected); err != nil {
			fail(err)
		}
		fmt.Printf("Model set to: %s\n", selected)
	},
}

var setStyleCmd = &cobra.Command{
	Use:   "set-style [conventional|standard|detailed]",
	Short: "Set the default message style",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		style := message.ParseStyle(args[0])
		if string(style) != args[0] {
			fmt.Fprintf(os.Stderr, "Unknown style %q, using %s\n", args[0], style)
		}
		if err := config.SetStyle(string(style)); err != nil {
			fail(err)
		}
		fmt.Printf("Style set to: %s\n", style)
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Store the provider API key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.SetKey(args[0]); err != nil {
			fail(err)
		}
		fmt.Println("API key saved")
	},
}

var setProviderCmd = &cobra.Command{
	Use:   "set-provider [openai|ollama]",
	Short: "Set the generation provider",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.SetProvider(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("Provider set to: %s\n", args[0])
	},
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setModelCmd)
	configCmd.AddCommand(setStyleCmd)
	configCmd.AddCommand(setKeyCmd)
	configCmd.AddCommand(setProviderCmd)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
