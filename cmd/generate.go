/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"nsgen/core/config"
	"nsgen/core/generator"
	"nsgen/core/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerates the namespace aggregator file",
	Long: `Scans the configured namespace root and rewrites the aggregator file with one
re-export per namespace directory found there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if logfile != "" {
			f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("failed to open logfile: %w", err)
			}
			defer f.Close()
			logger.AddWriter(f)
		}
		logger.Debug("generate called")

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}

		gen := generator.NewNamespaceGenerator(wd, cfg)
		if err := gen.Generate(); err != nil {
			return fmt.Errorf("failed to generate namespace aggregator: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
