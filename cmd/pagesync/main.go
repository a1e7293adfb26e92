// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pagesync CLI. pagesync copies the
// page numbering of a reference PDF onto a differently paginated PDF of the
// same book by stamping each target page with i + 1 + offset.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pagesync/internal/labels"
	"github.com/pdiddy/pagesync/internal/overlay"
	"github.com/pdiddy/pagesync/internal/pdfdoc"
	"github.com/pdiddy/pagesync/internal/pipeline"
	"github.com/pdiddy/pagesync/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Configuration keys understood in pagesync.yaml and PAGESYNC_* variables.
const (
	keyOffset     = "offset"
	keyValidation = "validation"
)

// rootCmd stamps the target PDF. Subcommands cover dry runs and version.
var rootCmd = &cobra.Command{
	Use:   "pagesync <source_pdf> <target_pdf> <output_pdf> [offset]",
	Short: "Stamp reference page numbers onto a differently paginated PDF",
	Long: `pagesync overlays page numbers on a target PDF (for example one converted
from an EPUB) so that they match a source PDF with the correct pagination.

Target page i (counting from 0) is labelled i + 1 + offset. The offset
defaults to 0 and may be negative. The source PDF is only used for its page
count; page content is never compared. The output file is replaced if it
exists and is only written when every step succeeds.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runStamp,
}

func runStamp(cmd *cobra.Command, args []string) error {
	cfg, err := stampConfig()
	if err != nil {
		return err
	}
	if len(args) == 4 {
		offset, err := labels.ParseOffset(args[3])
		if err != nil {
			return err
		}
		cfg.Offset = offset
	}
	cmd.SilenceUsage = true

	req := pipeline.Request{
		SourcePath: args[0],
		TargetPath: args[1],
		OutputPath: args[2],
		Options:    labels.Options{Offset: cfg.Offset},
		Style:      overlay.DefaultStyle(),
	}
	_, err = pipeline.Run(pdfdoc.NewOpener(nil, cfg.Validation), req, cmd.ErrOrStderr())
	return err
}

// stampConfig reads the configuration assembled by viper from defaults,
// config file and environment.
func stampConfig() (types.StampConfig, error) {
	mode, err := types.ParseValidationMode(viper.GetString(keyValidation))
	if err != nil {
		return types.StampConfig{}, err
	}
	offset, err := labels.ParseOffset(viper.GetString(keyOffset))
	if err != nil {
		return types.StampConfig{}, fmt.Errorf("config key %s: %w", keyOffset, err)
	}
	return types.StampConfig{Offset: offset, Validation: mode}, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pagesync.yaml or ~/.config/pagesync/pagesync.yaml)")

	// Flags stop at the first positional so a negative offset such as -1
	// is read as an argument.
	rootCmd.Flags().SetInterspersed(false)
}

func initConfig() {
	defaults := types.DefaultStampConfig()
	viper.SetDefault(keyOffset, defaults.Offset)
	viper.SetDefault(keyValidation, string(defaults.Validation))

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pagesync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pagesync"))
		}
	}

	viper.SetEnvPrefix("PAGESYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
