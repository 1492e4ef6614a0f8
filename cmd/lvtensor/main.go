// SPDX-License-Identifier: MIT

// Command lvtensor inspects index kinds and Young tableaux and packs,
// inspects and multiplies CSR files.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/spf13/cobra"
)

// app carries the state resolved by the root command for its children.
type app struct {
	configPath string
	logLevel   string
	codec      string
	workers    int

	cfg Config
	log *tensor.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvtensor",
		Short:         "Symmetry-aware tensor algebra tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "override log.level")
	flags.StringVar(&a.codec, "codec", "", "override csr.codec")
	flags.IntVar(&a.workers, "workers", 0, "override csr.workers")

	root.AddCommand(newSizeCmd(), newYoungCmd(), newCsrCmd(a))

	return root
}

// load reads the config file and applies flag overrides.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.codec != "" {
		cfg.Csr.Codec = a.codec
	}
	if cmd.Flags().Changed("workers") {
		cfg.Csr.Workers = a.workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if a.log, err = cfg.Logger(cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.configPath, "codec", cfg.Csr.Codec, "workers", cfg.Csr.Workers)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvtensor:", err)
		os.Exit(1)
	}
}
