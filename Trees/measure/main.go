package main

import (
	"fmt"
	"os"

	"github.com/g-m-twostay/linkedbst/Trees"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		flags      Config
	)
	log := logrus.New()
	log.SetOutput(os.Stderr)

	run := &cobra.Command{
		Use:   "run",
		Short: "Time word lookups in a slice, a hash map and differently built trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
				Trees.Log.SetLevel(logrus.DebugLevel)
			}
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("words") {
				cfg.Words = flags.Words
			}
			if fs.Changed("samples") {
				cfg.Samples = flags.Samples
			}
			if fs.Changed("seed") {
				cfg.Seed = flags.Seed
			}
			if fs.Changed("progress") {
				cfg.Progress = flags.Progress
			}
			if cfg.Samples <= 0 {
				return fmt.Errorf("samples must be positive, got %d", cfg.Samples)
			}
			m := &measurer{cfg: cfg, log: log}
			_, err = m.Run(cmd.OutOrStdout())
			return err
		},
	}
	run.Flags().StringVarP(&flags.Words, "words", "w", defaultConfig.Words, "word list, one word per line")
	run.Flags().IntVarP(&flags.Samples, "samples", "n", defaultConfig.Samples, "number of words to look up")
	run.Flags().Int64Var(&flags.Seed, "seed", defaultConfig.Seed, "seed of the sampling")
	run.Flags().BoolVar(&flags.Progress, "progress", defaultConfig.Progress, "show progress bars")

	config := &cobra.Command{
		Use:   "config",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := WriteDefaultConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	root := &cobra.Command{
		Use:           "measure",
		Short:         "Compare search times of linked binary search trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $HOME/"+configName+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(run, config)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
