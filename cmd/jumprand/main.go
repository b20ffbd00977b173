package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jumprand/jumprand/pkg/log"

	// Wires in the on-the-fly characteristic polynomial derivation so that
	// custom parameterizations work without table entries.
	_ "github.com/jumprand/jumprand/xoshiro/linalg"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jumprand",
		Short: "xoshiro/xoroshiro jump-ahead tooling",
		Long: "jumprand generates, jumps, and partitions the random number streams of " +
			"the xoshiro and xoroshiro generator families.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			jsonLog, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}
			if jsonLog {
				log.SetFormatter(&logrus.JSONFormatter{})
			}

			debugLog, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			if debugLog {
				log.SetDebug(true)
				log.Debug("debug logging enabled")
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "enable json logging")

	rootCmd.AddCommand(wordsCommand())
	rootCmd.AddCommand(jumpCommand())
	rootCmd.AddCommand(characteristicCommand())
	rootCmd.AddCommand(partitionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal("failed when executing root cobra command", log.Err(err))
	}
}
