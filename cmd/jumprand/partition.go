package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jumprand/jumprand/pkg/log"
	"github.com/jumprand/jumprand/xoshiro"
)

func partitionCommand() *cobra.Command {
	var (
		generator  string
		configPath string
		seed       uint64
		seedString string
		partitions uint64
		limit      uint64
	)

	cmd := &cobra.Command{
		Use:   "partition",
		Short: "print the starting states of non-overlapping sub-streams",
		Long: "Splits the stream starting at the seeded state into equal " +
			"non-overlapping sub-streams (the count rounds up to a power of two) " +
			"and prints each sub-stream's starting state, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(generator, configPath)
			if err != nil {
				return err
			}

			seedSet := cmd.Flags().Changed("seed")
			if p.WordBits == 32 {
				return runPartition[uint32](p, seedSet, seed, seedString, partitions, limit)
			}
			return runPartition[uint64](p, seedSet, seed, seedString, partitions, limit)
		},
	}

	cmd.Flags().StringVar(&generator, "generator", "", "named generator, one of: "+fmt.Sprint(xoshiro.Names()))
	cmd.Flags().StringVar(&configPath, "config", "", "location of a custom parameterization file")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed from a single integer (repeatable streams)")
	cmd.Flags().StringVar(&seedString, "seed-string", "", "seed from an arbitrary string")
	cmd.Flags().Uint64Var(&partitions, "partitions", 2, "number of sub-streams to split the stream into")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "print at most this many starting states, 0 for all")

	return cmd
}

func runPartition[W xoshiro.Word](p xoshiro.Params, seedSet bool, seed uint64, seedString string, partitions, limit uint64) error {
	s, err := xoshiro.NewState[W](p)
	if err != nil {
		return err
	}
	if err := seedState(s, seedSet, seed, seedString); err != nil {
		return err
	}

	pt, err := xoshiro.NewPartition(s, partitions)
	if err != nil {
		return err
	}

	count := pt.Count()
	if limit != 0 && limit < count {
		count = limit
	}

	log.Debug("partitioned stream", log.Fields{"params": p.String(), "substreams": pt.Count()})

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for i := uint64(0); i < count; i++ {
		fmt.Fprintln(w, formatWords(pt.Next().Words()))
	}

	return nil
}
