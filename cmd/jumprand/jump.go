package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jumprand/jumprand/xoshiro"
)

func jumpCommand() *cobra.Command {
	var (
		generator  string
		configPath string
		distance   uint64
		pow2       bool
	)

	cmd := &cobra.Command{
		Use:   "jump",
		Short: "print the jump polynomial x^J mod c(x) for a parameterization",
		Long: "Computes the coefficients that advance a generator by J steps (or 2^J " +
			"steps with --pow2) in one application, printed low word first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(generator, configPath)
			if err != nil {
				return err
			}

			if p.WordBits == 32 {
				return printJump[uint32](p, distance, pow2)
			}
			return printJump[uint64](p, distance, pow2)
		},
	}

	cmd.Flags().StringVar(&generator, "generator", "", "named generator, one of: "+fmt.Sprint(xoshiro.Names()))
	cmd.Flags().StringVar(&configPath, "config", "", "location of a custom parameterization file")
	cmd.Flags().Uint64Var(&distance, "distance", 0, "jump distance J")
	cmd.Flags().BoolVar(&pow2, "pow2", false, "interpret the distance as an exponent: jump by 2^J")

	return cmd
}

func printJump[W xoshiro.Word](p xoshiro.Params, distance uint64, pow2 bool) error {
	jp, err := xoshiro.JumpCoefficients[W](p, distance, pow2)
	if err != nil {
		return err
	}

	fmt.Println(formatWords(jp.Coefficients()))
	return nil
}

func formatWords[W xoshiro.Word](words []W) string {
	digits := int(wordBitsOf[W]()) / 4
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%0*x", digits, uint64(w))
	}
	return strings.Join(parts, " ")
}
