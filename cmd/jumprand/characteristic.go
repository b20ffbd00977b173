package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jumprand/jumprand/xoshiro"
)

func characteristicCommand() *cobra.Command {
	var (
		generator  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "characteristic",
		Short: "print the low characteristic polynomial coefficients p(x)",
		Long: "Prints the n stored coefficients of c(x) = x^n + p(x) for a " +
			"parameterization, low word first. Table entries are used when they " +
			"exist; anything else is derived from the transition matrix.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(generator, configPath)
			if err != nil {
				return err
			}

			if p.WordBits == 32 {
				return printCharacteristic[uint32](p)
			}
			return printCharacteristic[uint64](p)
		},
	}

	cmd.Flags().StringVar(&generator, "generator", "", "named generator, one of: "+fmt.Sprint(xoshiro.Names()))
	cmd.Flags().StringVar(&configPath, "config", "", "location of a custom parameterization file")

	return cmd
}

func printCharacteristic[W xoshiro.Word](p xoshiro.Params) error {
	cs, err := xoshiro.CharacteristicCoefficients[W](p)
	if err != nil {
		return err
	}

	fmt.Println(formatWords(cs))
	return nil
}
