package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/calculator"
)

var applyCmd = &cobra.Command{
	Use:   "apply <a> <op> <b>",
	Short: "Apply an operator given as a word or symbol",
	Long: `Apply an operator given as a word or symbol.

Accepted operators: add (+, plus), subtract (sub, -, minus),
multiply (mul, *, x, times), divide (div, /).
Quote "*" so the shell does not expand it.

Examples:
  calc apply 3 + 4
  calc apply 10 div 5
  calc apply 6 "*" 7 --json`,
	Args: operands(3),
	RunE: runApply,
}

var applyJSON bool

func init() {
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	op, err := calculator.ParseOp(args[1])
	if err != nil {
		return err
	}
	a, b, err := parseOperands(args[0], args[2])
	if err != nil {
		return err
	}
	return compute(cmd, op, a, b, applyJSON)
}
