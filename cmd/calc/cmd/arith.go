package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/config"
)

var arithJSON bool

func init() {
	for _, c := range []*cobra.Command{
		newArithCmd(calculator.OpAdd, []string{"plus"}, "Add two integers", "calc add 3 4"),
		newArithCmd(calculator.OpSubtract, []string{"sub", "minus"}, "Subtract the second integer from the first", "calc subtract 10 5"),
		newArithCmd(calculator.OpMultiply, []string{"mul", "times"}, "Multiply two integers", "calc multiply 3 4"),
		newArithCmd(calculator.OpDivide, []string{"div"}, "Divide the first integer by the second, truncating toward zero", "calc divide 10 5"),
	} {
		c.Flags().BoolVar(&arithJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
}

func newArithCmd(op calculator.Op, aliases []string, short, example string) *cobra.Command {
	return &cobra.Command{
		Use:     string(op) + " <a> <b>",
		Aliases: aliases,
		Short:   short,
		Long: short + `.

Operands are integers; prefix negative values with a minus sign.

Examples:
  ` + example + `
  ` + example + ` --json`,
		Args: operands(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args[0], args[1])
			if err != nil {
				return err
			}
			return compute(cmd, op, a, b, arithJSON)
		},
	}
}

// operands validates the positional argument count as a usage error.
func operands(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("%s requires %d arguments, got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

func parseOperands(rawA, rawB string) (int, int, error) {
	a, err := parseOperand(rawA)
	if err != nil {
		return 0, 0, err
	}
	b, err := parseOperand(rawB)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseOperand(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return 0, usagef("invalid operand %q: out of range", raw)
	}
	if err != nil {
		return 0, usagef("invalid operand %q: not an integer", raw)
	}
	return n, nil
}

func compute(cmd *cobra.Command, op calculator.Op, a, b int, jsonFlag bool) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := calculator.Compute(op, a, b)
	if err != nil {
		logger.Warn("calculation failed", "op", op, "a", a, "b", b, "error", err)
		return fmt.Errorf("%s %d %d: %w", op, a, b, err)
	}
	logger.Debug("calculated", "op", res.Op, "a", res.A, "b", res.B, "result", res.Value)

	return printResult(cmd.OutOrStdout(), res, jsonFlag || cfg.Output == config.OutputJSON)
}
