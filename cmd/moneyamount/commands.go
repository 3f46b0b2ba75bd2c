package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/purposeinplay/go-currency/currency"
	"github.com/purposeinplay/go-currency/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "moneyamount"

// loggerFunc builds the logger once the configuration is loaded.
type loggerFunc func(service string, debug bool) (*zap.Logger, error)

// printFunc writes the result of an operation.
type printFunc func(w io.Writer, m currency.MoneyAmount) error

// operationFunc computes the result of a subcommand from its arguments.
type operationFunc func(cmd *cobra.Command, args []string) (currency.MoneyAmount, error)

// app is shared by the subcommands once the root
// command has loaded the configuration.
type app struct {
	cfg       config
	log       *zap.Logger
	newLogger loggerFunc
}

func (a *app) roundingOption() currency.Option {
	return currency.WithRoundingMethod(a.cfg.Rounding)
}

func (a *app) print(w io.Writer, m currency.MoneyAmount) error {
	if a.cfg.JSON {
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	}

	_, err := fmt.Fprintln(w, m.String())

	return err
}

// printParts writes every accessor of m, or m as JSON.
func (a *app) printParts(w io.Writer, m currency.MoneyAmount) error {
	if a.cfg.JSON {
		return a.print(w, m)
	}

	_, err := fmt.Fprintf(
		w,
		"amount: %d\ninteger part: %d\ndecimal part: %02d\n"+
			"currency: %s\nstring: %s\n",
		m.Amount(),
		m.IntegerPart(),
		m.DecimalPart(),
		m.CurrencyCode(),
		m,
	)

	return err
}

// run prints the result of fn with a.print.
func (a *app) run(fn operationFunc) func(cmd *cobra.Command, args []string) error {
	return a.runWith(fn, a.print)
}

// runWith wraps an operation so failures are logged before cobra
// reports them. The logger is synced on every return, failures included.
func (a *app) runWith(
	fn operationFunc,
	printResult printFunc,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			_ = a.log.Sync()
		}()

		a.log.Debug(
			"run operation",
			zap.String("command", cmd.Name()),
			zap.Strings("args", args),
			zap.Stringer("rounding", a.cfg.Rounding),
		)

		m, err := fn(cmd, args)
		if err != nil {
			a.log.Error(
				"operation failed",
				zap.String("command", cmd.Name()),
				zap.Error(err),
			)

			return err
		}

		return printResult(cmd.OutOrStdout(), m)
	}
}

// newRootCmd creates the moneyamount command tree. Each call
// returns fresh instances, so tests can run it in isolation.
func newRootCmd() *cobra.Command {
	return newRootCmdWithLogger(logger.New)
}

func newRootCmdWithLogger(newLogger loggerFunc) *cobra.Command {
	a := &app{
		log:       zap.NewNop(),
		newLogger: newLogger,
	}

	cmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Run money amount arithmetic and currency exchange.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			a.cfg, err = loadConfig(v)
			if err != nil {
				return err
			}

			a.log, err = a.newLogger(serviceName, a.cfg.Debug)
			if err != nil {
				return fmt.Errorf("new logger: %w", err)
			}

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(
		"rounding",
		currency.DefaultRoundingMethod.String(),
		"rounding method: DOWN, HALF_DOWN, HALF_UP or UP",
	)
	flags.Bool("json", false, "print results as JSON")
	flags.Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		newShowCmd(a),
		newFromFloatCmd(a),
		newAddCmd(a),
		newSubtractCmd(a),
		newMultiplyCmd(a),
		newDivideCmd(a),
		newExchangeCmd(a),
	)

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <amount> <currency>",
		Short: "Print the parts of a money amount.",
		Args:  cobra.ExactArgs(2),
		RunE: a.runWith(
			func(_ *cobra.Command, args []string) (currency.MoneyAmount, error) {
				return parseAmount(args[0], args[1])
			},
			a.printParts,
		),
	}
}

func newFromFloatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "from-float <amount> <currency>",
		Short: "Create a money amount from a float, rounding to cents.",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(_ *cobra.Command, args []string) (currency.MoneyAmount, error) {
			f, err := parseFloat("amount", args[0])
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			return currency.NewFromFloat(f, args[1], a.roundingOption())
		}),
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <amount> <currency> <amount> <currency>",
		Short: "Add two money amounts of the same currency.",
		Args:  cobra.ExactArgs(4),
		RunE: a.run(func(_ *cobra.Command, args []string) (currency.MoneyAmount, error) {
			x, y, err := parsePair(args)
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			return x.Add(y)
		}),
	}
}

func newSubtractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subtract <amount> <currency> <amount> <currency>",
		Short: "Subtract the second money amount from the first.",
		Args:  cobra.ExactArgs(4),
		RunE: a.run(func(_ *cobra.Command, args []string) (currency.MoneyAmount, error) {
			x, y, err := parsePair(args)
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			return x.Subtract(y)
		}),
	}
}

func newMultiplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply <amount> <currency> <multiplier>",
		Short: "Multiply a money amount.",
		Args:  cobra.ExactArgs(3),
		RunE: a.run(func(_ *cobra.Command, args []string) (currency.MoneyAmount, error) {
			m, err := parseAmount(args[0], args[1])
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			multiplier, err := parseFloat("multiplier", args[2])
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			return m.Multiply(multiplier, a.roundingOption())
		}),
	}
}

func newDivideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "divide <amount> <currency> <divider>",
		Short: "Divide a money amount.",
		Args:  cobra.ExactArgs(3),
		RunE: a.run(func(_ *cobra.Command, args []string) (currency.MoneyAmount, error) {
			m, err := parseAmount(args[0], args[1])
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			divider, err := parseFloat("divider", args[2])
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			return m.Divide(divider, a.roundingOption())
		}),
	}
}

func newExchangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <amount> <currency> <rate> <target currency>",
		Short: "Convert a money amount into another currency.",
		Args:  cobra.ExactArgs(4),
		RunE: a.run(func(_ *cobra.Command, args []string) (currency.MoneyAmount, error) {
			m, err := parseAmount(args[0], args[1])
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			rate, err := parseFloat("rate", args[2])
			if err != nil {
				return currency.MoneyAmount{}, err
			}

			return m.Exchange(rate, args[3], a.roundingOption())
		}),
	}
}

func parseAmount(amount, currencyCode string) (currency.MoneyAmount, error) {
	m, err := currency.Parse(amount + " " + currencyCode)
	if err != nil {
		return currency.MoneyAmount{}, fmt.Errorf("parse amount: %w", err)
	}

	return m, nil
}

func parsePair(args []string) (currency.MoneyAmount, currency.MoneyAmount, error) {
	x, err := parseAmount(args[0], args[1])
	if err != nil {
		return currency.MoneyAmount{}, currency.MoneyAmount{}, err
	}

	y, err := parseAmount(args[2], args[3])
	if err != nil {
		return currency.MoneyAmount{}, currency.MoneyAmount{}, err
	}

	return x, y, nil
}

func parseFloat(name, s string) (float64, error) {
	const bitSize = 64

	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s \"%s\"", currency.ErrInvalidValue, name, s)
	}

	return f, nil
}
