// Command moneyamount runs MoneyAmount operations from the command line.
//
// Usage:
//
//	moneyamount show 123.45 CAD
//	moneyamount exchange 123.45 CAD 1.23 USD --rounding DOWN
//
// Amounts are given as two arguments: the amount in units of
// currency, with at most 2 decimals, and the currency code. Put --
// before the arguments when an amount is negative.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error.
		os.Exit(1)
	}
}
