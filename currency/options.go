package currency

import (
	"fmt"
)

// An Option configures a rounding operation using the functional
// options paradigm.
type Option interface {
	fmt.Stringer

	apply(*options)
}

type options struct {
	roundingMethod RoundingMethod
}

func newOptions(opts []Option) options {
	o := options{
		roundingMethod: DefaultRoundingMethod,
	}

	for _, opt := range opts {
		opt.apply(&o)
	}

	return o
}

type roundingMethodOption RoundingMethod

func (o roundingMethodOption) apply(opts *options) {
	opts.roundingMethod = RoundingMethod(o)
}

func (o roundingMethodOption) String() string {
	return fmt.Sprintf("currency.RoundingMethod: %s", RoundingMethod(o))
}

// WithRoundingMethod overrides DefaultRoundingMethod.
func WithRoundingMethod(m RoundingMethod) Option {
	return roundingMethodOption(m)
}
