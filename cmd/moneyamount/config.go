package main

import (
	"fmt"

	"github.com/purposeinplay/go-currency/currency"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MONEYAMOUNT"

// config is read from flags first, then MONEYAMOUNT_* variables.
type config struct {
	Rounding currency.RoundingMethod
	JSON     bool
	Debug    bool
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("rounding", currency.DefaultRoundingMethod.String())
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}

func loadConfig(v *viper.Viper) (config, error) {
	rounding, err := currency.ParseRoundingMethod(v.GetString("rounding"))
	if err != nil {
		return config{}, fmt.Errorf("rounding: %w", err)
	}

	return config{
		Rounding: rounding,
		JSON:     v.GetBool("json"),
		Debug:    v.GetBool("debug"),
	}, nil
}
