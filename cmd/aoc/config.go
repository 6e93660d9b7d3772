package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Configuration keys.
const (
	keyInputDir = "input_dir"
	keyBudget   = "junction.budget"
	keyTop      = "junction.top"
	keyShort    = "joltage.short"
	keyLong     = "joltage.long"
	keyStart    = "dial.start"
)

// newViper returns a viper instance with the defaults and AOC_* environment
// bindings, but no config file yet.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyInputDir, puzzle.DefaultInputDir)
	v.SetDefault(keyBudget, puzzle.DefaultCircuitBudget)
	v.SetDefault(keyTop, puzzle.DefaultTopCircuits)
	v.SetDefault(keyShort, puzzle.DefaultShortBank)
	v.SetDefault(keyLong, puzzle.DefaultLongBank)
	v.SetDefault(keyStart, puzzle.DefaultDialStart)
	return v
}

// readConfig loads file, or ./aoc.yaml when file is empty. Only an explicit
// file is required to exist.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("aoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if file == "" && errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "aoc: read config")
	}
	return nil
}

// configFrom resolves the solver configuration.
func configFrom(v *viper.Viper) puzzle.Config {
	return puzzle.Config{
		InputDir:      v.GetString(keyInputDir),
		CircuitBudget: v.GetInt(keyBudget),
		TopCircuits:   v.GetInt(keyTop),
		ShortBank:     v.GetInt(keyShort),
		LongBank:      v.GetInt(keyLong),
		DialStart:     v.GetInt(keyStart),
	}
}
