// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// from an optional settings file (YAML) and the command line
type Config struct {
	// Demarcator begins each record header line in the input file.
	// The rest of the header line is the read's name
	Demarcator string `mapstructure:"demarcator"`

	// Verbose is whether to log progress and a run summary to stdout
	Verbose bool `mapstructure:"verbose"`

	// FastaColumns is the line width used when writing the contig
	// to a FASTA output file
	FastaColumns int `mapstructure:"fasta-columns"`
}

// New returns a new Config struct populated by Viper settings
// (either from a settings file, GLUE_* env vars, or command line arguments)
func New() *Config {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	return c
}

// setDefaults registers the fallback value of every setting. Defaults
// are applied before Unmarshal so a Config is usable without any
// settings file or flags (eg during testing)
func setDefaults() {
	viper.SetDefault("demarcator", ">")
	viper.SetDefault("verbose", false)
	viper.SetDefault("fasta-columns", 60)
}
