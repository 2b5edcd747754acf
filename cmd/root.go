// Package cmd is for command line interactions with the glue application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "glue",
	Short: `Assemble overlapping genomic reads into a single contig.
Reads are joined at their longest shared suffix/prefix overlaps`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(initSettings)

	// settings is an optional parameter for a settings file (that overrides the defaults)
	rootCmd.PersistentFlags().StringP("settings", "s", "", "path to a settings file <YAML>")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stdout")
	rootCmd.PersistentFlags().StringP("demarcator", "m", ">", "prefix that starts each record header line")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("demarcator", rootCmd.PersistentFlags().Lookup("demarcator"))
}

// initSettings points viper at the settings file, if there is one, and at
// GLUE_* environment variables.
func initSettings() {
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
	} else {
		viper.SetConfigName("settings")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("GLUE")
	viper.AutomaticEnv()

	// a missing settings file is fine, the defaults cover every field
	viper.ReadInConfig()
}
