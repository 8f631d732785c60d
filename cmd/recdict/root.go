package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recdict/dict"
	"recdict/internal/config"
	"recdict/internal/logger"
)

// Version of the recdict CLI.
const Version = "0.3.0"

// newRootCmd builds the command tree. Flags are bound to v before any
// subcommand runs.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var closeLog func() error

	root := &cobra.Command{
		Use:   "recdict",
		Short: "serialize ORM records into plain maps",
		Long: fmt.Sprintf(`recdict (v%s)

Converts ORM-style Go records into key/value maps. Dates, times, relations
and files are formatted by field kind, and related records are serialized
recursively with a guard against reference cycles.

Every flag can also be set as RECDICT_<FLAG> (e.g. RECDICT_LOG_LEVEL=debug).`, Version),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.Init(v)

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			var err error
			closeLog, err = logger.Setup(config.Load(v).Log)

			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if closeLog == nil {
				return nil
			}

			return closeLog()
		},
	}

	flags := root.PersistentFlags()
	flags.String(config.KeyMethod, dict.DefaultMethod, WrapString("Name of the method called on related records to serialize them"))
	flags.String(config.KeyDateLayout, dict.DateLayout, WrapString("Go time layout for date fields"))
	flags.String(config.KeyDateTimeLayout, dict.DateTimeLayout, WrapString("Go time layout for datetime fields"))
	flags.String(config.KeyTimeLayout, dict.TimeLayout, WrapString("Go time layout for time fields"))
	flags.String(config.KeyMediaURL, "", WrapString("Base URL that file and image names are resolved against"))
	flags.String(config.KeyLogLevel, "info", WrapString("Level at which logs are written (debug, info, warn, error)"))
	flags.String(config.KeyLogFormat, "text", WrapString("Log output format (text, json)"))
	flags.String(config.KeyLogFile, "", WrapString("Write logs to this file instead of stderr"))

	root.AddCommand(newDumpCmd(v))
	root.AddCommand(newInspectCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of recdict",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("recdict v%s\n", Version)
		},
	})

	return root
}

// Execute runs the root command. It is called by main.main.
func Execute() {
	if err := newRootCmd(viper.GetViper()).Execute(); err != nil {
		os.Exit(1)
	}
}
