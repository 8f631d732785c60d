package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recdict/dict"
	"recdict/internal/config"
	"recdict/internal/fixture"
	"recdict/internal/logger"
	"recdict/internal/schema"
	"recdict/orm"
)

const (
	flagFixture = "fixture"
	flagModel   = "model"
	flagID      = "id"
	flagFields  = "fields"
)

func newDumpCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Serialize a fixture record and print it as JSON",
		Long: fmt.Sprintf(`Load a YAML fixture of store records, serialize one record and print the
result as JSON. Models: %v.

Without --fields the record's default dict fields are used, or every field
of its schema when it has none.`, fixture.Models()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd, config.Load(v))
		},
	}

	cmd.Flags().String(flagFixture, "", WrapString("Path of the YAML fixture file"))
	cmd.Flags().String(flagModel, "order", WrapString("Model of the record to serialize"))
	cmd.Flags().Int64(flagID, 0, WrapString("Primary key of the record to serialize"))
	cmd.Flags().StringSlice(flagFields, nil, WrapString("Comma-separated field names to serialize"))
	cmd.Flags().Bool(config.KeyMetrics, false, WrapString("Write serializer metrics in Prometheus format to stderr"))
	_ = cmd.MarkFlagRequired(flagFixture)
	_ = cmd.MarkFlagRequired(flagID)

	return cmd
}

func runDump(cmd *cobra.Command, cfg config.Config) error {
	path, _ := cmd.Flags().GetString(flagFixture)
	model, _ := cmd.Flags().GetString(flagModel)
	id, _ := cmd.Flags().GetInt64(flagID)
	fields, _ := cmd.Flags().GetStringSlice(flagFields)

	set, err := fixture.LoadFile(path, cfg.Storage())
	if err != nil {
		return err
	}

	rec, err := set.Lookup(model, id)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		if fields, err = defaultFields(rec); err != nil {
			return err
		}
	}

	logger.L().Debug("dumping record", "model", model, "id", id, "fields", fields)

	s := dict.New(cfg.SerializerOptions()...)

	out, err := s.Serialize(rec, cfg.Method, dict.NewVisited(), fields...)
	if err != nil {
		return fmt.Errorf("serializing %s %d: %w", model, id, err)
	}

	if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}

	if cfg.Metrics {
		metrics.WritePrometheus(cmd.ErrOrStderr(), false)
	}

	return nil
}

func defaultFields(rec any) ([]string, error) {
	if fl, ok := rec.(orm.FieldLister); ok {
		return fl.DictFields(), nil
	}

	m, err := schema.Of(rec)
	if err != nil {
		return nil, err
	}

	return m.Names(), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
