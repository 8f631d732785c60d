package dict

import "github.com/VictoriaMetrics/metrics"

var (
	recordsTotal  = metrics.NewCounter("recdict_records_total")
	cyclesCut     = metrics.NewCounter("recdict_cycles_cut_total")
	unsavedTotal  = metrics.NewCounter("recdict_unsaved_total")
	fallbackTotal = metrics.NewCounter("recdict_fallback_total")
)
