package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// RunStats holds the counters one batch run produces.
type RunStats struct {
	Records  int
	Triggers int
	Sent     int
	Failed   int
	Duration time.Duration
}

// PushRunStats pushes the run counters to a Prometheus Pushgateway.
// The process has no scrape surface of its own, so the gateway is the
// only way these numbers outlive the run.
func PushRunStats(gatewayURL, job string, stats RunStats) error {
	registry := prometheus.NewRegistry()

	records := newGauge("records_scanned", "Content records fetched during the last run")
	triggers := newGauge("triggers_found", "Deadlines that fell one day ahead during the last run")
	sent := newGauge("notifications_sent", "Reminders delivered during the last run")
	failed := newGauge("notifications_failed", "Reminder deliveries that failed during the last run")
	duration := newGauge("run_duration_seconds", "Wall clock duration of the last run")
	completed := newGauge("last_run_timestamp_seconds", "Unix time the last run completed")

	registry.MustRegister(records, triggers, sent, failed, duration, completed)

	records.Set(float64(stats.Records))
	triggers.Set(float64(stats.Triggers))
	sent.Set(float64(stats.Sent))
	failed.Set(float64(stats.Failed))
	duration.Set(stats.Duration.Seconds())
	completed.SetToCurrentTime()

	return push.New(gatewayURL, job).Gatherer(registry).Push()
}

func newGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "post_reminder_" + name,
		Help: help,
	})
}
