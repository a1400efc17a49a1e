package pagebuilder

import (
	"errors"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/eringen/pagebuilder/page"
)

// Metrics holds the application counters. Each App gets its own registry so
// several apps can live in one process (tests do this).
type Metrics struct {
	Registry *prom.Registry

	commands *prom.CounterVec
	saves    *prom.CounterVec
	exports  *prom.CounterVec
}

// NewMetrics registers the counters and a gauge reporting the number of
// live workspaces.
func NewMetrics(liveWorkspaces func() int) *Metrics {
	reg := prom.NewRegistry()
	m := &Metrics{
		Registry: reg,
		commands: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pagebuilder",
			Name:      "commands_total",
			Help:      "Editor commands by operation and outcome",
		}, []string{"op", "result"}),
		saves: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pagebuilder",
			Name:      "saves_total",
			Help:      "Workspace saves by outcome",
		}, []string{"result"}),
		exports: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pagebuilder",
			Name:      "exports_total",
			Help:      "ZIP exports by outcome",
		}, []string{"result"}),
	}
	workspaces := prom.NewGaugeFunc(prom.GaugeOpts{
		Namespace: "pagebuilder",
		Name:      "workspaces",
		Help:      "Number of live editor workspaces",
	}, func() float64 { return float64(liveWorkspaces()) })
	reg.MustRegister(m.commands, m.saves, m.exports, workspaces)
	return m
}

// commandResult buckets a command error into a metric label.
func commandResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, page.ErrInvariantViolation):
		return "rejected"
	case isBadInput(err):
		return "invalid"
	default:
		return "error"
	}
}

func (m *Metrics) command(op string, err error) {
	m.commands.WithLabelValues(op, commandResult(err)).Inc()
}

func (m *Metrics) save(err error) {
	m.saves.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) export(result string) {
	m.exports.WithLabelValues(result).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
