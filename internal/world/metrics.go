package world

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics инкапсулирует Prometheus-метрики диспетчера хуков.
// nil *Metrics допустим: все методы тогда ничего не делают.
type Metrics struct {
	hookCalls   *prometheus.CounterVec
	hookChanges *prometheus.CounterVec
	unknown     prometheus.Counter
	truncated   prometheus.Counter
}

// NewMetrics создаёт метрики и регистрирует их в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hookCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "block",
			Name:      "hook_calls_total",
			Help:      "Число вызовов хуков блоков по типу хука.",
		}, []string{"hook"}),
		hookChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "block",
			Name:      "hook_changes_total",
			Help:      "Число вызовов хуков, изменивших мир.",
		}, []string{"hook"}),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "block",
			Name:      "unknown_types_total",
			Help:      "Пары (id, meta) без дескриптора, заменённые заглушкой.",
		}),
		truncated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "block",
			Name:      "cascade_truncated_total",
			Help:      "Каскады обновлений соседей, оборванные лимитом.",
		}),
	}

	reg.MustRegister(m.hookCalls, m.hookChanges, m.unknown, m.truncated)
	return m
}

func (m *Metrics) observeHook(h hook, changed bool) {
	if m == nil {
		return
	}
	m.hookCalls.WithLabelValues(h.String()).Inc()
	if changed {
		m.hookChanges.WithLabelValues(h.String()).Inc()
	}
}

func (m *Metrics) observeUnknown() {
	if m == nil {
		return
	}
	m.unknown.Inc()
}

func (m *Metrics) observeTruncated() {
	if m == nil {
		return
	}
	m.truncated.Inc()
}
