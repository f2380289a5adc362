package metrics

import "github.com/prometheus/client_golang/prometheus"

// BotMetrics exposes counters/histograms for the message pipeline.
type BotMetrics struct {
	messagesTotal    *prometheus.CounterVec
	escalationsTotal prometheus.Counter
	handleLatency    prometheus.Histogram
}

func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	m := &BotMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "bot",
			Name:      "messages_total",
			Help:      "Total processed inbound messages",
		}, []string{"intent", "emotion"}),
		escalationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "bot",
			Name:      "escalations_total",
			Help:      "Total messages routed to a human",
		}),
		handleLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "bot",
			Name:      "handle_latency_seconds",
			Help:      "Latency of message classification and composition",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.escalationsTotal, m.handleLatency)
	return m
}

func (m *BotMetrics) ObserveMessage(intent, emotion string, seconds float64) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(intent, emotion).Inc()
	m.handleLatency.Observe(seconds)
}

func (m *BotMetrics) ObserveEscalation() {
	if m == nil {
		return
	}
	m.escalationsTotal.Inc()
}
