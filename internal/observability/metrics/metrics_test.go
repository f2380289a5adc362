package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveMessage(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBotMetrics(reg)

	m.ObserveMessage("greeting", "happy", 0.002)
	m.ObserveMessage("greeting", "happy", 0.003)
	m.ObserveMessage("escalated", "frustrated", 0.001)

	if got := testutil.ToFloat64(m.messagesTotal.WithLabelValues("greeting", "happy")); got != 2 {
		t.Errorf("messages{greeting,happy} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.messagesTotal.WithLabelValues("escalated", "frustrated")); got != 1 {
		t.Errorf("messages{escalated,frustrated} = %v, want 1", got)
	}
}

func TestObserveEscalation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBotMetrics(reg)

	m.ObserveEscalation()
	m.ObserveEscalation()

	if got := testutil.ToFloat64(m.escalationsTotal); got != 2 {
		t.Errorf("escalations = %v, want 2", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *BotMetrics

	// Must not panic.
	m.ObserveMessage("greeting", "happy", 0.001)
	m.ObserveEscalation()
}
