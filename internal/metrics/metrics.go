package metrics

import (
	"strings"

	"e-disposisi/internal/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "disposisi_transitions_total",
		Help: "Disposisi state transitions by action and result",
	},
	[]string{"action", "result"},
)

// Result is "ok" for a nil error and the lower-case error kind otherwise.
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	return strings.ToLower(errs.KindOf(err).String())
}

func Transition(action string, err error) {
	transitions.WithLabelValues(action, Result(err)).Inc()
}
