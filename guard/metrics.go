package guard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// violationsTotal counts failed checks.
//
// Labels:
//   - check: the guard function that failed, e.g. "NotNil".
//   - kind: the error kind of the default error, e.g. "argument is nil".
//     Replaced errors are still counted under the original kind.
var violationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "guard_violations_total",
	Help: "The total number of failed guard clauses",
}, []string{"check", "kind"})
