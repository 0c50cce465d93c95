package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks login outcomes, provider latency and token churn. All
// methods are safe on a nil receiver so callers may run without metrics.
type Metrics struct {
	LoginOutcomes       *prometheus.CounterVec
	RemoteCallDuration  *prometheus.HistogramVec
	UsersCreated        prometheus.Counter
	CoursesCreated      prometheus.Counter
	Logouts             *prometheus.CounterVec
	HousekeepingDeleted *prometheus.CounterVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		LoginOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pahiram_login_total",
			Help: "Login attempts by terminal state",
		}, []string{"outcome"}),
		RemoteCallDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pahiram_apcis_login_duration_seconds",
			Help:    "Latency of APCIS login calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"result"}),
		UsersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "pahiram_users_created_total",
			Help: "Local users created on first login",
		}),
		CoursesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "pahiram_courses_created_total",
			Help: "Courses created on first sighting",
		}),
		Logouts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pahiram_logout_total",
			Help: "Logouts by scope",
		}, []string{"scope"}),
		HousekeepingDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pahiram_housekeeping_deleted_total",
			Help: "Expired rows removed by housekeeping",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveRemoteCall records provider latency. Call with time.Now() taken
// before the request.
func (m *Metrics) ObserveRemoteCall(start time.Time, result string) {
	if m == nil {
		return
	}
	m.RemoteCallDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncUsersCreated() {
	if m == nil {
		return
	}
	m.UsersCreated.Inc()
}

func (m *Metrics) IncCoursesCreated() {
	if m == nil {
		return
	}
	m.CoursesCreated.Inc()
}

func (m *Metrics) IncLogout(scope string) {
	if m == nil {
		return
	}
	m.Logouts.WithLabelValues(scope).Inc()
}

func (m *Metrics) AddHousekeepingDeleted(kind string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.HousekeepingDeleted.WithLabelValues(kind).Add(float64(n))
}
