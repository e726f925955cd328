package session

import "github.com/prometheus/client_golang/prometheus"

const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultNoToken = "no_token"
	resultStale   = "stale"
)

// Metrics counts session transitions
type Metrics struct {
	Establish            prometheus.Counter
	Verify               *prometheus.CounterVec
	Terminate            prometheus.Counter
	RemoteLogoutFailures prometheus.Counter
	Authenticated        prometheus.Gauge
}

// NewMetrics creates session metrics and registers them with registerer
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	ret := &Metrics{
		Establish: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "authsession_establish_total",
			Help: "Total number of established sessions",
		}),
		Verify: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authsession_verify_total",
			Help: "Total number of session verifications by result",
		}, []string{"result"}),
		Terminate: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "authsession_terminate_total",
			Help: "Total number of terminated sessions",
		}),
		RemoteLogoutFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "authsession_remote_logout_failures_total",
			Help: "Total number of failed best-effort remote logout calls",
		}),
		Authenticated: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "authsession_authenticated",
			Help: "1 when the session is authenticated",
		}),
	}
	if registerer == nil {
		return ret, nil
	}
	for _, collector := range []prometheus.Collector{ret.Establish, ret.Verify, ret.Terminate, ret.RemoteLogoutFailures, ret.Authenticated} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (m *Metrics) established() {
	if m == nil {
		return
	}
	m.Establish.Inc()
	m.Authenticated.Set(1)
}

func (m *Metrics) verified(result string) {
	if m == nil {
		return
	}
	m.Verify.WithLabelValues(result).Inc()
}

func (m *Metrics) terminated() {
	if m == nil {
		return
	}
	m.Terminate.Inc()
	m.Authenticated.Set(0)
}

func (m *Metrics) remoteLogoutFailed() {
	if m == nil {
		return
	}
	m.RemoteLogoutFailures.Inc()
}

func (m *Metrics) authenticated(value bool) {
	if m == nil {
		return
	}
	if value {
		m.Authenticated.Set(1)
		return
	}
	m.Authenticated.Set(0)
}
