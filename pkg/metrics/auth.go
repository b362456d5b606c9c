package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// AuthMetrics records login/registration outcomes and gate decisions.
type AuthMetrics struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	gateDecisions *prometheus.CounterVec
}

// NewAuthMetrics registers the auth metrics on the provided registerer.
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	if reg == nil {
		return &AuthMetrics{}
	}
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})
	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_registrations_total",
		Help: "Registration attempts by kind and outcome.",
	}, []string{"kind", "outcome"})
	gateDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_gate_decisions_total",
		Help: "Route gate decisions by route class and result.",
	}, []string{"class", "result"})
	reg.MustRegister(logins, registrations, gateDecisions)
	return &AuthMetrics{
		logins:        logins,
		registrations: registrations,
		gateDecisions: gateDecisions,
	}
}

// IncLogin counts a login attempt outcome ("success" or "failure").
func (m *AuthMetrics) IncLogin(outcome string) {
	if m == nil || m.logins == nil {
		return
	}
	m.logins.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncRegistration counts a registration outcome for the given kind
// ("marketplace" or "seller").
func (m *AuthMetrics) IncRegistration(kind, outcome string) {
	if m == nil || m.registrations == nil {
		return
	}
	m.registrations.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}

// IncGateDecision counts a gate decision ("allow" or "redirect") per class.
func (m *AuthMetrics) IncGateDecision(class, result string) {
	if m == nil || m.gateDecisions == nil {
		return
	}
	m.gateDecisions.WithLabelValues(normalizeLabel(class), normalizeLabel(result)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
