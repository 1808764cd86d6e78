// Package metrics holds Prometheus instruments that are used across the
// backend.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on the
// metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SettingsLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settings_load_total",
			Help: "Cumulative number of successful settings loads.",
		})

	SettingsLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settings_load_errors_total",
			Help: "Cumulative number of settings loads that failed decode or validation.",
		})

	SecretResolveTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "secret_resolve_total",
			Help: "Cumulative number of secret reference lookups.",
		})

	SecretResolveErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "secret_resolve_errors_total",
			Help: "Cumulative number of secret reference lookups that failed.",
		})
)

func init() {
	prometheus.MustRegister(
		SettingsLoadTotal,
		SettingsLoadErrorsTotal,
		SecretResolveTotal,
		SecretResolveErrorsTotal,
	)
}
