// Package metrics holds the Prometheus collectors for the directory.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "employee_directory"

// Lookup results recorded by DetailLookups.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
)

type Metrics struct {
	registry *prometheus.Registry

	EmployeesAdded     prometheus.Counter
	EmployeesDeleted   prometheus.Counter
	SubmissionsIgnored prometheus.Counter
	DetailLookups      *prometheus.CounterVec
	Exports            *prometheus.CounterVec
	DirectorySize      prometheus.Gauge
}

// New registers every collector on a fresh registry. Process and Go runtime
// collectors are included when withRuntime is set.
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		EmployeesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "employees_added_total",
			Help:      "Employee records appended to the directory.",
		}),
		EmployeesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "employees_deleted_total",
			Help:      "Employee records removed from the directory.",
		}),
		SubmissionsIgnored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_ignored_total",
			Help:      "Form submissions discarded for missing name, email or gender.",
		}),
		DetailLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detail_lookups_total",
			Help:      "Detail page lookups by result.",
		}, []string{"result"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Directory exports by format.",
		}, []string{"format"}),
		DirectorySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "employees",
			Help:      "Employee records currently in the directory.",
		}),
	}
	reg.MustRegister(
		m.EmployeesAdded,
		m.EmployeesDeleted,
		m.SubmissionsIgnored,
		m.DetailLookups,
		m.Exports,
		m.DirectorySize,
	)
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
