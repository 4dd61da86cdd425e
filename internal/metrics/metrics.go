package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "offer_dashboard"

// Metrics reúne os coletores Prometheus da API.
// Todos os métodos aceitam receptor nil, para uso em testes sem registro.
type Metrics struct {
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	OffersArchivedTotal      prometheus.Counter
	OffersRestoredTotal      prometheus.Counter
	CreativesArchivedTotal   prometheus.Counter
	CreativesRestoredTotal   prometheus.Counter
	CreativeRestoreFailTotal prometheus.Counter

	RollupRunsTotal       *prometheus.CounterVec
	RollupRowsTotal       prometheus.Counter
	RollupDurationSeconds prometheus.Histogram

	MetricsCacheTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total de requisições HTTP por rota e status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duração das requisições HTTP",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		OffersArchivedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_archived_total",
			Help:      "Ofertas arquivadas",
		}),
		OffersRestoredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_restored_total",
			Help:      "Ofertas restauradas",
		}),
		CreativesArchivedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "creatives_archived_total",
			Help:      "Criativos arquivados junto com a oferta",
		}),
		CreativesRestoredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "creatives_restored_total",
			Help:      "Criativos restaurados junto com a oferta",
		}),
		CreativeRestoreFailTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "creative_restore_failures_total",
			Help:      "Restaurações de oferta em que a etapa dos criativos falhou",
		}),
		RollupRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "offer_metrics_rollup_runs_total",
				Help:      "Execuções da consolidação de métricas por oferta",
			},
			[]string{"result"},
		),
		RollupRowsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_metrics_rollup_rows_total",
			Help:      "Linhas de métricas por oferta gravadas pela consolidação",
		}),
		RollupDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "offer_metrics_rollup_duration_seconds",
			Help:      "Duração da consolidação de métricas por oferta",
			Buckets:   prometheus.DefBuckets,
		}),
		MetricsCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregated_metrics_cache_total",
				Help:      "Consultas ao cache de métricas agregadas por resultado",
			},
			[]string{"result"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.OffersArchivedTotal,
		m.OffersRestoredTotal,
		m.CreativesArchivedTotal,
		m.CreativesRestoredTotal,
		m.CreativeRestoreFailTotal,
		m.RollupRunsTotal,
		m.RollupRowsTotal,
		m.RollupDurationSeconds,
		m.MetricsCacheTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe o registro no formato de texto do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveArchive(creatives int64) {
	if m == nil {
		return
	}
	m.OffersArchivedTotal.Inc()
	m.CreativesArchivedTotal.Add(float64(creatives))
}

func (m *Metrics) ObserveRestore(creatives int64, creativeStepFailed bool) {
	if m == nil {
		return
	}
	m.OffersRestoredTotal.Inc()
	m.CreativesRestoredTotal.Add(float64(creatives))
	if creativeStepFailed {
		m.CreativeRestoreFailTotal.Inc()
	}
}

func (m *Metrics) ObserveRollup(rows int64, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RollupRunsTotal.WithLabelValues(result).Inc()
	m.RollupRowsTotal.Add(float64(rows))
	m.RollupDurationSeconds.Observe(d.Seconds())
}

// ObserveCache registra hit, miss ou error
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.MetricsCacheTotal.WithLabelValues(result).Inc()
}
