package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/offer-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/creative"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/lookup"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/offering"
	"github.com/vfg2006/offer-dashboard-api/pkg/middleware"
)

var (
	authenticated = []func(http.Handler) http.Handler{middleware.Authenticated()}
	serviceOnly   = []func(http.Handler) http.Handler{middleware.ServiceOnly()}
)

func Healthcheck(db Pinger, metricsHandler http.Handler) []router.Route {
	routes := []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}

	if metricsHandler != nil {
		routes = append(routes, router.Route{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		})
	}

	return routes
}

func Offers(service offering.OfferService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/offers",
			Method:      http.MethodGet,
			Handler:     ListOffers(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers",
			Method:      http.MethodPost,
			Handler:     CreateOffer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers/:id",
			Method:      http.MethodGet,
			Handler:     GetOffer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateOffer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteOffer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers/:id/archive",
			Method:      http.MethodPost,
			Handler:     ArchiveOffer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers/:id/restore",
			Method:      http.MethodPost,
			Handler:     RestoreOffer(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers/:id/restore-preview",
			Method:      http.MethodGet,
			Handler:     RestorePreview(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offers/:id/archived-creatives/count",
			Method:      http.MethodGet,
			Handler:     CountArchivedCreatives(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/archived-offers",
			Method:      http.MethodGet,
			Handler:     ListArchivedOffers(service, loc),
			Middlewares: authenticated,
		},
	}
}

func Creatives(service creative.CreativeService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/creatives",
			Method:      http.MethodGet,
			Handler:     ListCreatives(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/creatives",
			Method:      http.MethodPost,
			Handler:     CreateCreative(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/creatives/:id",
			Method:      http.MethodGet,
			Handler:     GetCreative(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/creatives/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCreative(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/creatives/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCreative(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/creatives/:id/archive",
			Method:      http.MethodPost,
			Handler:     ArchiveCreative(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/creatives/:id/restore",
			Method:      http.MethodPost,
			Handler:     RestoreCreative(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/creative-averages",
			Method:      http.MethodGet,
			Handler:     ListCreativeAverages(service),
			Middlewares: authenticated,
		},
	}
}

func Metrics(service metrics.MetricsService, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/daily-metrics",
			Method:      http.MethodGet,
			Handler:     ListDailyMetrics(service, loc),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/daily-metrics",
			Method:      http.MethodPost,
			Handler:     CreateDailyMetric(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/daily-metrics",
			Method:      http.MethodPut,
			Handler:     UpsertDailyMetric(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/daily-metrics/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDailyMetric(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offer-metrics/daily",
			Method:      http.MethodGet,
			Handler:     ListOfferDailyMetrics(service, loc),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offer-metrics/daily-with-offer",
			Method:      http.MethodGet,
			Handler:     ListOfferDailyMetricsWithOffer(service, loc),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offer-metrics/aggregated",
			Method:      http.MethodGet,
			Handler:     AggregatedOfferMetrics(service, loc),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/offer-metrics/creatives-count",
			Method:      http.MethodGet,
			Handler:     CreativesCountByOffer(service),
			Middlewares: authenticated,
		},
	}
}

func Lookups(service lookup.LookupService) []router.Route {
	routes := make([]router.Route, 0, 9)

	add := func(path string, list, create, remove http.Handler) {
		routes = append(routes,
			router.Route{Path: path, Method: http.MethodGet, Handler: list, Middlewares: authenticated},
			router.Route{Path: path, Method: http.MethodPost, Handler: create, Middlewares: authenticated},
			router.Route{Path: path + "/:id", Method: http.MethodDelete, Handler: remove, Middlewares: authenticated},
		)
	}

	n := niches(service)
	add("/v1/niches", n.List(), n.Create(), n.Delete())

	c := copywriters(service)
	add("/v1/copywriters", c.List(), c.Create(), c.Delete())

	p := countries(service)
	add("/v1/countries", p.List(), p.Create(), p.Delete())

	return routes
}

func Periods(loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods/:tag",
			Method:      http.MethodGet,
			Handler:     GetPeriod(loc),
			Middlewares: authenticated,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: serviceOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: serviceOnly,
		},
	}
}
