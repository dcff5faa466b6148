package api

import (
	"github.com/go-chi/chi/v5"
	kitlog "github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maxpoletaev/libgroup/api/handler"
)

func CreateRouter(source handler.GroupSource, gatherer prometheus.Gatherer, logger kitlog.Logger) *chi.Mux {
	r := chi.NewRouter()

	handler.NewGroupsHandler(source).Register(r)
	handler.NewEventsHandler(source, logger).Register(r)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
