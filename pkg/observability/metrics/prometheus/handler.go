/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsPath = "/metrics"

// Handler serves the event listener metrics from the main echo server.
type Handler struct {
	gatherer   prometheus.Gatherer
	registerer prometheus.Registerer
}

// NewHandler returns a handler backed by the default Prometheus registry.
func NewHandler() *Handler {
	return &Handler{
		gatherer:   prometheus.DefaultGatherer,
		registerer: prometheus.DefaultRegisterer,
	}
}

// Path returns the route of the metrics endpoint.
func (h *Handler) Path() string {
	return metricsPath
}

// Method returns http.MethodGet.
func (h *Handler) Method() string {
	return http.MethodGet
}

// Handler returns the echo handler. A collector that fails to gather is logged and
// the remaining metrics are still served.
func (h *Handler) Handler() echo.HandlerFunc {
	ph := promhttp.InstrumentMetricHandler(h.registerer,
		promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{
			ErrorLog:          &errorLogger{},
			ErrorHandling:     promhttp.ContinueOnError,
			EnableOpenMetrics: true,
		}),
	)

	return echo.WrapHandler(ph)
}

type errorLogger struct{}

func (l *errorLogger) Println(v ...interface{}) {
	logger.Error("Failed to gather metrics: " + fmt.Sprint(v...))
}
