/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
)

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go -mock_names router=Mockrouter

// Path is the route for reading and changing module log levels at runtime.
const Path = "/loglevels"

var logger = log.New("logapi")

type Controller struct{}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func NewController(router router) *Controller {
	c := &Controller{}

	router.GET(Path, func(ctx echo.Context) error {
		return c.GetLogLevels(ctx)
	})
	router.POST(Path, func(ctx echo.Context) error {
		return c.PostLogLevels(ctx)
	})

	return c
}

// GetLogLevels returns the current log spec, e.g. "flow-reactor=DEBUG:INFO".
// (GET /loglevels).
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.String(http.StatusOK, log.GetSpec())
}

// PostLogLevels updates log levels.
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	logLevelBytes, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	logLevels := strings.TrimSpace(string(logLevelBytes))

	if err = log.SetSpec(logLevels); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to set log spec: %s", err))
	}

	logger.Info("Log levels modified", logfields.WithUserLogLevel(logLevels))

	return ctx.NoContent(http.StatusOK)
}
