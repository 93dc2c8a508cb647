/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

//go:generate mockgen -destination controller_mocks_test.go -package version_test -source=controller.go -mock_names router=Mockrouter

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Version    string
	ServiceURL string
}

type Controller struct {
	version    string
	serviceURL string
}

type versionResponse struct {
	Version string `json:"version"`
}

type systemVersionResponse struct {
	Version    string `json:"version"`
	GoVersion  string `json:"goVersion"`
	ServiceURL string `json:"serviceUrl"`
}

func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		version:    cfg.Version,
		serviceURL: cfg.ServiceURL,
	}

	router.GET("/version", func(ctx echo.Context) error {
		return c.Version(ctx)
	})
	router.GET("/version/system", func(ctx echo.Context) error {
		return c.SystemVersion(ctx)
	})

	return c
}

// Version returns the event listener version.
// GET /version.
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}

// SystemVersion returns the version together with the runtime and delegated service it talks to.
// GET /version/system.
func (c *Controller) SystemVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, systemVersionResponse{
		Version:    c.version,
		GoVersion:  runtime.Version(),
		ServiceURL: c.serviceURL,
	})
}
