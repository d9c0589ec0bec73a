// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/monitoring"
)

// the api only serves json, nothing may be framed or loaded from it
const contentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

const permissionsPolicy = "camera=(), microphone=(), geolocation=()"

func registerMiddlewares(e *echo.Echo, cfg config.AppConfig) {
	trusted := ParseTrustedProxies(cfg.TrustedProxies)
	e.IPExtractor = ipExtractor(trusted)

	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{cfg.FrontendURL},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
	}))
	e.Use(permissionsPolicyHeader())
	e.Use(middleware.BodyLimit(cfg.RequestBodyLimitRaw))
	e.Use(middleware.RequestID())
	e.Use(otelecho.Middleware(monitoring.ServiceName))
	e.Use(CallerMiddleware(trusted))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "requestId", ctx.Response().Header().Get(echo.HeaderXRequestID))

		if ctx.Response().Committed {
			return
		}

		code, body := errorBody(err)
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, body)
		}
		if err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

// errorBody keeps the body controllers attached and builds one for errors
// raised by echo itself (unknown route, body too large, ...).
func errorBody(err error) (int, dtos.ErrorDTO) {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		kind := failures.KindOf(err)
		return failures.HTTPStatus(kind), dtos.ErrorDTO{
			Error:     failures.UserMessage(kind),
			Code:      string(kind),
			Retryable: failures.Retryable(kind),
		}
	}
	if body, ok := he.Message.(dtos.ErrorDTO); ok {
		return he.Code, body
	}

	kind := kindForStatus(he.Code)
	body := dtos.ErrorDTO{
		Error:     http.StatusText(he.Code),
		Code:      string(kind),
		Retryable: failures.Retryable(kind),
	}
	if msg, ok := he.Message.(string); ok && msg != "" {
		body.Error = msg
	}
	return he.Code, body
}

func kindForStatus(status int) failures.Kind {
	switch {
	case status == http.StatusNotFound:
		return failures.KindNotFound
	case status == http.StatusTooManyRequests:
		return failures.KindRateLimited
	case status >= 400 && status < 500:
		return failures.KindInvalidInput
	}
	return failures.KindInternal
}

func permissionsPolicyHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Response().Header().Set("Permissions-Policy", permissionsPolicy)
			return next(ctx)
		}
	}
}

func Server(cfg config.AppConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	if cfg.Environment == "dev" {
		AddProfileEndpoints(e)
	}
	return e
}
