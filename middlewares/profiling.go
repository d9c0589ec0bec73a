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
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

// runtime profiles served by name through pprof.Handler
var namedProfiles = []string{"heap", "goroutine", "block", "threadcreate", "mutex", "allocs"}

// AddProfileEndpoints exposes net/http/pprof below /debug/pprof/. Image
// decoding dominates memory, the heap profile is the interesting one.
func AddProfileEndpoints(e *echo.Echo) {
	slog.Warn("adding profile debug endpoints")
	g := e.Group("/debug/pprof")

	g.GET("/", wrap(pprof.Index))
	g.GET("/cmdline/", wrap(pprof.Cmdline))
	g.GET("/profile/", wrap(pprof.Profile))
	g.GET("/symbol/", wrap(pprof.Symbol))
	g.POST("/symbol/", wrap(pprof.Symbol))
	g.GET("/trace/", wrap(pprof.Trace))
	for _, name := range namedProfiles {
		g.GET("/"+name+"/", echo.WrapHandler(pprof.Handler(name)))
	}
}

func wrap(h func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(h))
}
