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
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/incidentscan/dtos"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/monitoring"
	"github.com/l3montree-dev/incidentscan/shared"
)

// callers beyond this are evicted least recently used first
const maxTrackedCallers = 10_000

type window struct {
	start time.Time
	count int
}

// RateLimiter counts requests per caller in fixed windows. Windows of idle
// callers expire together with their lru entry.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows *expirable.LRU[string, *window]
	now     func() time.Time
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		period:  period,
		windows: expirable.NewLRU[string, *window](maxTrackedCallers, nil, period),
		now:     time.Now,
	}
}

// Allow records one request for key. When the window is used up it returns
// false and the time until the window resets.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows.Get(key)
	if !ok || now.Sub(w.start) >= r.period {
		w = &window{start: now}
		r.windows.Add(key, w)
	}
	if w.count >= r.limit {
		return false, w.start.Add(r.period).Sub(now)
	}
	w.count++
	return true, 0
}

// RateLimit rejects requests of callers that used up their window. It needs
// CallerMiddleware to run before it.
func RateLimit(limiter *RateLimiter) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			allowed, retryAfter := limiter.Allow(shared.GetCaller(ctx))
			if !allowed {
				monitoring.RateLimitedRequests.Inc()
				ctx.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				return echo.NewHTTPError(failures.HTTPStatus(failures.KindRateLimited), dtos.ErrorDTO{
					Error:     failures.UserMessage(failures.KindRateLimited),
					Code:      string(failures.KindRateLimited),
					Retryable: failures.Retryable(failures.KindRateLimited),
				})
			}
			return next(ctx)
		}
	}
}
