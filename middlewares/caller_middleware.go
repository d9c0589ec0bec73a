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
	"net"
	"net/netip"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/incidentscan/shared"
)

// headers set by the authenticating reverse proxy in front of the api
var callerHeaders = []string{"X-Auth-Request-User", "X-Forwarded-User"}

// ParseTrustedProxies turns CIDRs or single addresses into ranges. Invalid
// entries are logged and skipped.
func ParseTrustedProxies(entries []string) []*net.IPNet {
	ranges := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		if !strings.Contains(entry, "/") {
			addr, err := netip.ParseAddr(entry)
			if err != nil {
				slog.Warn("ignoring trusted proxy", "entry", entry, "err", err)
				continue
			}
			entry = netip.PrefixFrom(addr, addr.BitLen()).String()
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			slog.Warn("ignoring trusted proxy", "entry", entry, "err", err)
			continue
		}
		ranges = append(ranges, ipNet)
	}
	return ranges
}

// ipExtractor only follows X-Forwarded-For through trusted proxies. Without
// any the peer address is the client.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipNet := range trusted {
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...)
}

// CallerMiddleware stores who is calling. The user header of a trusted proxy
// wins, otherwise the client ip names the caller.
func CallerMiddleware(trusted []*net.IPNet) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			shared.SetCaller(ctx, callerOf(ctx, trusted))
			return next(ctx)
		}
	}
}

func callerOf(ctx shared.Context, trusted []*net.IPNet) string {
	if fromTrustedProxy(ctx.Request().RemoteAddr, trusted) {
		for _, h := range callerHeaders {
			if user := strings.TrimSpace(ctx.Request().Header.Get(h)); user != "" {
				return user
			}
		}
	}
	return ctx.RealIP()
}

func fromTrustedProxy(remoteAddr string, trusted []*net.IPNet) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	for _, ipNet := range trusted {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}
