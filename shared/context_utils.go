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

package shared

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentscan/failures"
)

const callerKey = "caller"

// anonymous is used when neither the auth proxy nor the connection tells us who is calling
const anonymous = "anonymous"

func GetCaller(ctx Context) string {
	if caller, ok := ctx.Get(callerKey).(string); ok && caller != "" {
		return caller
	}
	return anonymous
}

func SetCaller(ctx Context, caller string) {
	ctx.Set(callerKey, caller)
}

func GetParam(ctx Context, param string) string {
	return SanitizeParam(ctx.Param(param))
}

func GetIncidentID(ctx Context) (uuid.UUID, error) {
	id, err := uuid.Parse(GetParam(ctx, "id"))
	if err != nil {
		return uuid.Nil, failures.Wrap(failures.KindInvalidInput, err, "invalid incident id")
	}
	return id, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

// IncidentFilter narrows the incident list. From and To are inclusive ISO dates
// compared against the report date.
type IncidentFilter struct {
	From   *string
	To     *string
	Search string
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func NewIncidentFilter(from, to, search string) (IncidentFilter, error) {
	filter := IncidentFilter{Search: strings.TrimSpace(search)}
	for _, d := range []struct {
		name string
		val  string
		dst  **string
	}{
		{name: "from", val: from, dst: &filter.From},
		{name: "to", val: to, dst: &filter.To},
	} {
		val := strings.TrimSpace(d.val)
		if val == "" {
			continue
		}
		if !isoDate.MatchString(val) {
			return IncidentFilter{}, failures.Newf(failures.KindInvalidInput, "%s must be YYYY-MM-DD, got %q", d.name, val)
		}
		*d.dst = &val
	}
	if filter.From != nil && filter.To != nil && *filter.From > *filter.To {
		return IncidentFilter{}, failures.Newf(failures.KindInvalidInput, "from %s is after to %s", *filter.From, *filter.To)
	}
	return filter, nil
}

func GetIncidentFilter(ctx Context) (IncidentFilter, error) {
	return NewIncidentFilter(ctx.QueryParam("from"), ctx.QueryParam("to"), ctx.QueryParam("search"))
}
