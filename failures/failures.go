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

// Package failures contains the failure taxonomy shared by the extraction
// pipeline and the http layer. Every failure carries a kind with a fixed,
// user safe message. The wrapped cause is only ever logged.
package failures

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindInvalidInput           Kind = "invalid_input"
	KindUnsupportedImageFormat Kind = "unsupported_image_format"
	KindAuthenticationFailure  Kind = "authentication_failure"
	KindQuotaExceeded          Kind = "quota_exceeded"
	KindRateLimited            Kind = "rate_limited"
	KindUpstreamUnavailable    Kind = "upstream_unavailable"
	KindParseFailure           Kind = "parse_failure"
	KindPersistenceFailure     Kind = "persistence_failure"
	KindNotFound               Kind = "not_found"
	KindMisconfigured          Kind = "misconfigured"
	KindInternal               Kind = "internal"
)

var userMessages = map[Kind]string{
	KindInvalidInput:           "The request is missing images or contains invalid data.",
	KindUnsupportedImageFormat: "The image could not be read. Please upload a JPEG, PNG or WebP photo.",
	KindAuthenticationFailure:  "The extraction service rejected the configured credentials. Please contact an administrator.",
	KindQuotaExceeded:          "The extraction service is over its usage limit. Please try again later.",
	KindRateLimited:            "Too many extraction requests. Please wait a moment and try again.",
	KindUpstreamUnavailable:    "The extraction service did not respond in time. Please try again.",
	KindParseFailure:           "The form could not be read from the photo. Please retake it and try again.",
	KindPersistenceFailure:     "The report could not be saved.",
	KindNotFound:               "The report was not found.",
	KindMisconfigured:          "The service is not configured yet. Please contact an administrator.",
	KindInternal:               "An unexpected error occurred.",
}

var httpStatus = map[Kind]int{
	KindInvalidInput:           http.StatusBadRequest,
	KindUnsupportedImageFormat: http.StatusBadRequest,
	KindAuthenticationFailure:  http.StatusUnauthorized,
	KindQuotaExceeded:          http.StatusTooManyRequests,
	KindRateLimited:            http.StatusTooManyRequests,
	KindUpstreamUnavailable:    http.StatusInternalServerError,
	KindParseFailure:           http.StatusInternalServerError,
	KindPersistenceFailure:     http.StatusInternalServerError,
	KindNotFound:               http.StatusNotFound,
	KindMisconfigured:          http.StatusInternalServerError,
	KindInternal:               http.StatusInternalServerError,
}

// Failure is an error with a kind. The cause is kept for logging.
type Failure struct {
	Kind  Kind
	cause error
}

func New(kind Kind, cause error) *Failure {
	return &Failure{Kind: kind, cause: cause}
}

func Newf(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, cause: fmt.Errorf(format, args...)}
}

// Wrap annotates the cause with a message and attaches the kind.
func Wrap(kind Kind, cause error, message string) *Failure {
	if cause == nil {
		return &Failure{Kind: kind, cause: errors.New(message)}
	}
	return &Failure{Kind: kind, cause: errors.Wrap(cause, message)}
}

func (f *Failure) Error() string {
	if f.cause == nil {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.cause.Error())
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// UserMessage never contains anything from the cause.
func (f *Failure) UserMessage() string {
	return UserMessage(f.Kind)
}

// KindOf returns the kind of the first failure in the chain.
// Errors without a failure in their chain are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func UserMessage(kind Kind) string {
	if msg, ok := userMessages[kind]; ok {
		return msg
	}
	return userMessages[KindInternal]
}

func HTTPStatus(kind Kind) int {
	if status, ok := httpStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Retryable reports whether repeating the same request may succeed.
func Retryable(kind Kind) bool {
	switch kind {
	case KindQuotaExceeded, KindRateLimited, KindUpstreamUnavailable, KindParseFailure, KindPersistenceFailure:
		return true
	default:
		return false
	}
}

func Kinds() []Kind {
	return []Kind{
		KindInvalidInput,
		KindUnsupportedImageFormat,
		KindAuthenticationFailure,
		KindQuotaExceeded,
		KindRateLimited,
		KindUpstreamUnavailable,
		KindParseFailure,
		KindPersistenceFailure,
		KindNotFound,
		KindMisconfigured,
		KindInternal,
	}
}
