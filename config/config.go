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

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// set at build time using -ldflags
var (
	Version   string
	Commit    string
	Branch    string
	BuildDate string
)

type AppConfig struct {
	Port        string
	FrontendURL string
	Environment string

	ErrorTrackingDSN string
	TracesExporter   string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
	// bounds a single upstream round trip
	ExtractionTimeout   time.Duration
	MaxTokens           int
	SchemaVersion       string
	MaxImages           int
	UpstreamPerMinute   int
	RateLimitPerMinute  int
	ImageMaxDimension   int
	ImageJPEGQuality    int
	ImageMaxBytes       int
	DisableAutoMigrate  bool
	RequestBodyLimitRaw string
	// proxies allowed to name the caller, CIDRs or single addresses
	TrustedProxies []string
}

// FromEnv never fails. Missing credentials are reported when they are needed.
//
// Environment variables:
// - PORT (default: 8080)
// - FRONTEND_URL (default: http://localhost:3000)
// - OPENAI_API_KEY, OPENAI_BASE_URL (default: https://api.openai.com)
// - EXTRACTION_MODEL (default: gpt-4o), EXTRACTION_TIMEOUT (default: 120s)
// - EXTRACTION_MAX_TOKENS (default: 4096), EXTRACTION_SCHEMA_VERSION (default: v2)
// - EXTRACTION_MAX_IMAGES (default: 5)
// - UPSTREAM_REQUESTS_PER_MINUTE (default: 30), RATE_LIMIT_PER_MINUTE (default: 10)
// - TRUSTED_PROXIES (comma separated, default: none)
// - IMAGE_MAX_DIMENSION (default: 2048), IMAGE_JPEG_QUALITY (default: 70), IMAGE_MAX_BYTES (default: 10MiB)
func FromEnv() AppConfig {
	return AppConfig{
		Port:               getEnv("PORT", "8080"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		Environment:        getEnv("ENVIRONMENT", "dev"),
		ErrorTrackingDSN:   os.Getenv("ERROR_TRACKING_DSN"),
		TracesExporter:     os.Getenv("OTEL_TRACES_EXPORTER"),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:      strings.TrimSuffix(getEnv("OPENAI_BASE_URL", "https://api.openai.com"), "/"),
		Model:              getEnv("EXTRACTION_MODEL", "gpt-4o"),
		ExtractionTimeout:  getDuration("EXTRACTION_TIMEOUT", 120*time.Second),
		MaxTokens:          getInt("EXTRACTION_MAX_TOKENS", 4096),
		SchemaVersion:      getEnv("EXTRACTION_SCHEMA_VERSION", "v2"),
		MaxImages:          getInt("EXTRACTION_MAX_IMAGES", 5),
		UpstreamPerMinute:  getInt("UPSTREAM_REQUESTS_PER_MINUTE", 30),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 10),
		TrustedProxies:     getList("TRUSTED_PROXIES"),
		ImageMaxDimension:  getInt("IMAGE_MAX_DIMENSION", 2048),
		ImageJPEGQuality:   getInt("IMAGE_JPEG_QUALITY", 70),
		ImageMaxBytes:      getInt("IMAGE_MAX_BYTES", 10<<20),
		DisableAutoMigrate: os.Getenv("DISABLE_AUTOMIGRATE") == "true",
		// five base64 encoded images plus some json overhead
		RequestBodyLimitRaw: getEnv("REQUEST_BODY_LIMIT", "70M"),
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getList(key string) []string {
	var list []string
	for _, val := range strings.Split(os.Getenv(key), ",") {
		if val = strings.TrimSpace(val); val != "" {
			list = append(list, val)
		}
	}
	return list
}

func getInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return def
}
