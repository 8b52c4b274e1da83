// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package web

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoute is returned for a route table entry that cannot be served.
var ErrInvalidRoute = errors.New("invalid web route")

// Route maps a path pattern to a view. Pattern "*" matches every path; other
// patterns are chi patterns and must start with "/".
type Route struct {
	Pattern string
	View    string
}

// DefaultRoutes is the client's route table: every path renders NotFound.
func DefaultRoutes() []Route {
	return []Route{
		{Pattern: "*", View: ViewNotFound},
	}
}

// chiPattern converts a route pattern to the chi form.
func chiPattern(pattern string) (string, error) {
	switch {
	case pattern == "*":
		return "/*", nil
	case strings.HasPrefix(pattern, AssetBase):
		return "", fmt.Errorf("%w: %q overlaps the asset path", ErrInvalidRoute, pattern)
	case pattern == MetricsPath:
		return "", fmt.Errorf("%w: %q is reserved for metrics", ErrInvalidRoute, pattern)
	case strings.HasPrefix(pattern, "/"):
		return pattern, nil
	default:
		return "", fmt.Errorf("%w: pattern %q must be \"*\" or start with \"/\"", ErrInvalidRoute, pattern)
	}
}
