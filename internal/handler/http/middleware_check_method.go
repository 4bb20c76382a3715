// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/auth-gateway/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// It answers 405 with a JSON error body and an Allow header listing the
// methods registered for the requested path. Only exact pattern matches are
// considered; parameterised or wildcard segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeError(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

// NotFound answers unknown routes with a JSON 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, app.MsgNotFound)
}

// allowedMethods returns the sorted methods registered for path, looking
// into mounted sub-routers as well.
func allowedMethods(router chi.Routes, path string) []string {
	var methods []string

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.TrimSuffix(route, "/") == strings.TrimSuffix(path, "/") && !slices.Contains(methods, method) {
			methods = append(methods, method)
		}
		return nil
	})

	slices.Sort(methods)
	return methods
}
