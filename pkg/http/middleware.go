/*
 * Copyright 2025 the FloraSeven authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package http provides shared middleware for the REST API.
package http

import (
	"net/http"

	"github.com/floraseven/floraseven/pkg/logger"
)

// CommonMiddleware logs each request and answers CORS preflights. An empty
// origin list allows any origin; the mobile app runs from arbitrary
// addresses on the local network.
func CommonMiddleware(log logger.Logger, allowedOrigins []string) func(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug().
				Str("remote", r.RemoteAddr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("HTTP request")

			origin := "*"
			if len(allowed) > 0 {
				if _, ok := allowed[r.Header.Get("Origin")]; ok {
					origin = r.Header.Get("Origin")
				} else {
					origin = ""
				}
			}

			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")
				w.Header().Set("Access-Control-Max-Age", "3600")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// APIKeyMiddleware rejects requests without the configured key. With an
// empty key the check is disabled.
func APIKeyMiddleware(log logger.Logger, apiKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			requestKey := r.Header.Get("X-API-Key")
			if requestKey == "" {
				requestKey = r.URL.Query().Get("api_key")
			}

			if requestKey != apiKey {
				log.Warn().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Unauthorized API access attempt")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
