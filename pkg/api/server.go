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

// Package api provides the HTTP API server for FloraSeven.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/floraseven/floraseven/pkg/db"
	flhttp "github.com/floraseven/floraseven/pkg/http"
	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
	"github.com/floraseven/floraseven/pkg/vision"
)

//go:generate mockgen -destination=mock_api.go -package=api github.com/floraseven/floraseven/pkg/api MonitorService,Commander

// MonitorService is the read-only view of the connection monitor consumed
// by the API handlers. Satisfied by *monitor.Monitor.
type MonitorService interface {
	GetComponentStatus(id string) (models.ComponentStatus, bool)
	GetAllComponentStatus() map[string]models.ComponentStatus
	GetRecentEvents(limit int) []models.ConnectionEvent
	GetSystemHealthSummary() models.HealthSummary
}

// Commander issues device commands over the broker. Satisfied by
// *mqtt.Client.
type Commander interface {
	SendWaterCommand(state string, durationSec int, nodeID string) error
	SendCaptureImageCommand(resolution string, flash *bool, nodeID string) error
	SendReadNowCommand(nodeID string) error
}

// APIServer serves the REST API. Handlers read live state from the
// monitor and historical data from the store; they never mutate monitor
// state directly.
type APIServer struct {
	config     models.HTTPConfig
	router     *mux.Router
	monitor    MonitorService
	commander  Commander
	store      db.Service
	classifier vision.Classifier
	confidence float64
	logger     logger.Logger
	httpServer *http.Server
}

// NewAPIServer creates a new API server instance with the given configuration.
func NewAPIServer(config models.HTTPConfig, log logger.Logger, options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		config: config,
		router: mux.NewRouter(),
		logger: log,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithMonitor attaches the connection monitor read surface.
func WithMonitor(m MonitorService) func(server *APIServer) {
	return func(server *APIServer) {
		server.monitor = m
	}
}

// WithCommander attaches the device command publisher.
func WithCommander(c Commander) func(server *APIServer) {
	return func(server *APIServer) {
		server.commander = c
	}
}

// WithStore attaches the persistence service for history and
// notification reads.
func WithStore(store db.Service) func(server *APIServer) {
	return func(server *APIServer) {
		server.store = store
	}
}

// WithClassifier attaches the visual-health classifier. Assessments whose
// confidence falls below threshold are reported as inconclusive.
func WithClassifier(c vision.Classifier, threshold float64) func(server *APIServer) {
	return func(server *APIServer) {
		server.classifier = c
		server.confidence = threshold
	}
}

func (s *APIServer) setupRoutes() {
	s.router.Use(flhttp.CommonMiddleware(s.logger, s.config.CORSOrigins))

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(flhttp.APIKeyMiddleware(s.logger, s.config.APIKey))

	api.HandleFunc("/status", s.getSystemStatus).Methods("GET")
	api.HandleFunc("/status/{id}", s.getComponentStatus).Methods("GET")
	api.HandleFunc("/events", s.getEvents).Methods("GET")
	api.HandleFunc("/health", s.getHealth).Methods("GET")

	api.HandleFunc("/notifications", s.getNotifications).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", s.markNotificationRead).Methods("POST")
	api.HandleFunc("/notifications/{id}/action", s.markNotificationActioned).Methods("POST")

	api.HandleFunc("/sensors/{type}/history", s.getSensorHistory).Methods("GET")

	api.HandleFunc("/command/pump", s.postPumpCommand).Methods("POST")
	api.HandleFunc("/command/capture", s.postCaptureCommand).Methods("POST")
	api.HandleFunc("/command/read", s.postReadNowCommand).Methods("POST")

	api.HandleFunc("/plant/analyze", s.postAnalyze).Methods("POST")
}

// Router exposes the configured handler, primarily for tests.
func (s *APIServer) Router() *mux.Router {
	return s.router
}

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Start starts the API server on the configured address. It blocks until
// the server stops.
func (s *APIServer) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.config.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the API server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
