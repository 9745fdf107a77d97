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

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/floraseven/floraseven/pkg/db"
	"github.com/floraseven/floraseven/pkg/models"
	"github.com/floraseven/floraseven/pkg/mqtt"
)

const (
	defaultEventLimit        = 50
	defaultNotificationLimit = 50
	defaultHistoryHours      = 24
	maxHistoryHours          = 24 * 30
)

func (s *APIServer) getSystemStatus(w http.ResponseWriter, _ *http.Request) {
	if s.monitor == nil {
		writeError(w, "Monitor not available", http.StatusServiceUnavailable)
		return
	}

	resp := models.SystemStatusResponse{
		Timestamp:  time.Now().UTC(),
		Summary:    s.monitor.GetSystemHealthSummary(),
		Components: s.monitor.GetAllComponentStatus(),
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *APIServer) getComponentStatus(w http.ResponseWriter, r *http.Request) {
	if s.monitor == nil {
		writeError(w, "Monitor not available", http.StatusServiceUnavailable)
		return
	}

	id := mux.Vars(r)["id"]

	status, ok := s.monitor.GetComponentStatus(id)
	if !ok {
		writeError(w, "Component not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func (s *APIServer) getEvents(w http.ResponseWriter, r *http.Request) {
	if s.monitor == nil {
		writeError(w, "Monitor not available", http.StatusServiceUnavailable)
		return
	}

	limit, err := queryInt(r, "limit", defaultEventLimit)
	if err != nil {
		writeError(w, "Invalid limit parameter", http.StatusBadRequest)
		return
	}

	events := s.monitor.GetRecentEvents(limit)
	if events == nil {
		events = []models.ConnectionEvent{}
	}

	writeJSON(w, http.StatusOK, events)
}

func (s *APIServer) getHealth(w http.ResponseWriter, _ *http.Request) {
	if s.monitor == nil {
		writeError(w, "Monitor not available", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, s.monitor.GetSystemHealthSummary())
}

func (s *APIServer) getNotifications(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, "Store not available", http.StatusServiceUnavailable)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	limit, err := queryInt(r, "limit", defaultNotificationLimit)
	if err != nil {
		writeError(w, "Invalid limit parameter", http.StatusBadRequest)
		return
	}

	notifications, err := s.store.ListNotifications(r.Context(), unreadOnly, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list notifications")
		writeError(w, "Failed to list notifications", http.StatusInternalServerError)

		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	writeJSON(w, http.StatusOK, notifications)
}

func (s *APIServer) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	s.updateNotification(w, r, "read", func(r *http.Request, id int64) error {
		return s.store.MarkNotificationRead(r.Context(), id)
	})
}

func (s *APIServer) markNotificationActioned(w http.ResponseWriter, r *http.Request) {
	s.updateNotification(w, r, "actioned", func(r *http.Request, id int64) error {
		return s.store.MarkNotificationActioned(r.Context(), id)
	})
}

func (s *APIServer) updateNotification(
	w http.ResponseWriter, r *http.Request, status string, update func(*http.Request, int64) error) {
	if s.store == nil {
		writeError(w, "Store not available", http.StatusServiceUnavailable)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Invalid notification id", http.StatusBadRequest)
		return
	}

	if err := update(r, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, "Notification not found", http.StatusNotFound)
			return
		}

		s.logger.Error().Err(err).Int64("notification_id", id).Msg("Failed to update notification")
		writeError(w, "Failed to update notification", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, models.CommandResponse{Status: status})
}

func (s *APIServer) getSensorHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, "Store not available", http.StatusServiceUnavailable)
		return
	}

	sensorType := mux.Vars(r)["type"]

	nodeID := r.URL.Query().Get("node_id")
	if nodeID == "" {
		writeError(w, "node_id parameter is required", http.StatusBadRequest)
		return
	}

	hours, err := queryInt(r, "hours", defaultHistoryHours)
	if err != nil || hours <= 0 || hours > maxHistoryHours {
		writeError(w, "Invalid hours parameter", http.StatusBadRequest)
		return
	}

	end := time.Now().UTC()
	start := end.Add(-time.Duration(hours) * time.Hour)

	readings, err := s.store.GetSensorHistory(r.Context(), nodeID, sensorType, start, end)
	if err != nil {
		s.logger.Error().Err(err).
			Str("node_id", nodeID).
			Str("sensor_type", sensorType).
			Msg("Failed to query sensor history")
		writeError(w, "Failed to query sensor history", http.StatusInternalServerError)

		return
	}

	if readings == nil {
		readings = []models.SensorReading{}
	}

	writeJSON(w, http.StatusOK, readings)
}

func (s *APIServer) postPumpCommand(w http.ResponseWriter, r *http.Request) {
	if s.commander == nil {
		writeError(w, "Commander not available", http.StatusServiceUnavailable)
		return
	}

	var req models.PumpCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := s.commander.SendWaterCommand(req.State, req.DurationSec, req.NodeID)
	s.writeCommandResult(w, err, "Failed to send pump command")
}

func (s *APIServer) postCaptureCommand(w http.ResponseWriter, r *http.Request) {
	if s.commander == nil {
		writeError(w, "Commander not available", http.StatusServiceUnavailable)
		return
	}

	var req models.CaptureCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := s.commander.SendCaptureImageCommand(req.Resolution, req.Flash, req.NodeID)
	s.writeCommandResult(w, err, "Failed to send capture command")
}

func (s *APIServer) postReadNowCommand(w http.ResponseWriter, r *http.Request) {
	if s.commander == nil {
		writeError(w, "Commander not available", http.StatusServiceUnavailable)
		return
	}

	var req models.ReadNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.NodeID == "" {
		writeError(w, "node_id is required", http.StatusBadRequest)
		return
	}

	err := s.commander.SendReadNowCommand(req.NodeID)
	s.writeCommandResult(w, err, "Failed to send read command")
}

// writeCommandResult maps a command publish outcome onto an HTTP status.
// A queued command is accepted, not failed: the broker was unreachable and
// the command will be flushed on reconnect.
func (s *APIServer) writeCommandResult(w http.ResponseWriter, err error, failMessage string) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, models.CommandResponse{Status: "sent"})
	case errors.Is(err, mqtt.ErrQueued):
		writeJSON(w, http.StatusAccepted, models.CommandResponse{Status: "queued", Queued: true})
	default:
		s.logger.Error().Err(err).Msg(failMessage)
		writeError(w, err.Error(), http.StatusBadRequest)
	}
}

func (s *APIServer) postAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.classifier == nil {
		writeError(w, "Classifier not available", http.StatusServiceUnavailable)
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ImagePath == "" {
		writeError(w, "image_path is required", http.StatusBadRequest)
		return
	}

	assessment, err := s.classifier.ClassifyImage(r.Context(), req.ImagePath)
	if err != nil {
		s.logger.Error().Err(err).Str("image_path", req.ImagePath).Msg("Image analysis failed")
		writeError(w, "Image analysis failed", http.StatusBadGateway)

		return
	}

	writeJSON(w, http.StatusOK, models.AnalyzeResponse{
		Label:      assessment.Label,
		Score:      assessment.Score,
		Confidence: assessment.Confidence,
		Conclusive: assessment.Conclusive(s.confidence),
	})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	return strconv.Atoi(raw)
}
