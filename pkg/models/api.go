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

package models

import "time"

// ErrorResponse is the JSON body returned for every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// SystemStatusResponse is the body of GET /api/status.
type SystemStatusResponse struct {
	Timestamp  time.Time                  `json:"timestamp"`
	Summary    HealthSummary              `json:"summary"`
	Components map[string]ComponentStatus `json:"components"`
}

// PumpCommandRequest is the body of POST /api/command/pump.
type PumpCommandRequest struct {
	State       string `json:"state"`
	DurationSec int    `json:"duration_sec,omitempty"`
	NodeID      string `json:"node_id,omitempty"`
}

// CaptureCommandRequest is the body of POST /api/command/capture.
type CaptureCommandRequest struct {
	Resolution string `json:"resolution,omitempty"`
	Flash      *bool  `json:"flash,omitempty"`
	NodeID     string `json:"node_id,omitempty"`
}

// ReadNowRequest is the body of POST /api/command/read.
type ReadNowRequest struct {
	NodeID string `json:"node_id"`
}

// CommandResponse acknowledges an accepted device command. Queued is set
// when the broker was unreachable and the command was buffered for the
// next reconnect.
type CommandResponse struct {
	Status string `json:"status"`
	Queued bool   `json:"queued,omitempty"`
}

// AnalyzeRequest is the body of POST /api/plant/analyze.
type AnalyzeRequest struct {
	ImagePath string `json:"image_path"`
}

// AnalyzeResponse reports the visual-health assessment for one image.
// Conclusive is false when the classifier's confidence fell below the
// configured threshold, in which case Label should not be trusted.
type AnalyzeResponse struct {
	Label      string  `json:"health_label"`
	Score      int     `json:"health_score"`
	Confidence float64 `json:"confidence"`
	Conclusive bool    `json:"conclusive"`
}
