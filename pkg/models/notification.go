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

// Notification is an alert surfaced to the mobile app. Read and ActionTaken
// are the only fields mutated after creation.
type Notification struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	ComponentID string    `json:"component_id"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	ActionTaken bool      `json:"action_taken"`
}

// SensorReading is one measurement forwarded by the ingestion adapter.
type SensorReading struct {
	Timestamp  time.Time `json:"timestamp"`
	NodeID     string    `json:"node_id"`
	SensorType string    `json:"sensor_type"`
	Value      float64   `json:"value"`
}
