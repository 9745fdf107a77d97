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

// ComponentSpec is the static registry entry for a monitored component.
type ComponentSpec struct {
	ID               string        `json:"id"`
	Type             ComponentType `json:"type"`
	Name             string        `json:"name"`
	Critical         bool          `json:"critical"`
	ExpectedInterval int           `json:"expected_interval_seconds"`
	ParentID         string        `json:"parent_id,omitempty"`

	// ActivityKeys lists additional ledger keys attributed to this
	// component when ingestion reports under a different name than the
	// registry id, e.g. main_hub activity arriving as "hub_node_<id>".
	// The component id itself always counts.
	ActivityKeys []string `json:"activity_keys,omitempty"`
}

// HistoryEntry is one per-component state transition kept in the bounded
// in-memory history.
type HistoryEntry struct {
	State     ConnectionState `json:"state"`
	Timestamp time.Time       `json:"timestamp"`
	Message   string          `json:"message"`
}

// ComponentStatus is the live view of one component, copied out of the
// monitor under its lock.
type ComponentStatus struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Type                ComponentType   `json:"type"`
	State               ConnectionState `json:"state"`
	Message             string          `json:"message"`
	Critical            bool            `json:"critical"`
	LastSeen            *time.Time      `json:"last_seen"`
	UptimePercentage    float64         `json:"uptime_percentage"`
	ConsecutiveFailures int             `json:"consecutive_failures"`
}

// ConnectionEvent records one observed state transition. Events are
// append-only and never mutated.
type ConnectionEvent struct {
	Timestamp     time.Time       `json:"timestamp"`
	ComponentID   string          `json:"component_id"`
	ComponentName string          `json:"component_name"`
	ComponentType ComponentType   `json:"component_type"`
	PreviousState ConnectionState `json:"previous_state"`
	NewState      ConnectionState `json:"new_state"`
	Message       string          `json:"message"`
}

// StatusSnapshot is the full serialized state of every component at a point
// in time, written whenever any component's state changed during a tick.
type StatusSnapshot struct {
	ID         string                     `json:"id"`
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentStatus `json:"components"`
}

// HealthSummary aggregates the state of all components.
type HealthSummary struct {
	Timestamp            time.Time `json:"timestamp"`
	OverallHealth        string    `json:"overall_health"`
	TotalComponents      int       `json:"total_components"`
	ConnectedComponents  int       `json:"connected_components"`
	WarningComponents    int       `json:"warning_components"`
	ErrorComponents      int       `json:"error_components"`
	CriticalStateCount   int       `json:"critical_components_count"`
	UnknownComponents    int       `json:"unknown_components"`
	CriticalComponents   int       `json:"critical_components"`
	CriticalDisconnected int       `json:"critical_disconnected"`
	AverageUptime        float64   `json:"average_uptime"`
}
