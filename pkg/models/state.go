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

// ConnectionState describes how recently a component has reported in.
type ConnectionState string

const (
	StateOnline   ConnectionState = "online"
	StateWarning  ConnectionState = "warning"
	StateError    ConnectionState = "error"
	StateCritical ConnectionState = "critical"
	StateUnknown  ConnectionState = "unknown"
)

// Degraded reports whether the state indicates the component has stopped
// reporting on schedule.
func (s ConnectionState) Degraded() bool {
	return s == StateWarning || s == StateError || s == StateCritical
}

// Disconnected reports whether the state indicates the component is likely
// offline.
func (s ConnectionState) Disconnected() bool {
	return s == StateError || s == StateCritical
}

// ComponentType tags a registry entry.
type ComponentType string

const (
	ComponentTypeHub       ComponentType = "hub"
	ComponentTypePlantNode ComponentType = "plant_node"
	ComponentTypeCamera    ComponentType = "camera"
	ComponentTypeSensor    ComponentType = "sensor"
)

// Valid reports whether t is one of the known component types.
func (t ComponentType) Valid() bool {
	switch t {
	case ComponentTypeHub, ComponentTypePlantNode, ComponentTypeCamera, ComponentTypeSensor:
		return true
	default:
		return false
	}
}

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)
