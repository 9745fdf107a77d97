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

package monitor

import (
	"github.com/floraseven/floraseven/pkg/models"
)

// Overall health values reported by GetSystemHealthSummary.
const (
	HealthHealthy  = "healthy"
	HealthWarning  = "warning"
	HealthError    = "error"
	HealthCritical = "critical"
	HealthUnknown  = "unknown"
)

// GetComponentStatus returns a copy of one component's live status.
func (m *Monitor) GetComponentStatus(id string) (models.ComponentStatus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comp, ok := m.components[id]
	if !ok {
		return models.ComponentStatus{}, false
	}

	return comp.status(), true
}

// GetAllComponentStatus returns a copy of every component's live status,
// keyed by component id.
func (m *Monitor) GetAllComponentStatus() map[string]models.ComponentStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]models.ComponentStatus, len(m.components))
	for id, comp := range m.components {
		out[id] = comp.status()
	}

	return out
}

// GetRecentEvents returns up to limit connection events, newest first.
func (m *Monitor) GetRecentEvents(limit int) []models.ConnectionEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.events)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]models.ConnectionEvent, 0, n)
	for i := len(m.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.events[i])
	}

	return out
}

// GetSystemHealthSummary aggregates the state of all components into a
// single health report. Overall health precedence is critical > error >
// warning > unknown > healthy; a disconnected critical component forces
// critical regardless of the state counts.
func (m *Monitor) GetSystemHealthSummary() models.HealthSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := models.HealthSummary{
		Timestamp:       m.clock.Now(),
		TotalComponents: len(m.components),
	}

	var uptimeSum float64

	uptimeCount := 0

	for _, comp := range m.components {
		switch comp.state {
		case models.StateOnline:
			summary.ConnectedComponents++
		case models.StateWarning:
			summary.WarningComponents++
		case models.StateError:
			summary.ErrorComponents++
		case models.StateCritical:
			summary.CriticalStateCount++
		case models.StateUnknown:
			summary.UnknownComponents++
		}

		if comp.spec.Critical {
			summary.CriticalComponents++

			if comp.state.Disconnected() {
				summary.CriticalDisconnected++
			}
		}

		if comp.uptimePercentage > 0 {
			uptimeSum += comp.uptimePercentage
			uptimeCount++
		}
	}

	switch {
	case summary.CriticalDisconnected > 0 || summary.CriticalStateCount > 0:
		summary.OverallHealth = HealthCritical
	case summary.ErrorComponents > 0:
		summary.OverallHealth = HealthError
	case summary.WarningComponents > 0:
		summary.OverallHealth = HealthWarning
	case summary.UnknownComponents == summary.TotalComponents:
		summary.OverallHealth = HealthUnknown
	default:
		summary.OverallHealth = HealthHealthy
	}

	if uptimeCount > 0 {
		summary.AverageUptime = uptimeSum / float64(uptimeCount)
	}

	return summary
}
