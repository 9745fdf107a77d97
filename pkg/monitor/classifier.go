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
	"fmt"
	"time"

	"github.com/floraseven/floraseven/pkg/models"
)

// Thresholds holds the elapsed-time boundaries between connection states.
// They must be strictly increasing.
type Thresholds struct {
	Warning  time.Duration
	Error    time.Duration
	Critical time.Duration
}

// DefaultThresholds returns the production boundaries: 5, 10 and 30
// minutes.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Warning:  5 * time.Minute,
		Error:    10 * time.Minute,
		Critical: 30 * time.Minute,
	}
}

// ThresholdsFromConfig converts the second-granularity config values.
func ThresholdsFromConfig(cfg *models.MonitorConfig) Thresholds {
	return Thresholds{
		Warning:  time.Duration(cfg.TimeoutWarning) * time.Second,
		Error:    time.Duration(cfg.TimeoutError) * time.Second,
		Critical: time.Duration(cfg.TimeoutCritical) * time.Second,
	}
}

// Validate enforces warning < error < critical.
func (t Thresholds) Validate() error {
	if t.Warning <= 0 {
		return fmt.Errorf("%w: warning threshold %v", errThresholdOrder, t.Warning)
	}

	if t.Warning >= t.Error || t.Error >= t.Critical {
		return fmt.Errorf("%w: got %v/%v/%v", errThresholdOrder, t.Warning, t.Error, t.Critical)
	}

	return nil
}

// Classify maps a last-seen timestamp to a connection state and a
// human-readable message. It is a pure function of its inputs: ok is false
// when the component has never reported, and now is sampled once per tick
// so every component in a pass is judged against the same instant.
func Classify(lastSeen time.Time, ok bool, now time.Time, th Thresholds) (models.ConnectionState, string) {
	if !ok {
		return models.StateUnknown, "Not yet connected"
	}

	elapsed := now.Sub(lastSeen)
	seconds := int(elapsed.Seconds())

	switch {
	case elapsed < th.Warning:
		return models.StateOnline, "Component is online"
	case elapsed < th.Error:
		return models.StateWarning,
			fmt.Sprintf("Component has not reported in %d seconds", seconds)
	case elapsed < th.Critical:
		return models.StateError,
			fmt.Sprintf("Component may be offline (last activity: %d seconds ago)", seconds)
	default:
		return models.StateCritical,
			fmt.Sprintf("Component is offline (last activity: %d seconds ago)", seconds)
	}
}
