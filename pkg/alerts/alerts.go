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

// Package alerts delivers component notifications to external sinks: the
// notification store read by the mobile app, webhooks, and email. Sinks are
// fire-and-forget from the monitor's perspective; failures are logged by
// the caller and never propagate into the state machine.
package alerts

//go:generate mockgen -destination=mock_alerts.go -package=alerts github.com/floraseven/floraseven/pkg/alerts AlertService

import (
	"context"
	"time"

	"github.com/floraseven/floraseven/pkg/models"
)

// Alert describes one notification-worthy component event.
type Alert struct {
	ComponentID string                 `json:"component_id"`
	Severity    models.Severity        `json:"severity"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message"`
	Timestamp   time.Time              `json:"timestamp"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// AlertService delivers alerts to a single destination.
type AlertService interface {
	Alert(ctx context.Context, alert *Alert) error
}
