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

package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

const defaultWebhookTimeout = 10 * time.Second

// WebhookAlerter posts alerts as JSON to a configured URL.
type WebhookAlerter struct {
	config models.WebhookConfig
	client *http.Client
	logger logger.Logger
}

// NewWebhookAlerter creates an alerter for one webhook destination.
func NewWebhookAlerter(config models.WebhookConfig, log logger.Logger) *WebhookAlerter {
	timeout := defaultWebhookTimeout
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	return &WebhookAlerter{
		config: config,
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

// Alert implements AlertService.
func (w *WebhookAlerter) Alert(ctx context.Context, alert *Alert) error {
	if !w.config.Enabled {
		return nil
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.config.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook alert: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", errWebhookStatus, resp.StatusCode)
	}

	w.logger.Debug().
		Str("component_id", alert.ComponentID).
		Str("url", w.config.URL).
		Msg("Delivered webhook alert")

	return nil
}
