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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

func TestWebhookAlerterDelivers(t *testing.T) {
	var received Alert

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	alerter := NewWebhookAlerter(models.WebhookConfig{
		Enabled: true,
		URL:     server.URL,
	}, logger.NewTestLogger())

	alert := &Alert{
		ComponentID: "hub_node_main_hub",
		Severity:    models.SeverityCritical,
		Title:       "Component Disconnected",
		Message:     "Connection error (worsening)",
		Timestamp:   time.Now().UTC(),
	}

	err := alerter.Alert(context.Background(), alert)
	require.NoError(t, err)

	assert.Equal(t, alert.ComponentID, received.ComponentID)
	assert.Equal(t, alert.Severity, received.Severity)
	assert.Equal(t, alert.Message, received.Message)
}

func TestWebhookAlerterNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	alerter := NewWebhookAlerter(models.WebhookConfig{
		Enabled: true,
		URL:     server.URL,
	}, logger.NewTestLogger())

	err := alerter.Alert(context.Background(), &Alert{
		ComponentID: "plant_node_a1",
		Severity:    models.SeverityWarning,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errWebhookStatus)
}

func TestWebhookAlerterDisabled(t *testing.T) {
	called := false

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer server.Close()

	alerter := NewWebhookAlerter(models.WebhookConfig{
		Enabled: false,
		URL:     server.URL,
	}, logger.NewTestLogger())

	err := alerter.Alert(context.Background(), &Alert{ComponentID: "camera_cam0"})
	require.NoError(t, err)
	assert.False(t, called)
}
