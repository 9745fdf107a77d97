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
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

func testSMTPConfig() models.SMTPConfig {
	return models.SMTPConfig{
		Server:     "smtp.example.com",
		Port:       587,
		Username:   "floraseven",
		Password:   "secret",
		From:       "alerts@example.com",
		Recipients: []string{"grower@example.com"},
	}
}

func TestSMTPAlerterSendsCriticalAlert(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
	)

	alerter := NewSMTPAlerter(testSMTPConfig(), logger.NewTestLogger())
	alerter.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg

		return nil
	}

	err := alerter.Alert(context.Background(), &Alert{
		ComponentID: "hub_node_main_hub",
		Severity:    models.SeverityCritical,
		Title:       "Component Disconnected",
		Message:     "Critical connection failure",
		Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "alerts@example.com", gotFrom)
	assert.Equal(t, []string{"grower@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: FloraSeven CRITICAL Alert: Component Disconnected")
	assert.Contains(t, string(gotMsg), "hub_node_main_hub")
	assert.Contains(t, string(gotMsg), "Critical connection failure")
}

func TestSMTPAlerterSkipsLowerSeverities(t *testing.T) {
	alerter := NewSMTPAlerter(testSMTPConfig(), logger.NewTestLogger())
	alerter.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send should not be called for non-error severities")
		return nil
	}

	for _, severity := range []models.Severity{models.SeverityInfo, models.SeverityWarning} {
		err := alerter.Alert(context.Background(), &Alert{
			ComponentID: "plant_node_a1",
			Severity:    severity,
		})
		require.NoError(t, err)
	}
}

func TestSMTPAlerterIncompleteConfig(t *testing.T) {
	cfg := testSMTPConfig()
	cfg.Recipients = nil

	alerter := NewSMTPAlerter(cfg, logger.NewTestLogger())
	alerter.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send should not be called when config is incomplete")
		return nil
	}

	err := alerter.Alert(context.Background(), &Alert{
		ComponentID: "plant_node_a1",
		Severity:    models.SeverityCritical,
	})
	require.NoError(t, err)
}
