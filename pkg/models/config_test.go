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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMonitorConfig(t *testing.T) {
	cfg := DefaultMonitorConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60*time.Second, cfg.CheckIntervalDuration())
	assert.Equal(t, 5*time.Minute, cfg.CooldownDuration())
	assert.Equal(t, 7*24*time.Hour, cfg.HistoryRetention())
}

func TestMonitorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MonitorConfig)
		wantErr error
	}{
		{
			name:    "zero check interval",
			mutate:  func(c *MonitorConfig) { c.CheckInterval = 0 },
			wantErr: errCheckInterval,
		},
		{
			name:    "warning above error",
			mutate:  func(c *MonitorConfig) { c.TimeoutWarning = 700 },
			wantErr: errThresholdOrder,
		},
		{
			name:    "error above critical",
			mutate:  func(c *MonitorConfig) { c.TimeoutError = 2000 },
			wantErr: errThresholdOrder,
		},
		{
			name:    "equal thresholds",
			mutate:  func(c *MonitorConfig) { c.TimeoutError = c.TimeoutWarning },
			wantErr: errThresholdOrder,
		},
		{
			name:    "zero retention",
			mutate:  func(c *MonitorConfig) { c.HistoryRetentionDays = 0 },
			wantErr: errHistoryRetention,
		},
		{
			name:    "zero history cap",
			mutate:  func(c *MonitorConfig) { c.MaxHistoryEntries = 0 },
			wantErr: errMaxHistoryEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMonitorConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfigValidate(t *testing.T) {
	valid := func() ServerConfig {
		return ServerConfig{
			Monitor:  DefaultMonitorConfig(),
			MQTT:     MQTTConfig{Broker: "tcp://localhost:1883"},
			Database: DatabaseConfig{Host: "localhost", Name: "floraseven"},
			HTTP:     HTTPConfig{ListenAddr: ":8080"},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.MQTT.Broker = ""
	require.ErrorIs(t, cfg.Validate(), errMQTTBroker)

	cfg = valid()
	cfg.Database.Host = ""
	require.ErrorIs(t, cfg.Validate(), errDatabaseHost)

	cfg = valid()
	cfg.Database.Name = ""
	require.ErrorIs(t, cfg.Validate(), errDatabaseName)

	cfg = valid()
	cfg.HTTP.ListenAddr = ""
	require.ErrorIs(t, cfg.Validate(), errListenAddr)

	cfg = valid()
	cfg.Monitor.TimeoutWarning = 0
	require.ErrorIs(t, cfg.Validate(), errThresholdOrder)
}

func TestSMTPConfigEnabled(t *testing.T) {
	cfg := SMTPConfig{
		Server:     "smtp.example.com",
		Port:       587,
		Username:   "alerts",
		Password:   "secret",
		From:       "alerts@example.com",
		Recipients: []string{"owner@example.com"},
	}
	assert.True(t, cfg.Enabled())

	incomplete := cfg
	incomplete.Recipients = nil
	assert.False(t, incomplete.Enabled())

	incomplete = cfg
	incomplete.Server = ""
	assert.False(t, incomplete.Enabled())
}

func TestConnectionStateHelpers(t *testing.T) {
	assert.False(t, StateOnline.Degraded())
	assert.False(t, StateUnknown.Degraded())
	assert.True(t, StateWarning.Degraded())
	assert.True(t, StateError.Degraded())
	assert.True(t, StateCritical.Degraded())

	assert.False(t, StateWarning.Disconnected())
	assert.True(t, StateError.Disconnected())
	assert.True(t, StateCritical.Disconnected())
}
