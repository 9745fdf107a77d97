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
	"errors"
	"fmt"
	"time"

	"github.com/floraseven/floraseven/pkg/logger"
)

var (
	errThresholdOrder    = errors.New("connection timeouts must satisfy warning < error < critical")
	errCheckInterval     = errors.New("check_interval_seconds must be positive")
	errHistoryRetention  = errors.New("history_retention_days must be positive")
	errMaxHistoryEntries = errors.New("max_history_entries must be positive")
	errMQTTBroker        = errors.New("mqtt broker address is required")
	errDatabaseHost      = errors.New("database host is required")
	errDatabaseName      = errors.New("database name is required")
	errListenAddr        = errors.New("http listen_addr is required")
)

// MonitorConfig configures the connection monitor. All intervals are given
// in seconds in the config file.
type MonitorConfig struct {
	CheckInterval        int             `json:"check_interval_seconds"`
	NotificationCooldown int             `json:"notification_cooldown_seconds"`
	TimeoutWarning       int             `json:"timeout_warning_seconds"`
	TimeoutError         int             `json:"timeout_error_seconds"`
	TimeoutCritical      int             `json:"timeout_critical_seconds"`
	HistoryRetentionDays int             `json:"history_retention_days"`
	MaxHistoryEntries    int             `json:"max_history_entries"`
	Components           []ComponentSpec `json:"components,omitempty"`
}

// DefaultMonitorConfig returns the production defaults: a 60s check
// interval, a 5 minute notification cooldown, and the 5/10/30 minute
// connection timeouts.
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		CheckInterval:        60,
		NotificationCooldown: 300,
		TimeoutWarning:       300,
		TimeoutError:         600,
		TimeoutCritical:      1800,
		HistoryRetentionDays: 7,
		MaxHistoryEntries:    100,
	}
}

func (c *MonitorConfig) Validate() error {
	if c.CheckInterval <= 0 {
		return errCheckInterval
	}

	if c.TimeoutWarning <= 0 || c.TimeoutWarning >= c.TimeoutError || c.TimeoutError >= c.TimeoutCritical {
		return fmt.Errorf("%w: got %d/%d/%d",
			errThresholdOrder, c.TimeoutWarning, c.TimeoutError, c.TimeoutCritical)
	}

	if c.HistoryRetentionDays <= 0 {
		return errHistoryRetention
	}

	if c.MaxHistoryEntries <= 0 {
		return errMaxHistoryEntries
	}

	return nil
}

func (c *MonitorConfig) CheckIntervalDuration() time.Duration {
	return time.Duration(c.CheckInterval) * time.Second
}

func (c *MonitorConfig) CooldownDuration() time.Duration {
	return time.Duration(c.NotificationCooldown) * time.Second
}

func (c *MonitorConfig) HistoryRetention() time.Duration {
	return time.Duration(c.HistoryRetentionDays) * 24 * time.Hour
}

// MQTTConfig configures the broker connection for the ingestion adapter.
type MQTTConfig struct {
	Broker           string `json:"broker"`
	ClientID         string `json:"client_id"`
	Username         string `json:"username,omitempty"`
	Password         string `json:"password,omitempty"`
	KeepAlive        int    `json:"keepalive_seconds"`
	QoS              byte   `json:"qos"`
	UseTLS           bool   `json:"use_tls"`
	ReconnectMaxWait int    `json:"reconnect_max_wait_seconds"`
}

// DefaultMQTTConfig returns the production defaults: QoS 1 delivery, a
// 60s keepalive, and a bounded reconnect backoff.
func DefaultMQTTConfig() MQTTConfig {
	return MQTTConfig{
		ClientID:         "floraseven-server",
		KeepAlive:        60,
		QoS:              1,
		ReconnectMaxWait: 120,
	}
}

func (c *MQTTConfig) Validate() error {
	if c.Broker == "" {
		return errMQTTBroker
	}

	return nil
}

// DatabaseConfig configures the Postgres-backed status store.
type DatabaseConfig struct {
	Host                      string `json:"host"`
	Port                      int    `json:"port"`
	Name                      string `json:"name"`
	Username                  string `json:"username"`
	Password                  string `json:"password,omitempty"`
	SSLMode                   string `json:"sslmode,omitempty"`
	MaxConnections            int32  `json:"max_connections,omitempty"`
	ConnectionRetentionDays   int    `json:"connection_retention_days"`
	NotificationRetentionDays int    `json:"notification_retention_days"`
	SensorRetentionDays       int    `json:"sensor_retention_days"`
}

// DefaultDatabaseConfig returns the production defaults: the standard
// Postgres port and the 30/30/90 day retention windows for connection
// data, notifications, and sensor readings.
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Port:                      5432,
		ConnectionRetentionDays:   30,
		NotificationRetentionDays: 30,
		SensorRetentionDays:       90,
	}
}

func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return errDatabaseHost
	}

	if c.Name == "" {
		return errDatabaseName
	}

	return nil
}

// HTTPConfig configures the REST API server.
type HTTPConfig struct {
	ListenAddr  string   `json:"listen_addr"`
	APIKey      string   `json:"api_key,omitempty"`
	CORSOrigins []string `json:"cors_origins,omitempty"`
}

// WebhookConfig configures one webhook alert destination.
type WebhookConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Timeout int    `json:"timeout_seconds,omitempty"`
}

// SMTPConfig configures email alerting. Email alerts are enabled only when
// every field required to send is present.
type SMTPConfig struct {
	Server     string   `json:"server,omitempty"`
	Port       int      `json:"port,omitempty"`
	Username   string   `json:"username,omitempty"`
	Password   string   `json:"password,omitempty"`
	From       string   `json:"from,omitempty"`
	Recipients []string `json:"recipients,omitempty"`
}

// Enabled reports whether the configuration is complete enough to send.
func (c *SMTPConfig) Enabled() bool {
	return c.Server != "" && c.Username != "" && c.Password != "" &&
		c.From != "" && len(c.Recipients) > 0
}

// ServerConfig is the root configuration loaded from the server's JSON
// config file.
type ServerConfig struct {
	Monitor  MonitorConfig   `json:"monitor"`
	MQTT     MQTTConfig      `json:"mqtt"`
	Database DatabaseConfig  `json:"database"`
	HTTP     HTTPConfig      `json:"http"`
	Webhooks []WebhookConfig `json:"webhooks,omitempty"`
	SMTP     SMTPConfig      `json:"smtp,omitempty"`
	Vision   VisionConfig    `json:"vision,omitempty"`
	Logging  *logger.Config  `json:"logging,omitempty"`
}

func (c *ServerConfig) Validate() error {
	if err := c.Monitor.Validate(); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	if err := c.MQTT.Validate(); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.HTTP.ListenAddr == "" {
		return errListenAddr
	}

	return nil
}

// VisionConfig configures the external visual-health classifier service.
type VisionConfig struct {
	Endpoint            string  `json:"endpoint,omitempty"`
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty"`
	Timeout             int     `json:"timeout_seconds,omitempty"`
}
