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

package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/floraseven/floraseven/pkg/models"
)

// OnMessage routes one inbound message by topic shape. Malformed payloads
// are logged and dropped; they never take the adapter down.
func (c *Client) OnMessage(topic string, payload []byte) {
	c.ledger.Record("mqtt_client", c.now())

	switch {
	case strings.HasPrefix(topic, "floraSeven/plant/") && strings.HasSuffix(topic, "/data"):
		c.handlePlantData(topic, payload)
	case strings.HasPrefix(topic, "floraSeven/hub/") && strings.HasSuffix(topic, "/cam/image_status"):
		c.handleImageStatus(topic, payload)
	case strings.HasPrefix(topic, "floraSeven/hub/") && strings.HasSuffix(topic, "/status"):
		c.handleHubStatus(topic, payload)
	default:
		c.logger.Warn().Str("topic", topic).Msg("Received message on unknown topic")
	}
}

// nodeIDFromTopic extracts the node id segment, e.g.
// floraSeven/plant/node1/data -> node1.
func nodeIDFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) >= 3 {
		return parts[2]
	}

	return "unknown"
}

func (c *Client) handlePlantData(topic string, payload []byte) {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		c.logger.Error().Err(err).Str("topic", topic).Msg("Invalid JSON in plant data payload")
		return
	}

	if !hasFields(data, "timestamp", "nodeId", "temp_soil_c", "moisture_raw", "light_lux") {
		c.logger.Warn().Str("topic", topic).Msg("Plant data missing required fields")
		return
	}

	nodeID := stringField(data, "nodeId", nodeIDFromTopic(topic))
	ts := c.parseTimestamp(data["timestamp"])

	c.logReading(ts, nodeID, "temp_soil", data["temp_soil_c"])
	c.logReading(ts, nodeID, "moisture", data["moisture_raw"])
	c.logReading(ts, nodeID, "light_lux", data["light_lux"])

	if v, ok := data["ec_voltage_rms"]; ok {
		c.logReading(ts, nodeID, "ec_raw", v)
	}

	if v, ok := data["ec_comp_mS_cm"]; ok {
		c.logReading(ts, nodeID, "ec_compensated", v)
	}

	c.ledger.Record("plant_node_"+nodeID, c.now())

	c.logger.Info().Str("node_id", nodeID).Msg("Processed plant data")
}

func (c *Client) handleHubStatus(topic string, payload []byte) {
	nodeIDTopic := nodeIDFromTopic(topic)

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		c.logger.Error().Err(err).Str("topic", topic).Msg("Invalid JSON in hub status payload")
		return
	}

	// ACK / INFO / ERROR short-circuit messages carry no sensor data but
	// still count as hub activity.
	switch stringField(data, "status", "") {
	case "ACK":
		if cmd := stringField(data, "command_received", ""); cmd != "" {
			c.logger.Info().
				Str("node_id", nodeIDTopic).
				Str("command", cmd).
				Msg("Hub acknowledged command")
		}

		c.ledger.Record("hub_node_"+nodeIDTopic, c.now())

		return
	case "INFO":
		c.logger.Info().
			Str("node_id", nodeIDTopic).
			Str("message", stringField(data, "message", "")).
			Msg("Hub status message")
		c.ledger.Record("hub_node_"+nodeIDTopic, c.now())

		return
	case "ERROR":
		c.logger.Error().
			Str("node_id", nodeIDTopic).
			Str("message", stringField(data, "message", "")).
			Msg("Hub reported an error")
		c.ledger.Record("hub_node_"+nodeIDTopic, c.now())

		return
	}

	if !hasFields(data, "timestamp", "nodeId", "ph_water", "uv_ambient", "pump_active") {
		c.logger.Warn().Str("topic", topic).Msg("Hub status missing required fields")
		return
	}

	nodeID := stringField(data, "nodeId", nodeIDTopic)
	ts := c.parseTimestamp(data["timestamp"])

	c.logReading(ts, nodeID, "ph_water", data["ph_water"])
	c.logReading(ts, nodeID, "uv_ambient", data["uv_ambient"])

	pumpState := 0.0
	if active, _ := data["pump_active"].(bool); active {
		pumpState = 1.0
	}

	c.storeReading(ts, nodeID, "pump_state", pumpState)

	if v, ok := data["temp_ambient"]; ok {
		c.logReading(ts, nodeID, "temp_ambient", v)
	}

	if v, ok := data["humidity"]; ok {
		c.logReading(ts, nodeID, "humidity", v)
	}

	c.ledger.Record("hub_node_"+nodeID, c.now())

	c.logger.Info().Str("node_id", nodeID).Msg("Processed hub status")
}

func (c *Client) handleImageStatus(topic string, payload []byte) {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		c.logger.Error().Err(err).Str("topic", topic).Msg("Invalid JSON in image status payload")
		return
	}

	nodeID := stringField(data, "nodeId", nodeIDFromTopic(topic))

	c.ledger.Record("camera_"+nodeID, c.now())

	switch stringField(data, "status", "") {
	case "uploading":
		c.logger.Info().Str("node_id", nodeID).Msg("Camera is uploading an image")
		return
	case "uploaded":
		c.logger.Info().Str("node_id", nodeID).Msg("Camera successfully uploaded an image")
		return
	case "failed":
		c.logger.Warn().
			Str("node_id", nodeID).
			Str("error", stringField(data, "error", "unknown error")).
			Msg("Camera failed to upload an image")

		return
	}

	if !hasFields(data, "timestamp", "success") {
		c.logger.Warn().Str("topic", topic).Msg("Image status missing required fields")
		return
	}

	if success, _ := data["success"].(bool); success {
		filename := stringField(data, "filename", "")
		if filename == "" {
			c.logger.Warn().Str("topic", topic).Msg("Image status missing filename")
			return
		}

		c.logger.Info().Str("filename", filename).Msg("Image uploaded successfully")

		return
	}

	c.logger.Warn().
		Str("error", stringField(data, "error", "unknown error")).
		Msg("Image upload failed")
}

// logReading converts and stores one sensor value, skipping non-numeric
// payloads.
func (c *Client) logReading(ts time.Time, nodeID, sensorType string, value any) {
	v, ok := numberValue(value)
	if !ok {
		c.logger.Warn().
			Str("node_id", nodeID).
			Str("sensor_type", sensorType).
			Msg("Dropping non-numeric sensor value")

		return
	}

	c.storeReading(ts, nodeID, sensorType, v)
}

func (c *Client) storeReading(ts time.Time, nodeID, sensorType string, value float64) {
	// Per-reading activity lets sensor components in the registry go
	// online independently of their carrier node.
	c.ledger.Record(sensorType, ts)

	if c.store == nil {
		return
	}

	reading := &models.SensorReading{
		Timestamp:  ts,
		NodeID:     nodeID,
		SensorType: sensorType,
		Value:      value,
	}

	if err := c.store.LogSensorReading(context.Background(), reading); err != nil {
		c.logger.Error().
			Err(err).
			Str("node_id", nodeID).
			Str("sensor_type", sensorType).
			Msg("Failed to log sensor reading")
	}
}

// parseTimestamp accepts unix seconds or an RFC 3339 string, falling back
// to the receipt time.
func (c *Client) parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case float64:
		return time.Unix(int64(t), 0).UTC()
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}

	return c.now()
}

func hasFields(data map[string]any, fields ...string) bool {
	for _, field := range fields {
		if _, ok := data[field]; !ok {
			return false
		}
	}

	return true
}

func stringField(data map[string]any, key, fallback string) string {
	if s, ok := data[key].(string); ok && s != "" {
		return s
	}

	return fallback
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}

		return 0, true
	default:
		return 0, false
	}
}
