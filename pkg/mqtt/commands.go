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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	defaultPumpDuration = 3
	maxPumpDuration     = 120
	maxQueuedCommands   = 100
)

var (
	// ErrQueued reports that a command was accepted but deferred until
	// the broker connection returns.
	ErrQueued = errors.New("mqtt disconnected, command queued for delivery")

	errInvalidPumpState = errors.New("pump state must be ON or OFF")
	errQueueFull        = errors.New("command queue is full")
)

// SendWaterCommand publishes a pump command to the hub. Durations above the
// hardware limit are clamped.
func (c *Client) SendWaterCommand(state string, durationSec int, nodeID string) error {
	state = strings.ToUpper(state)
	if state != "ON" && state != "OFF" {
		return fmt.Errorf("%w: got %q", errInvalidPumpState, state)
	}

	payload := map[string]any{
		"state":      state,
		"timestamp":  c.now().Format(time.RFC3339),
		"message_id": fmt.Sprintf("pump_%d", c.now().Unix()),
	}

	if state == "ON" {
		if durationSec <= 0 {
			durationSec = defaultPumpDuration
		}

		if durationSec > maxPumpDuration {
			c.logger.Warn().
				Int("requested", durationSec).
				Int("limit", maxPumpDuration).
				Msg("Pump duration limited to maximum")

			durationSec = maxPumpDuration
		}

		payload["duration_sec"] = durationSec
	}

	if nodeID != "" {
		payload["nodeId"] = nodeID
	}

	return c.publishCommand(topicCommandPump, payload)
}

// SendCaptureImageCommand asks the hub camera to take a picture.
func (c *Client) SendCaptureImageCommand(resolution string, flash *bool, nodeID string) error {
	payload := map[string]any{
		"timestamp":  c.now().Format(time.RFC3339),
		"message_id": fmt.Sprintf("capture_%d", c.now().Unix()),
	}

	if resolution != "" {
		payload["resolution"] = resolution
	}

	if flash != nil {
		payload["flash"] = *flash
	}

	if nodeID != "" {
		payload["nodeId"] = nodeID
	}

	return c.publishCommand(topicCommandCapture, payload)
}

// SendReadNowCommand forces an immediate sensor reading on a plant node.
func (c *Client) SendReadNowCommand(nodeID string) error {
	payload := map[string]any{
		"timestamp":  c.now().Format(time.RFC3339),
		"message_id": fmt.Sprintf("read_%d", c.now().Unix()),
	}

	return c.publishCommand(fmt.Sprintf(topicCommandReadNow, nodeID), payload)
}

func (c *Client) publishCommand(topic string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal command payload: %w", err)
	}

	if !c.client.IsConnected() {
		if err := c.enqueue(topic, body); err != nil {
			return err
		}

		c.logger.Warn().
			Str("topic", topic).
			Msg("MQTT client not connected, queued command for later delivery")

		return ErrQueued
	}

	token := c.client.Publish(topic, c.config.QoS, false, body)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish command to %s: %w", topic, err)
	}

	c.logger.Info().Str("topic", topic).Msg("Command sent")

	return nil
}

func (c *Client) enqueue(topic string, payload []byte) error {
	c.queueMu.Lock()
	defer c.queueMu.Unlock()

	if len(c.queue) >= maxQueuedCommands {
		return errQueueFull
	}

	c.queue = append(c.queue, queuedMessage{topic: topic, payload: payload})

	return nil
}

// flushQueue publishes every queued command. Failed publishes go back to
// the front of the queue for the next reconnect.
func (c *Client) flushQueue() {
	c.queueMu.Lock()
	pending := c.queue
	c.queue = nil
	c.queueMu.Unlock()

	for i, msg := range pending {
		token := c.client.Publish(msg.topic, c.config.QoS, msg.retained, msg.payload)
		token.Wait()

		if err := token.Error(); err != nil {
			c.logger.Warn().
				Err(err).
				Str("topic", msg.topic).
				Msg("Failed to publish queued command")

			c.queueMu.Lock()
			c.queue = append(pending[i:], c.queue...)
			c.queueMu.Unlock()

			return
		}

		c.logger.Debug().Str("topic", msg.topic).Msg("Published queued command")
	}
}
