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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWaterCommand(t *testing.T) {
	c, fake, _ := newTestClient(nil)

	require.NoError(t, c.SendWaterCommand("on", 10, "hub1"))

	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "floraSeven/command/hub/pump", calls[0].topic)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(calls[0].payload, &payload))
	assert.Equal(t, "ON", payload["state"])
	assert.Equal(t, float64(10), payload["duration_sec"])
	assert.Equal(t, "hub1", payload["nodeId"])
	assert.Contains(t, payload["message_id"], "pump_")
}

func TestSendWaterCommandClampsDuration(t *testing.T) {
	c, fake, _ := newTestClient(nil)

	require.NoError(t, c.SendWaterCommand("ON", 600, ""))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(fake.calls()[0].payload, &payload))
	assert.Equal(t, float64(maxPumpDuration), payload["duration_sec"])
}

func TestSendWaterCommandDefaultDuration(t *testing.T) {
	c, fake, _ := newTestClient(nil)

	require.NoError(t, c.SendWaterCommand("ON", 0, ""))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(fake.calls()[0].payload, &payload))
	assert.Equal(t, float64(defaultPumpDuration), payload["duration_sec"])
}

func TestSendWaterCommandOffHasNoDuration(t *testing.T) {
	c, fake, _ := newTestClient(nil)

	require.NoError(t, c.SendWaterCommand("OFF", 30, ""))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(fake.calls()[0].payload, &payload))
	assert.NotContains(t, payload, "duration_sec")
}

func TestSendWaterCommandInvalidState(t *testing.T) {
	c, fake, _ := newTestClient(nil)

	err := c.SendWaterCommand("MAYBE", 10, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidPumpState)
	assert.Empty(t, fake.calls())
}

func TestSendCaptureImageCommand(t *testing.T) {
	c, fake, _ := newTestClient(nil)

	flash := true
	require.NoError(t, c.SendCaptureImageCommand("high", &flash, "hub1"))

	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "floraSeven/command/hub/captureImage", calls[0].topic)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(calls[0].payload, &payload))
	assert.Equal(t, "high", payload["resolution"])
	assert.Equal(t, true, payload["flash"])
}

func TestSendReadNowCommand(t *testing.T) {
	c, fake, _ := newTestClient(nil)

	require.NoError(t, c.SendReadNowCommand("node1"))

	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "floraSeven/command/plant/node1/readNow", calls[0].topic)
}

func TestCommandsQueueWhileDisconnected(t *testing.T) {
	c, fake, _ := newTestClient(nil)
	fake.connected = false

	err := c.SendWaterCommand("ON", 5, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueued)
	assert.Empty(t, fake.calls())

	err = c.SendReadNowCommand("node1")
	assert.ErrorIs(t, err, ErrQueued)

	// Reconnect: the queue drains in order.
	fake.connected = true
	c.flushQueue()

	calls := fake.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "floraSeven/command/hub/pump", calls[0].topic)
	assert.Equal(t, "floraSeven/command/plant/node1/readNow", calls[1].topic)

	// Nothing left for a second flush.
	c.flushQueue()
	assert.Len(t, fake.calls(), 2)
}

func TestCommandQueueBounded(t *testing.T) {
	c, fake, _ := newTestClient(nil)
	fake.connected = false

	for i := 0; i < maxQueuedCommands; i++ {
		assert.ErrorIs(t, c.SendReadNowCommand("node1"), ErrQueued)
	}

	err := c.SendReadNowCommand("node1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errQueueFull)
}

func TestFlushQueueRequeuesOnFailure(t *testing.T) {
	c, fake, _ := newTestClient(nil)
	fake.connected = false

	require.ErrorIs(t, c.SendReadNowCommand("node1"), ErrQueued)
	require.ErrorIs(t, c.SendReadNowCommand("node2"), ErrQueued)

	fake.connected = true
	fake.publishErr = assert.AnError

	c.flushQueue()

	c.queueMu.Lock()
	remaining := len(c.queue)
	c.queueMu.Unlock()

	assert.Equal(t, 2, remaining)
}
