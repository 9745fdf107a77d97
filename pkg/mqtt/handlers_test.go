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
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/floraseven/floraseven/pkg/activity"
	"github.com/floraseven/floraseven/pkg/db"
	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

var testReceipt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type stubToken struct {
	err error
}

func (t *stubToken) Wait() bool                     { return true }
func (t *stubToken) WaitTimeout(time.Duration) bool { return true }
func (t *stubToken) Error() error                   { return t.err }

func (t *stubToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)

	return ch
}

type publishCall struct {
	topic    string
	retained bool
	payload  []byte
}

type fakePaho struct {
	mu         sync.Mutex
	connected  bool
	publishErr error
	published  []publishCall
	filters    map[string]byte
}

func (f *fakePaho) Connect() paho.Token { return &stubToken{} }

func (f *fakePaho) Disconnect(uint) {}

func (f *fakePaho) Publish(topic string, _ byte, retained bool, payload interface{}) paho.Token {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.publishErr != nil {
		return &stubToken{err: f.publishErr}
	}

	f.published = append(f.published, publishCall{
		topic:    topic,
		retained: retained,
		payload:  payload.([]byte),
	})

	return &stubToken{}
}

func (f *fakePaho) SubscribeMultiple(filters map[string]byte, _ paho.MessageHandler) paho.Token {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filters = filters

	return &stubToken{}
}

func (f *fakePaho) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.connected
}

func (f *fakePaho) calls() []publishCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]publishCall, len(f.published))
	copy(out, f.published)

	return out
}

func newTestClient(store db.Service) (*Client, *fakePaho, *activity.Ledger) {
	fake := &fakePaho{connected: true}
	ledger := activity.NewLedger()

	c := &Client{
		config: models.MQTTConfig{Broker: "tcp://localhost:1883", ClientID: "test", QoS: 1},
		ledger: ledger,
		store:  store,
		logger: logger.NewTestLogger(),
		client: fake,
		now:    func() time.Time { return testReceipt },
	}

	return c, fake, ledger
}

func recordedReadings(t *testing.T, ctrl *gomock.Controller) (*db.MockService, *[]models.SensorReading) {
	t.Helper()

	var readings []models.SensorReading

	store := db.NewMockService(ctrl)
	store.EXPECT().LogSensorReading(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reading *models.SensorReading) error {
			readings = append(readings, *reading)
			return nil
		}).AnyTimes()

	return store, &readings
}

func sensorTypes(readings []models.SensorReading) []string {
	types := make([]string, 0, len(readings))
	for _, r := range readings {
		types = append(types, r.SensorType)
	}

	return types
}

func TestOnMessagePlantData(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, readings := recordedReadings(t, ctrl)

	c, _, ledger := newTestClient(store)

	payload := []byte(`{
		"timestamp": 1748779200,
		"nodeId": "node1",
		"temp_soil_c": 21.5,
		"moisture_raw": 1830,
		"light_lux": 5400.2,
		"ec_voltage_rms": 0.42,
		"ec_comp_mS_cm": 1.8
	}`)

	c.OnMessage("floraSeven/plant/node1/data", payload)

	require.Len(t, *readings, 5)
	assert.ElementsMatch(t,
		[]string{"temp_soil", "moisture", "light_lux", "ec_raw", "ec_compensated"},
		sensorTypes(*readings))

	for _, r := range *readings {
		assert.Equal(t, "node1", r.NodeID)
		assert.Equal(t, time.Unix(1748779200, 0).UTC(), r.Timestamp)
	}

	_, ok := ledger.Get("plant_node_node1")
	assert.True(t, ok)
	_, ok = ledger.Get("mqtt_client")
	assert.True(t, ok)
}

func TestOnMessagePlantDataMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, readings := recordedReadings(t, ctrl)

	c, _, ledger := newTestClient(store)

	c.OnMessage("floraSeven/plant/node1/data", []byte(`{"nodeId": "node1", "temp_soil_c": 21.5}`))

	assert.Empty(t, *readings)

	_, ok := ledger.Get("plant_node_node1")
	assert.False(t, ok, "incomplete payload should not count as node activity")
	_, ok = ledger.Get("mqtt_client")
	assert.True(t, ok, "inbound traffic still counts as adapter activity")
}

func TestOnMessagePlantDataInvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, readings := recordedReadings(t, ctrl)

	c, _, _ := newTestClient(store)

	c.OnMessage("floraSeven/plant/node1/data", []byte(`{not json`))

	assert.Empty(t, *readings)
}

func TestOnMessageHubStatusReadings(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, readings := recordedReadings(t, ctrl)

	c, _, ledger := newTestClient(store)

	payload := []byte(`{
		"timestamp": 1748779200,
		"nodeId": "hub1",
		"ph_water": 6.4,
		"uv_ambient": 2.1,
		"pump_active": true,
		"temp_ambient": 24.3,
		"humidity": 51.0
	}`)

	c.OnMessage("floraSeven/hub/hub1/status", payload)

	require.Len(t, *readings, 5)
	assert.ElementsMatch(t,
		[]string{"ph_water", "uv_ambient", "pump_state", "temp_ambient", "humidity"},
		sensorTypes(*readings))

	for _, r := range *readings {
		if r.SensorType == "pump_state" {
			assert.Equal(t, 1.0, r.Value)
		}
	}

	_, ok := ledger.Get("hub_node_hub1")
	assert.True(t, ok)
}

func TestOnMessageHubStatusShortCircuits(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "ack", payload: `{"status": "ACK", "command_received": "pump"}`},
		{name: "info", payload: `{"status": "INFO", "message": "booted"}`},
		{name: "error", payload: `{"status": "ERROR", "message": "sensor fault"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store, readings := recordedReadings(t, ctrl)

			c, _, ledger := newTestClient(store)

			c.OnMessage("floraSeven/hub/hub1/status", []byte(tt.payload))

			assert.Empty(t, *readings)

			_, ok := ledger.Get("hub_node_hub1")
			assert.True(t, ok)
		})
	}
}

func TestOnMessageImageStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, readings := recordedReadings(t, ctrl)

	c, _, ledger := newTestClient(store)

	c.OnMessage("floraSeven/hub/hub1/cam/image_status", []byte(`{"status": "uploading", "image_size": 48213}`))
	c.OnMessage("floraSeven/hub/hub1/cam/image_status",
		[]byte(`{"timestamp": 1748779200, "success": true, "filename": "plant_20250601.jpg"}`))
	c.OnMessage("floraSeven/hub/hub1/cam/image_status",
		[]byte(`{"timestamp": 1748779200, "success": false, "error": "upload timeout"}`))

	assert.Empty(t, *readings, "image status messages carry no sensor readings")

	_, ok := ledger.Get("camera_hub1")
	assert.True(t, ok)
}

func TestOnMessageUnknownTopic(t *testing.T) {
	c, _, ledger := newTestClient(nil)

	c.OnMessage("floraSeven/other/thing", []byte(`{}`))

	_, ok := ledger.Get("mqtt_client")
	assert.True(t, ok)
	assert.Equal(t, 1, ledger.Len())
}

func TestParseTimestampFallback(t *testing.T) {
	c, _, _ := newTestClient(nil)

	assert.Equal(t, time.Unix(1748779200, 0).UTC(), c.parseTimestamp(float64(1748779200)))
	assert.Equal(t,
		time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		c.parseTimestamp("2025-06-01T10:30:00Z"))
	assert.Equal(t, testReceipt, c.parseTimestamp("yesterday-ish"))
	assert.Equal(t, testReceipt, c.parseTimestamp(nil))
}
