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

// Package mqtt ingests device telemetry from the broker and publishes
// commands back to the nodes. Every inbound message records activity in
// the ledger; sensor payloads are additionally forwarded to the status
// store. Commands issued while disconnected are queued in memory and
// flushed on reconnect.
package mqtt

import (
	"crypto/tls"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/floraseven/floraseven/pkg/activity"
	"github.com/floraseven/floraseven/pkg/db"
	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

// Topics. The + wildcard is the node id.
const (
	topicPlantData      = "floraSeven/plant/+/data"
	topicHubStatus      = "floraSeven/hub/+/status"
	topicHubImageStatus = "floraSeven/hub/+/cam/image_status"
	topicCommandPump    = "floraSeven/command/hub/pump"
	topicCommandCapture = "floraSeven/command/hub/captureImage"
	topicCommandReadNow = "floraSeven/command/plant/%s/readNow"
	topicServerStatus   = "floraSeven/server/status"
)

const (
	defaultKeepAlive      = 60 * time.Second
	defaultConnectTimeout = 10 * time.Second
	defaultReconnectMax   = 2 * time.Minute
	disconnectQuiesceMs   = 250
)

// pahoClient is the subset of the paho client the adapter uses.
type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	SubscribeMultiple(filters map[string]byte, callback paho.MessageHandler) paho.Token
	IsConnected() bool
}

// Client is the MQTT ingestion adapter.
type Client struct {
	config models.MQTTConfig
	ledger *activity.Ledger
	store  db.Service
	logger logger.Logger
	client pahoClient
	now    func() time.Time

	queueMu sync.Mutex
	queue   []queuedMessage
}

type queuedMessage struct {
	topic    string
	payload  []byte
	retained bool
}

// New creates the adapter and configures the underlying paho client with
// auto-reconnect and a retained offline will on the server status topic.
func New(cfg models.MQTTConfig, ledger *activity.Ledger, store db.Service, log logger.Logger) *Client {
	c := &Client{
		config: cfg,
		ledger: ledger,
		store:  store,
		logger: log,
		now:    time.Now,
	}

	keepAlive := defaultKeepAlive
	if cfg.KeepAlive > 0 {
		keepAlive = time.Duration(cfg.KeepAlive) * time.Second
	}

	reconnectMax := defaultReconnectMax
	if cfg.ReconnectMaxWait > 0 {
		reconnectMax = time.Duration(cfg.ReconnectMaxWait) * time.Second
	}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetKeepAlive(keepAlive).
		SetConnectTimeout(defaultConnectTimeout).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(reconnectMax).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(c.onConnectionLost).
		SetWill(topicServerStatus, "offline", cfg.QoS, true)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	if cfg.UseTLS {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	c.client = paho.NewClient(opts)

	return c
}

// Start connects to the broker. Subscriptions happen in the connect
// handler so they are re-established after every reconnect.
func (c *Client) Start() error {
	token := c.client.Connect()
	token.Wait()

	if err := token.Error(); err != nil {
		return err
	}

	c.logger.Info().Str("broker", c.config.Broker).Msg("Connected to MQTT broker")

	return nil
}

// Stop announces the server offline and disconnects.
func (c *Client) Stop() {
	if c.client.IsConnected() {
		token := c.client.Publish(topicServerStatus, c.config.QoS, true, []byte("offline"))
		token.Wait()
	}

	c.client.Disconnect(disconnectQuiesceMs)
	c.logger.Info().Msg("Disconnected from MQTT broker")
}

func (c *Client) onConnect(_ paho.Client) {
	filters := map[string]byte{
		topicPlantData:      c.config.QoS,
		topicHubStatus:      c.config.QoS,
		topicHubImageStatus: c.config.QoS,
	}

	token := c.client.SubscribeMultiple(filters, func(_ paho.Client, msg paho.Message) {
		c.OnMessage(msg.Topic(), msg.Payload())
	})
	token.Wait()

	if err := token.Error(); err != nil {
		c.logger.Error().Err(err).Msg("Failed to subscribe to MQTT topics")
		return
	}

	for topic := range filters {
		c.logger.Info().Str("topic", topic).Uint8("qos", c.config.QoS).Msg("Subscribed to topic")
	}

	statusToken := c.client.Publish(topicServerStatus, c.config.QoS, true, []byte("online"))
	statusToken.Wait()

	c.flushQueue()
}

func (c *Client) onConnectionLost(_ paho.Client, err error) {
	c.logger.Warn().Err(err).Msg("Lost connection to MQTT broker")
}
