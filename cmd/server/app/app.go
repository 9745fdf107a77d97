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

// Package app boots the FloraSeven server: config load, dependency
// wiring, and lifecycle management.
package app

import (
	"context"
	"fmt"

	"github.com/floraseven/floraseven/pkg/activity"
	"github.com/floraseven/floraseven/pkg/alerts"
	"github.com/floraseven/floraseven/pkg/api"
	"github.com/floraseven/floraseven/pkg/config"
	"github.com/floraseven/floraseven/pkg/db"
	"github.com/floraseven/floraseven/pkg/lifecycle"
	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
	"github.com/floraseven/floraseven/pkg/monitor"
	"github.com/floraseven/floraseven/pkg/mqtt"
	"github.com/floraseven/floraseven/pkg/vision"
)

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run boots the server using the provided options. It blocks until the
// process receives a shutdown signal or the context is canceled.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := models.ServerConfig{
		Monitor:  models.DefaultMonitorConfig(),
		MQTT:     models.DefaultMQTTConfig(),
		Database: models.DefaultDatabaseConfig(),
	}
	if err := config.LoadAndValidate(ctx, opts.ConfigPath, &cfg); err != nil {
		return err
	}

	mainLogger, err := lifecycle.CreateComponentLogger("server", cfg.Logging)
	if err != nil {
		return err
	}

	ledger := activity.NewLedger()

	dbLogger, err := lifecycle.CreateComponentLogger("db", cfg.Logging)
	if err != nil {
		return err
	}

	store, err := db.New(ctx, &cfg.Database, dbLogger)
	if err != nil {
		return fmt.Errorf("failed to open status store: %w", err)
	}
	defer store.Close()

	sinks := buildSinks(&cfg, store, mainLogger)

	specs := cfg.Monitor.Components
	if len(specs) == 0 {
		specs = monitor.DefaultCatalog()
	}

	registry, err := monitor.NewRegistry(specs)
	if err != nil {
		return err
	}

	monLogger, err := lifecycle.CreateComponentLogger("monitor", cfg.Logging)
	if err != nil {
		return err
	}

	mon, err := monitor.New(cfg.Monitor, registry, ledger, store, sinks, monLogger)
	if err != nil {
		return err
	}

	mqttLogger, err := lifecycle.CreateComponentLogger("mqtt", cfg.Logging)
	if err != nil {
		return err
	}

	mqttClient := mqtt.New(cfg.MQTT, ledger, store, mqttLogger)

	apiLogger, err := lifecycle.CreateComponentLogger("api", cfg.Logging)
	if err != nil {
		return err
	}

	apiOptions := []func(server *api.APIServer){
		api.WithMonitor(mon),
		api.WithCommander(mqttClient),
		api.WithStore(store),
	}

	if cfg.Vision.Endpoint != "" {
		visionLogger, visionErr := lifecycle.CreateComponentLogger("vision", cfg.Logging)
		if visionErr != nil {
			return visionErr
		}

		classifier := vision.NewHTTPClassifier(cfg.Vision, visionLogger)
		apiOptions = append(apiOptions, api.WithClassifier(classifier, cfg.Vision.ConfidenceThreshold))
	}

	apiServer := api.NewAPIServer(cfg.HTTP, apiLogger, apiOptions...)

	mainLogger.Info().
		Str("listen_addr", cfg.HTTP.ListenAddr).
		Str("broker", cfg.MQTT.Broker).
		Int("components", registry.Len()).
		Msg("Starting FloraSeven server")

	return lifecycle.RunServer(ctx, &lifecycle.ServerOptions{
		Logger: mainLogger,
		Services: []lifecycle.Service{
			&monitorService{monitor: mon},
			&mqttService{client: mqttClient},
			&apiService{server: apiServer, logger: apiLogger},
			newPurgeService(store, mainLogger),
			&announceService{sinks: sinks, logger: mainLogger},
		},
	})
}

func buildSinks(cfg *models.ServerConfig, store db.Service, log logger.Logger) []alerts.AlertService {
	sinks := []alerts.AlertService{
		alerts.NewNotificationStore(store),
	}

	for _, webhook := range cfg.Webhooks {
		if webhook.Enabled {
			sinks = append(sinks, alerts.NewWebhookAlerter(webhook, log))
		}
	}

	if cfg.SMTP.Enabled() {
		sinks = append(sinks, alerts.NewSMTPAlerter(cfg.SMTP, log))
	}

	return sinks
}
