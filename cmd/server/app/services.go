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

package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/floraseven/floraseven/pkg/alerts"
	"github.com/floraseven/floraseven/pkg/api"
	"github.com/floraseven/floraseven/pkg/db"
	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
	"github.com/floraseven/floraseven/pkg/monitor"
	"github.com/floraseven/floraseven/pkg/mqtt"
)

// monitorService adapts the connection monitor to the lifecycle contract.
type monitorService struct {
	monitor *monitor.Monitor
}

func (s *monitorService) Start(ctx context.Context) error {
	s.monitor.Start(ctx)
	return nil
}

func (s *monitorService) Stop(_ context.Context) error {
	s.monitor.Stop()
	return nil
}

// mqttService adapts the broker client to the lifecycle contract.
type mqttService struct {
	client *mqtt.Client
}

func (s *mqttService) Start(_ context.Context) error {
	return s.client.Start()
}

func (s *mqttService) Stop(_ context.Context) error {
	s.client.Stop()
	return nil
}

// apiService runs the HTTP server in the background so that RunServer can
// supervise shutdown.
type apiService struct {
	server *api.APIServer
	logger logger.Logger
}

func (s *apiService) Start(_ context.Context) error {
	go func() {
		if err := s.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP API server error")
		}
	}()

	return nil
}

func (s *apiService) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

const purgeInterval = 24 * time.Hour

// purgeService removes expired rows from the store once a day.
type purgeService struct {
	store  db.Service
	logger logger.Logger
	stopCh chan struct{}
	wg     sync.WaitGroup
}

func newPurgeService(store db.Service, log logger.Logger) *purgeService {
	return &purgeService{
		store:  store,
		logger: log,
		stopCh: make(chan struct{}),
	}
}

func (s *purgeService) Start(ctx context.Context) error {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()

		s.purge(ctx)

		for {
			select {
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.purge(ctx)
			}
		}
	}()

	return nil
}

func (s *purgeService) Stop(_ context.Context) error {
	close(s.stopCh)
	s.wg.Wait()

	return nil
}

func (s *purgeService) purge(ctx context.Context) {
	if err := s.store.PurgeExpired(ctx, time.Now().UTC()); err != nil {
		s.logger.Error().Err(err).Msg("Failed to purge expired rows")
	}
}

// announceService records server start and stop in the notification feed
// so the mobile app can tell a server restart apart from a silent gap.
type announceService struct {
	sinks  []alerts.AlertService
	logger logger.Logger
}

func (s *announceService) Start(ctx context.Context) error {
	s.send(ctx, "Server Started", "FloraSeven server is online")
	return nil
}

func (s *announceService) Stop(ctx context.Context) error {
	s.send(ctx, "Server Stopping", "FloraSeven server is shutting down")
	return nil
}

func (s *announceService) send(ctx context.Context, title, message string) {
	alert := &alerts.Alert{
		ComponentID: "server",
		Severity:    models.SeverityInfo,
		Title:       title,
		Message:     message,
		Timestamp:   time.Now().UTC(),
	}

	for _, sink := range s.sinks {
		if err := sink.Alert(ctx, alert); err != nil {
			s.logger.Error().Err(err).Str("title", title).Msg("Failed to deliver server notification")
		}
	}
}
