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

package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/floraseven/floraseven/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// Service is a long-running component managed by RunServer. Start must
// return promptly after the service is running; Stop blocks until the
// service has shut down or ctx expires.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// ServerOptions bundles the services run by RunServer.
type ServerOptions struct {
	Services        []Service
	Logger          logger.Logger
	ShutdownTimeout time.Duration
}

// RunServer starts every service, then blocks until the context is
// canceled or a SIGINT/SIGTERM arrives. Services are stopped in reverse
// start order so that downstream consumers drain before their producers.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	log := opts.Logger

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	started := make([]Service, 0, len(opts.Services))

	for _, svc := range opts.Services {
		if err := svc.Start(ctx); err != nil {
			stopServices(log, started, opts.shutdownTimeout())
			return err
		}

		started = append(started, svc)
	}

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case <-ctx.Done():
		log.Info().Msg("Context canceled, shutting down")
	}

	stopServices(log, started, opts.shutdownTimeout())

	return nil
}

func (o *ServerOptions) shutdownTimeout() time.Duration {
	if o.ShutdownTimeout > 0 {
		return o.ShutdownTimeout
	}

	return defaultShutdownTimeout
}

func stopServices(log logger.Logger, services []Service, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Stop(ctx); err != nil {
			log.Error().Err(err).Msg("Error stopping service")
		}
	}
}
