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

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Instance implements the Logger interface without global state.
type Instance struct {
	logger zerolog.Logger
}

// New creates a logger instance from the provided configuration.
func New(config *Config) (*Instance, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var output io.Writer = os.Stdout
	if config.Output == "stderr" {
		output = os.Stderr
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Instance{logger: zlog}, nil
}

// NewComponent creates a logger instance scoped to one component.
func NewComponent(config *Config, component string) (*Instance, error) {
	l, err := New(config)
	if err != nil {
		return nil, err
	}

	l.logger = l.logger.With().Str("component", component).Logger()

	return l, nil
}

func (l *Instance) Trace() *zerolog.Event { return l.logger.Trace() }
func (l *Instance) Debug() *zerolog.Event { return l.logger.Debug() }
func (l *Instance) Info() *zerolog.Event  { return l.logger.Info() }
func (l *Instance) Warn() *zerolog.Event  { return l.logger.Warn() }
func (l *Instance) Error() *zerolog.Event { return l.logger.Error() }
func (l *Instance) Fatal() *zerolog.Event { return l.logger.Fatal() }
func (l *Instance) Panic() *zerolog.Event { return l.logger.Panic() }
func (l *Instance) With() zerolog.Context { return l.logger.With() }

func (l *Instance) WithComponent(component string) zerolog.Logger {
	return l.logger.With().Str("component", component).Logger()
}

func (l *Instance) SetLevel(level zerolog.Level) {
	l.logger = l.logger.Level(level)
}

func (l *Instance) SetDebug(debug bool) {
	if debug {
		l.SetLevel(zerolog.DebugLevel)
	} else {
		l.SetLevel(zerolog.InfoLevel)
	}
}
