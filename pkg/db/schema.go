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

package db

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS connection_status (
		id TEXT PRIMARY KEY,
		timestamp TIMESTAMPTZ NOT NULL,
		status_data JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_connection_status_timestamp
		ON connection_status (timestamp)`,
	`CREATE TABLE IF NOT EXISTS connection_events (
		id BIGSERIAL PRIMARY KEY,
		timestamp TIMESTAMPTZ NOT NULL,
		component_id TEXT NOT NULL,
		component_name TEXT NOT NULL,
		component_type TEXT NOT NULL,
		previous_state TEXT NOT NULL,
		new_state TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_connection_events_component
		ON connection_events (component_id, timestamp)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		timestamp TIMESTAMPTZ NOT NULL,
		component_id TEXT NOT NULL,
		severity TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		action_taken BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS sensor_readings (
		id BIGSERIAL PRIMARY KEY,
		timestamp TIMESTAMPTZ NOT NULL,
		node_id TEXT NOT NULL,
		sensor_type TEXT NOT NULL,
		value DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sensor_readings_lookup
		ON sensor_readings (node_id, sensor_type, timestamp)`,
}

func (s *Store) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", errSchemaInit, err)
		}
	}

	return nil
}
