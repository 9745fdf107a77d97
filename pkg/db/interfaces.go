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

// Package db persists status snapshots, connection events, notifications,
// and sensor readings. The monitor treats every write as best-effort
// durability: a persistence failure never rolls back or blocks the
// in-memory state transition that triggered it.
package db

//go:generate mockgen -destination=mock_db.go -package=db github.com/floraseven/floraseven/pkg/db Service

import (
	"context"
	"time"

	"github.com/floraseven/floraseven/pkg/models"
)

// EventFilter narrows ReadEvents results. Zero values mean no constraint.
type EventFilter struct {
	ComponentID string
	Since       time.Time
	Limit       int
}

// SnapshotFilter narrows ReadSnapshots results.
type SnapshotFilter struct {
	Since time.Time
	Limit int
}

// Service is the persistence contract consumed by the monitor, the
// ingestion adapter, and the API layer.
type Service interface {
	// Snapshot and event operations.

	PersistSnapshot(ctx context.Context, snapshot *models.StatusSnapshot) error
	PersistEvent(ctx context.Context, event *models.ConnectionEvent) error
	ReadEvents(ctx context.Context, filter EventFilter) ([]models.ConnectionEvent, error)
	ReadSnapshots(ctx context.Context, filter SnapshotFilter) ([]models.StatusSnapshot, error)

	// Notification operations.

	AddNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkNotificationActioned(ctx context.Context, id int64) error

	// Sensor operations.

	LogSensorReading(ctx context.Context, reading *models.SensorReading) error
	GetSensorHistory(ctx context.Context, nodeID, sensorType string, start, end time.Time) ([]models.SensorReading, error)

	// Maintenance operations.

	PurgeExpired(ctx context.Context, now time.Time) error
	Close()
}
