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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

var (
	errSchemaInit     = errors.New("failed to initialize schema")
	errFailedToQuery  = errors.New("failed to query database")
	errFailedToInsert = errors.New("failed to insert row")
	// ErrNotFound is returned when a row lookup matches nothing.
	ErrNotFound = errors.New("not found")
)

const defaultListLimit = 50

// Store implements Service on Postgres.
type Store struct {
	pool   *pgxpool.Pool
	cfg    models.DatabaseConfig
	logger logger.Logger
}

// New connects to Postgres, bootstraps the schema, and returns the store.
func New(ctx context.Context, cfg *models.DatabaseConfig, log logger.Logger) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &Store{
		pool:   pool,
		cfg:    *cfg,
		logger: log,
	}

	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// NewWithPool wraps an existing pool; used by tests.
func NewWithPool(pool *pgxpool.Pool, cfg models.DatabaseConfig, log logger.Logger) *Store {
	return &Store{pool: pool, cfg: cfg, logger: log}
}

func (s *Store) Close() {
	s.pool.Close()
}

// PersistSnapshot stores one full-status snapshot as a JSONB document.
func (s *Store) PersistSnapshot(ctx context.Context, snapshot *models.StatusSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}

	data, err := json.Marshal(snapshot.Components)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO connection_status (id, timestamp, status_data) VALUES ($1, $2, $3)`,
		snapshot.ID, snapshot.Timestamp, data)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInsert, err)
	}

	return nil
}

func (s *Store) PersistEvent(ctx context.Context, event *models.ConnectionEvent) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO connection_events
			(timestamp, component_id, component_name, component_type, previous_state, new_state, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.Timestamp, event.ComponentID, event.ComponentName, event.ComponentType,
		event.PreviousState, event.NewState, event.Message)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInsert, err)
	}

	return nil
}

func (s *Store) ReadEvents(ctx context.Context, filter EventFilter) ([]models.ConnectionEvent, error) {
	query := `SELECT timestamp, component_id, component_name, component_type,
			previous_state, new_state, message
		FROM connection_events WHERE 1=1`

	args := make([]interface{}, 0, 3)

	if filter.ComponentID != "" {
		args = append(args, filter.ComponentID)
		query += fmt.Sprintf(" AND component_id = $%d", len(args))
	}

	if !filter.Since.IsZero() {
		args = append(args, filter.Since)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
	}
	defer rows.Close()

	var events []models.ConnectionEvent

	for rows.Next() {
		var e models.ConnectionEvent

		if err := rows.Scan(&e.Timestamp, &e.ComponentID, &e.ComponentName, &e.ComponentType,
			&e.PreviousState, &e.NewState, &e.Message); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *Store) ReadSnapshots(ctx context.Context, filter SnapshotFilter) ([]models.StatusSnapshot, error) {
	query := `SELECT id, timestamp, status_data FROM connection_status WHERE 1=1`

	args := make([]interface{}, 0, 2)

	if !filter.Since.IsZero() {
		args = append(args, filter.Since)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
	}
	defer rows.Close()

	var snapshots []models.StatusSnapshot

	for rows.Next() {
		var (
			snap models.StatusSnapshot
			data []byte
		)

		if err := rows.Scan(&snap.ID, &snap.Timestamp, &data); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
		}

		if err := json.Unmarshal(data, &snap.Components); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", snap.ID, err)
		}

		snapshots = append(snapshots, snap)
	}

	return snapshots, rows.Err()
}

func (s *Store) AddNotification(ctx context.Context, n *models.Notification) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO notifications (timestamp, component_id, severity, message, read, action_taken)
		VALUES ($1, $2, $3, $4, FALSE, FALSE) RETURNING id`,
		n.Timestamp, n.ComponentID, n.Severity, n.Message).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInsert, err)
	}

	return nil
}

func (s *Store) ListNotifications(ctx context.Context, unreadOnly bool, limit int) ([]models.Notification, error) {
	query := `SELECT id, timestamp, component_id, severity, message, read, action_taken
		FROM notifications`

	if unreadOnly {
		query += ` WHERE read = FALSE`
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	query += ` ORDER BY timestamp DESC LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
	}
	defer rows.Close()

	var notifications []models.Notification

	for rows.Next() {
		var n models.Notification

		if err := rows.Scan(&n.ID, &n.Timestamp, &n.ComponentID, &n.Severity,
			&n.Message, &n.Read, &n.ActionTaken); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (s *Store) MarkNotificationRead(ctx context.Context, id int64) error {
	return s.markNotification(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
}

func (s *Store) MarkNotificationActioned(ctx context.Context, id int64) error {
	return s.markNotification(ctx, `UPDATE notifications SET action_taken = TRUE WHERE id = $1`, id)
}

func (s *Store) markNotification(ctx context.Context, query string, id int64) error {
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToQuery, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: notification %d", ErrNotFound, id)
	}

	return nil
}

func (s *Store) LogSensorReading(ctx context.Context, reading *models.SensorReading) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sensor_readings (timestamp, node_id, sensor_type, value)
		VALUES ($1, $2, $3, $4)`,
		reading.Timestamp, reading.NodeID, reading.SensorType, reading.Value)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInsert, err)
	}

	return nil
}

func (s *Store) GetSensorHistory(
	ctx context.Context, nodeID, sensorType string, start, end time.Time) ([]models.SensorReading, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT timestamp, node_id, sensor_type, value FROM sensor_readings
		WHERE node_id = $1 AND sensor_type = $2 AND timestamp BETWEEN $3 AND $4
		ORDER BY timestamp`,
		nodeID, sensorType, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
	}
	defer rows.Close()

	var readings []models.SensorReading

	for rows.Next() {
		var r models.SensorReading

		if err := rows.Scan(&r.Timestamp, &r.NodeID, &r.SensorType, &r.Value); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
		}

		readings = append(readings, r)
	}

	return readings, rows.Err()
}

// PurgeExpired deletes rows older than each table's retention window.
func (s *Store) PurgeExpired(ctx context.Context, now time.Time) error {
	purges := []struct {
		table  string
		column string
		days   int
	}{
		{"connection_status", "timestamp", s.cfg.ConnectionRetentionDays},
		{"connection_events", "timestamp", s.cfg.ConnectionRetentionDays},
		{"notifications", "timestamp", s.cfg.NotificationRetentionDays},
		{"sensor_readings", "timestamp", s.cfg.SensorRetentionDays},
	}

	for _, p := range purges {
		if p.days <= 0 {
			continue
		}

		cutoff := now.AddDate(0, 0, -p.days)

		tag, err := s.pool.Exec(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE %s < $1`, p.table, p.column), cutoff)
		if err != nil {
			return fmt.Errorf("failed to purge %s: %w", p.table, err)
		}

		if tag.RowsAffected() > 0 {
			s.logger.Info().
				Str("table", p.table).
				Int64("rows", tag.RowsAffected()).
				Msg("Purged expired rows")
		}
	}

	return nil
}
