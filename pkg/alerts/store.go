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

package alerts

import (
	"context"

	"github.com/floraseven/floraseven/pkg/db"
	"github.com/floraseven/floraseven/pkg/models"
)

// NotificationStore persists alerts as notifications for the mobile app to
// retrieve.
type NotificationStore struct {
	store db.Service
}

// NewNotificationStore creates the store-backed sink.
func NewNotificationStore(store db.Service) *NotificationStore {
	return &NotificationStore{store: store}
}

// Alert implements AlertService.
func (n *NotificationStore) Alert(ctx context.Context, alert *Alert) error {
	return n.store.AddNotification(ctx, &models.Notification{
		Timestamp:   alert.Timestamp,
		ComponentID: alert.ComponentID,
		Severity:    alert.Severity,
		Message:     alert.Message,
	})
}
