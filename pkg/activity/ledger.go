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

// Package activity tracks the last-seen timestamp of every component. The
// ledger is the raw signal all connection-health classification derives
// from.
package activity

import (
	"sync"
	"time"
)

// Ledger is a thread-safe map of component id to last-seen timestamp. It
// carries its own lock so ingestion writers never contend with the
// monitor's tick processing.
type Ledger struct {
	mu       sync.RWMutex
	lastSeen map[string]time.Time
	now      func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Record stores ts as the last-seen timestamp for the component,
// overwriting any prior value. Writes are last-write-wins: an earlier
// timestamp than the stored one is accepted as-is, since staleness is
// self-correcting on the next real update.
func (l *Ledger) Record(componentID string, ts time.Time) {
	l.mu.Lock()
	l.lastSeen[componentID] = ts
	l.mu.Unlock()
}

// RecordNow records activity for the component at the current time.
func (l *Ledger) RecordNow(componentID string) {
	l.Record(componentID, l.now())
}

// Get returns the last-seen timestamp for the component, if any.
func (l *Ledger) Get(componentID string) (time.Time, bool) {
	l.mu.RLock()
	ts, ok := l.lastSeen[componentID]
	l.mu.RUnlock()

	return ts, ok
}

// Snapshot returns a copy of the ledger for a consistent pass over all
// components.
func (l *Ledger) Snapshot() map[string]time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]time.Time, len(l.lastSeen))
	for id, ts := range l.lastSeen {
		out[id] = ts
	}

	return out
}

// Len returns the number of components with recorded activity.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.lastSeen)
}
