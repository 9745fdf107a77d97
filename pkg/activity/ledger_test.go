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

package activity

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRecordAndGet(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()

	_, ok := ledger.Get("plant_node_node1")
	require.False(t, ok)

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ledger.Record("plant_node_node1", ts)

	got, ok := ledger.Get("plant_node_node1")
	require.True(t, ok)
	assert.Equal(t, ts, got)
}

func TestLedgerLastWriteWins(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	later := time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC)
	earlier := later.Add(-time.Minute)

	ledger.Record("hub_node_hub1", later)
	ledger.Record("hub_node_hub1", earlier)

	got, ok := ledger.Get("hub_node_hub1")
	require.True(t, ok)
	assert.Equal(t, earlier, got, "an earlier timestamp must still overwrite the stored value")
}

func TestLedgerSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ledger.Record("moisture", ts)

	snap := ledger.Snapshot()
	require.Len(t, snap, 1)

	snap["moisture"] = ts.Add(time.Hour)

	got, ok := ledger.Get("moisture")
	require.True(t, ok)
	assert.Equal(t, ts, got, "mutating the snapshot must not affect the ledger")
}

func TestLedgerConcurrentWriters(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				ledger.RecordNow("camera_hub1")
			}
		}()
	}

	wg.Wait()

	_, ok := ledger.Get("camera_hub1")
	assert.True(t, ok)
	assert.Equal(t, 1, ledger.Len())
}
