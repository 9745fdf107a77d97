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

package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floraseven/floraseven/pkg/models"
)

func TestNewRegistryDefaultCatalog(t *testing.T) {
	r, err := NewRegistry(DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, 9, r.Len())

	hub, ok := r.Get("main_hub")
	require.True(t, ok)
	assert.Equal(t, models.ComponentTypeHub, hub.Type)
	assert.True(t, hub.Critical)

	moisture, ok := r.Get("moisture")
	require.True(t, ok)
	assert.Equal(t, "plant_node", moisture.ParentID)
	assert.True(t, moisture.Critical)

	_, ok = r.Get("nonexistent")
	assert.False(t, ok)
}

func TestNewRegistryPreservesOrder(t *testing.T) {
	specs := []models.ComponentSpec{
		{ID: "b", Type: models.ComponentTypeHub, Name: "B", ExpectedInterval: 60},
		{ID: "a", Type: models.ComponentTypeCamera, Name: "A", ExpectedInterval: 60},
		{ID: "c", Type: models.ComponentTypePlantNode, Name: "C", ExpectedInterval: 60},
	}

	r, err := NewRegistry(specs)
	require.NoError(t, err)

	ids := make([]string, 0, r.Len())
	for _, spec := range r.All() {
		ids = append(ids, spec.ID)
	}

	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name    string
		specs   []models.ComponentSpec
		wantErr error
	}{
		{
			name: "duplicate id",
			specs: []models.ComponentSpec{
				{ID: "hub", Type: models.ComponentTypeHub, Name: "Hub", ExpectedInterval: 60},
				{ID: "hub", Type: models.ComponentTypeHub, Name: "Hub again", ExpectedInterval: 60},
			},
			wantErr: errDuplicateID,
		},
		{
			name: "unknown parent",
			specs: []models.ComponentSpec{
				{ID: "moisture", Type: models.ComponentTypeSensor, Name: "Moisture", ExpectedInterval: 60, ParentID: "ghost"},
			},
			wantErr: errUnknownParent,
		},
		{
			name: "unknown type",
			specs: []models.ComponentSpec{
				{ID: "thing", Type: "widget", Name: "Thing", ExpectedInterval: 60},
			},
			wantErr: errUnknownType,
		},
		{
			name: "non-positive interval",
			specs: []models.ComponentSpec{
				{ID: "hub", Type: models.ComponentTypeHub, Name: "Hub"},
			},
			wantErr: errInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.specs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewRegistryParentDeclaredAfterChild(t *testing.T) {
	specs := []models.ComponentSpec{
		{ID: "moisture", Type: models.ComponentTypeSensor, Name: "Moisture", ExpectedInterval: 60, ParentID: "plant_node"},
		{ID: "plant_node", Type: models.ComponentTypePlantNode, Name: "Plant Node", ExpectedInterval: 60},
	}

	_, err := NewRegistry(specs)
	require.NoError(t, err)
}
