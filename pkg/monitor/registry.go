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
	"fmt"

	"github.com/floraseven/floraseven/pkg/models"
)

// Registry is the static catalog of monitored components. It is built once
// at startup and never mutated afterwards, so reads need no locking. All()
// preserves registration order, which fixes the order of per-tick events.
type Registry struct {
	order []string
	specs map[string]models.ComponentSpec
}

// NewRegistry validates the component list and builds the catalog.
// Duplicate ids, unknown parents, unknown types and non-positive intervals
// are configuration errors.
func NewRegistry(specs []models.ComponentSpec) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(specs)),
		specs: make(map[string]models.ComponentSpec, len(specs)),
	}

	for _, spec := range specs {
		if _, exists := r.specs[spec.ID]; exists {
			return nil, fmt.Errorf("%w: %q", errDuplicateID, spec.ID)
		}

		if !spec.Type.Valid() {
			return nil, fmt.Errorf("%w: %q for component %q", errUnknownType, spec.Type, spec.ID)
		}

		if spec.ExpectedInterval <= 0 {
			return nil, fmt.Errorf("%w: %d for component %q", errInvalidInterval, spec.ExpectedInterval, spec.ID)
		}

		r.order = append(r.order, spec.ID)
		r.specs[spec.ID] = spec
	}

	// Parents may be declared after their children; resolve in a second
	// pass.
	for _, spec := range r.specs {
		if spec.ParentID == "" {
			continue
		}

		if _, exists := r.specs[spec.ParentID]; !exists {
			return nil, fmt.Errorf("%w: %q referenced by %q", errUnknownParent, spec.ParentID, spec.ID)
		}
	}

	return r, nil
}

// DefaultCatalog returns the fixed production component set: the main hub,
// the plant node, the camera, and the sensors each bound to the node that
// carries them.
func DefaultCatalog() []models.ComponentSpec {
	return []models.ComponentSpec{
		{ID: "main_hub", Type: models.ComponentTypeHub, Name: "Main Hub", Critical: true, ExpectedInterval: 60, ActivityKeys: []string{"hub_node"}},
		{ID: "plant_node", Type: models.ComponentTypePlantNode, Name: "Plant Node", Critical: true, ExpectedInterval: 60},
		{ID: "camera", Type: models.ComponentTypeCamera, Name: "Camera", Critical: false, ExpectedInterval: 300},
		{ID: "moisture", Type: models.ComponentTypeSensor, Name: "Moisture Sensor", Critical: true, ExpectedInterval: 60, ParentID: "plant_node"},
		{ID: "temperature", Type: models.ComponentTypeSensor, Name: "Temperature Sensor", Critical: false, ExpectedInterval: 60, ParentID: "plant_node", ActivityKeys: []string{"temp_soil"}},
		{ID: "light", Type: models.ComponentTypeSensor, Name: "Light Sensor", Critical: false, ExpectedInterval: 60, ParentID: "plant_node"},
		{ID: "ec", Type: models.ComponentTypeSensor, Name: "EC Sensor", Critical: false, ExpectedInterval: 60, ParentID: "plant_node"},
		{ID: "ph", Type: models.ComponentTypeSensor, Name: "pH Sensor", Critical: false, ExpectedInterval: 60, ParentID: "main_hub"},
		{ID: "uv", Type: models.ComponentTypeSensor, Name: "UV Sensor", Critical: false, ExpectedInterval: 60, ParentID: "main_hub"},
	}
}

// All returns the component specs in registration order.
func (r *Registry) All() []models.ComponentSpec {
	out := make([]models.ComponentSpec, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.specs[id])
	}

	return out
}

// Get returns the spec for one component.
func (r *Registry) Get(id string) (models.ComponentSpec, bool) {
	spec, ok := r.specs[id]
	return spec, ok
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	return len(r.order)
}
