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

// Package config loads the FloraSeven server's JSON configuration file
// and validates it before any service starts.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
)

var errInvalidConfigPtr = errors.New("config must be a non-nil pointer")

// Validator allows configuration structs to validate themselves after
// loading. Validation failures are fatal at startup.
type Validator interface {
	Validate() error
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// LoadAndValidate reads the JSON file at path into dst and runs
// validation. dst is typically a *models.ServerConfig pre-seeded with
// defaults, so absent keys keep their default values.
func LoadAndValidate(_ context.Context, path string, dst interface{}) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errInvalidConfigPtr
	}

	if err := loadFile(path, dst); err != nil {
		return err
	}

	if err := ValidateConfig(dst); err != nil {
		return fmt.Errorf("invalid configuration in '%s': %w", path, err)
	}

	return nil
}

func loadFile(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return nil
}
