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
	"errors"
	"fmt"
)

var (
	errThresholdOrder   = errors.New("connection timeouts must satisfy warning < error < critical")
	errDuplicateID      = errors.New("duplicate component id")
	errUnknownParent    = errors.New("unknown parent component id")
	errUnknownType      = errors.New("unknown component type")
	errInvalidInterval  = errors.New("expected interval must be positive")
	ErrUnknownComponent = errors.New("unknown component id")
)

// recoveredError converts a recovered panic value into an error.
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("panic: %v", r)
}
