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

package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

func TestHTTPClassifierClassifyImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/data/images/plant_20250601.jpg", req["image_path"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Assessment{
			Label:      "healthy",
			Confidence: 0.93,
			Score:      93,
		})
	}))
	defer server.Close()

	classifier := NewHTTPClassifier(models.VisionConfig{Endpoint: server.URL}, logger.NewTestLogger())

	assessment, err := classifier.ClassifyImage(context.Background(), "/data/images/plant_20250601.jpg")
	require.NoError(t, err)

	assert.Equal(t, "healthy", assessment.Label)
	assert.Equal(t, 93, assessment.Score)
	assert.True(t, assessment.Conclusive(0.7))
	assert.False(t, assessment.Conclusive(0.95))
}

func TestHTTPClassifierServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	classifier := NewHTTPClassifier(models.VisionConfig{Endpoint: server.URL}, logger.NewTestLogger())

	_, err := classifier.ClassifyImage(context.Background(), "/data/images/x.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, errInferenceStatus)
}
