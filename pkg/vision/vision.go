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

// Package vision talks to the external visual-health inference service.
// Model training and serving live outside this repository; the server only
// submits plant images and applies the confidence gate.
package vision

//go:generate mockgen -destination=mock_vision.go -package=vision github.com/floraseven/floraseven/pkg/vision Classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

const defaultTimeout = 30 * time.Second

// Assessment is the classifier's verdict on one plant image. Score is a
// 0-100 health score derived from the label and confidence.
type Assessment struct {
	Label      string  `json:"health_label"`
	Confidence float64 `json:"confidence"`
	Score      int     `json:"health_score"`
}

// Conclusive reports whether the classifier was confident enough for the
// result to be acted on.
func (a *Assessment) Conclusive(threshold float64) bool {
	return a.Confidence >= threshold
}

// Classifier produces a visual-health assessment for a stored plant image.
type Classifier interface {
	ClassifyImage(ctx context.Context, imagePath string) (*Assessment, error)
}

// HTTPClassifier submits images to a configured inference endpoint.
type HTTPClassifier struct {
	config models.VisionConfig
	client *http.Client
	logger logger.Logger
}

// NewHTTPClassifier creates a classifier client from the vision config.
func NewHTTPClassifier(cfg models.VisionConfig, log logger.Logger) *HTTPClassifier {
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &HTTPClassifier{
		config: cfg,
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

// ClassifyImage implements Classifier.
func (c *HTTPClassifier) ClassifyImage(ctx context.Context, imagePath string) (*Assessment, error) {
	body, err := json.Marshal(map[string]string{"image_path": imagePath})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create classify request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach inference service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errInferenceStatus, resp.StatusCode)
	}

	var assessment Assessment
	if err := json.NewDecoder(resp.Body).Decode(&assessment); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}

	c.logger.Info().
		Str("label", assessment.Label).
		Int("score", assessment.Score).
		Float64("confidence", assessment.Confidence).
		Msg("Image classified")

	return &assessment, nil
}
