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
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

// SMTPAlerter sends email alerts for error and critical severities. Lower
// severities are delivered by the notification store only.
type SMTPAlerter struct {
	config models.SMTPConfig
	logger logger.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPAlerter creates an email sink from the SMTP configuration.
func NewSMTPAlerter(config models.SMTPConfig, log logger.Logger) *SMTPAlerter {
	return &SMTPAlerter{
		config: config,
		logger: log,
		send:   smtp.SendMail,
	}
}

// Alert implements AlertService.
func (s *SMTPAlerter) Alert(_ context.Context, alert *Alert) error {
	if !s.config.Enabled() {
		return nil
	}

	if alert.Severity != models.SeverityError && alert.Severity != models.SeverityCritical {
		return nil
	}

	subject := fmt.Sprintf("FloraSeven %s Alert: %s",
		strings.ToUpper(string(alert.Severity)), alert.Title)
	body := s.buildBody(alert)

	var msg strings.Builder

	msg.WriteString("From: " + s.config.From + "\r\n")
	msg.WriteString("To: " + strings.Join(s.config.Recipients, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.config.Server, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Server)

	if err := s.send(addr, auth, s.config.From, s.config.Recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("%w: %w", errSMTPSend, err)
	}

	s.logger.Info().
		Str("component_id", alert.ComponentID).
		Str("severity", string(alert.Severity)).
		Msg("Sent email alert")

	return nil
}

func (s *SMTPAlerter) buildBody(alert *Alert) string {
	var b strings.Builder

	b.WriteString("<html><body>")
	b.WriteString("<h2>FloraSeven Component Status Alert</h2>")
	b.WriteString("<p>This is an automated alert from your FloraSeven plant monitoring system.</p>")
	b.WriteString(fmt.Sprintf("<p><strong>Component:</strong> %s</p>", alert.ComponentID))
	b.WriteString(fmt.Sprintf("<p><strong>Status:</strong> %s</p>", strings.ToUpper(string(alert.Severity))))
	b.WriteString(fmt.Sprintf("<p><strong>Message:</strong> %s</p>", alert.Message))
	b.WriteString(fmt.Sprintf("<p><strong>Timestamp:</strong> %s</p>", alert.Timestamp.Format(time.RFC3339)))
	b.WriteString("<hr><p>Please check your FloraSeven system for more details.</p>")
	b.WriteString("</body></html>")

	return b.String()
}
