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

// Package monitor implements connection-health tracking for all registered
// FloraSeven components. A single tick loop reclassifies every component
// from the activity ledger, records transitions, and drives the
// notification policy. Ingestion writers touch only the ledger; the
// monitor's own lock is never held during storage I/O.
package monitor

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/floraseven/floraseven/pkg/activity"
	"github.com/floraseven/floraseven/pkg/alerts"
	"github.com/floraseven/floraseven/pkg/db"
	"github.com/floraseven/floraseven/pkg/logger"
	"github.com/floraseven/floraseven/pkg/models"
)

const uptimeWindow = 24 * time.Hour

type lifecycleState int

const (
	lifecycleStopped lifecycleState = iota
	lifecycleActive
	lifecyclePaused
)

// componentState is the live record for one registered component. It is
// only read or written under the monitor's lock.
type componentState struct {
	spec                models.ComponentSpec
	state               models.ConnectionState
	message             string
	lastSeen            *time.Time
	consecutiveFailures int
	uptimePercentage    float64
	history             []models.HistoryEntry
}

// Monitor is the connection-health state machine. Construct with New,
// drive with Start/Stop/Pause/Resume, and query through the read-only
// accessors.
type Monitor struct {
	config     models.MonitorConfig
	thresholds Thresholds
	registry   *Registry
	ledger     *activity.Ledger
	store      db.Service
	sinks      []alerts.AlertService
	logger     logger.Logger
	clock      Clock

	mu           sync.RWMutex
	components   map[string]*componentState
	events       []models.ConnectionEvent
	lastNotified map[string]time.Time

	cbMu      sync.Mutex
	callbacks []func(models.ConnectionEvent)

	runMu     sync.Mutex
	lifecycle lifecycleState
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// New creates a monitor over the given registry. The store and sinks are
// best-effort collaborators; a nil store disables persistence.
func New(
	cfg models.MonitorConfig,
	registry *Registry,
	ledger *activity.Ledger,
	store db.Service,
	sinks []alerts.AlertService,
	log logger.Logger,
) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Monitor{
		config:       cfg,
		thresholds:   ThresholdsFromConfig(&cfg),
		registry:     registry,
		ledger:       ledger,
		store:        store,
		sinks:        sinks,
		logger:       log,
		clock:        realClock{},
		components:   make(map[string]*componentState, registry.Len()),
		lastNotified: make(map[string]time.Time),
	}

	for _, spec := range registry.All() {
		m.components[spec.ID] = &componentState{
			spec:    spec,
			state:   models.StateUnknown,
			message: "Not yet connected",
		}
	}

	log.Info().
		Int("components", registry.Len()).
		Int("check_interval_seconds", cfg.CheckInterval).
		Msg("Connection monitor initialized")

	return m, nil
}

// Start launches the tick loop. Returns false if the monitor is already
// running.
func (m *Monitor) Start(ctx context.Context) bool {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if m.lifecycle != lifecycleStopped {
		m.logger.Warn().Msg("Connection monitor is already running")
		return false
	}

	m.lifecycle = lifecycleActive
	m.stopCh = make(chan struct{})

	m.wg.Add(1)

	go m.run(ctx, m.stopCh)

	m.logger.Info().Msg("Connection monitor started")

	return true
}

// Stop terminates the tick loop and waits for it to exit, so no tick runs
// after Stop returns. Returns false if the monitor was not running.
func (m *Monitor) Stop() bool {
	m.runMu.Lock()

	if m.lifecycle == lifecycleStopped {
		m.runMu.Unlock()
		m.logger.Warn().Msg("Connection monitor is not running")

		return false
	}

	m.lifecycle = lifecycleStopped
	close(m.stopCh)
	m.runMu.Unlock()

	m.wg.Wait()

	m.logger.Info().Msg("Connection monitor stopped")

	return true
}

// Pause suspends checks without stopping the loop. Returns false unless the
// monitor is active.
func (m *Monitor) Pause() bool {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if m.lifecycle != lifecycleActive {
		m.logger.Warn().Msg("Connection monitor is not active")
		return false
	}

	m.lifecycle = lifecyclePaused
	m.logger.Info().Msg("Connection monitor paused")

	return true
}

// Resume restarts checks after Pause. Returns false unless the monitor is
// paused.
func (m *Monitor) Resume() bool {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if m.lifecycle != lifecyclePaused {
		m.logger.Warn().Msg("Connection monitor is not paused")
		return false
	}

	m.lifecycle = lifecycleActive
	m.logger.Info().Msg("Connection monitor resumed")

	return true
}

// RegisterEventCallback adds a function invoked on every connection event.
// Callbacks run outside the monitor lock; a panicking callback is logged
// and does not affect the others.
func (m *Monitor) RegisterEventCallback(cb func(models.ConnectionEvent)) {
	m.cbMu.Lock()
	defer m.cbMu.Unlock()

	m.callbacks = append(m.callbacks, cb)
}

func (m *Monitor) run(ctx context.Context, stop <-chan struct{}) {
	defer m.wg.Done()

	ticker := m.clock.Ticker(m.config.CheckIntervalDuration())
	defer ticker.Stop()

	m.logger.Info().Msg("Connection monitoring loop started")

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if !m.active() {
				continue
			}

			m.safeTick(ctx)
		}
	}
}

func (m *Monitor) active() bool {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	return m.lifecycle == lifecycleActive
}

// safeTick runs one check pass and keeps the loop alive on panic.
func (m *Monitor) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().
				Interface("panic", r).
				Msg("Recovered from panic in monitoring loop")
		}
	}()

	m.CheckNow(ctx)
}

// pendingAlert is a notification decided under the lock and delivered
// after it is released.
type pendingAlert struct {
	componentID string
	severity    models.Severity
	title       string
	message     string
}

// CheckNow runs a single check pass over every registered component. It is
// called by the tick loop and may be called directly to force an immediate
// pass.
func (m *Monitor) CheckNow(ctx context.Context) {
	now := m.clock.Now()
	seen := m.ledger.Snapshot()

	var (
		pending   []pendingAlert
		newEvents []models.ConnectionEvent
		snapshot  *models.StatusSnapshot
	)

	m.mu.Lock()

	statusChanged := false

	for _, spec := range m.registry.All() {
		changedEvent, alert, err := m.checkComponent(spec.ID, seen, now)
		if err != nil {
			m.logger.Error().
				Err(err).
				Str("component_id", spec.ID).
				Msg("Failed to check component")

			continue
		}

		if changedEvent != nil {
			statusChanged = true

			newEvents = append(newEvents, *changedEvent)
		}

		if alert != nil {
			pending = append(pending, *alert)
		}
	}

	m.recomputeUptime(now)
	m.evictExpired(now)

	if statusChanged {
		snapshot = m.snapshotLocked(now)
	}

	m.mu.Unlock()

	for i := range newEvents {
		m.fireCallbacks(newEvents[i])
	}

	for i := range pending {
		m.deliver(ctx, now, pending[i])
	}

	if m.store == nil {
		return
	}

	for i := range newEvents {
		if err := m.store.PersistEvent(ctx, &newEvents[i]); err != nil {
			m.logger.Error().Err(err).Msg("Failed to persist connection event")
		}
	}

	if snapshot != nil {
		if err := m.store.PersistSnapshot(ctx, snapshot); err != nil {
			m.logger.Error().Err(err).Msg("Failed to store status snapshot")
		}
	}
}

// classifyFn is a seam for tests to inject per-component failures.
var classifyFn = Classify

// checkComponent reclassifies one component. Returns the transition event
// and the notification to deliver, either of which may be nil. A panic in
// here is converted to an error so one bad component cannot abort the pass
// for the rest.
func (m *Monitor) checkComponent(id string, seen map[string]time.Time, now time.Time) (event *models.ConnectionEvent, alert *pendingAlert, err error) {
	defer func() {
		if r := recover(); r != nil {
			event = nil
			alert = nil
			err = recoveredError(r)
		}
	}()

	comp, ok := m.components[id]
	if !ok {
		return nil, nil, ErrUnknownComponent
	}

	lastSeen, recorded := lastSeenFor(comp.spec, seen)
	newState, message := classifyFn(lastSeen, recorded, now, m.thresholds)

	if recorded {
		ts := lastSeen
		comp.lastSeen = &ts
	}

	switch {
	case newState == models.StateOnline:
		comp.consecutiveFailures = 0
	case newState.Degraded():
		comp.consecutiveFailures++
	}

	previous := comp.state
	if newState == previous {
		comp.message = message
		return nil, nil, nil
	}

	comp.state = newState
	comp.message = message

	comp.history = append(comp.history, models.HistoryEntry{
		State:     newState,
		Timestamp: now,
		Message:   message,
	})
	if len(comp.history) > m.config.MaxHistoryEntries {
		comp.history = comp.history[len(comp.history)-m.config.MaxHistoryEntries:]
	}

	ev := models.ConnectionEvent{
		Timestamp:     now,
		ComponentID:   id,
		ComponentName: comp.spec.Name,
		ComponentType: comp.spec.Type,
		PreviousState: previous,
		NewState:      newState,
		Message:       message,
	}
	m.events = append(m.events, ev)

	m.logTransition(comp, previous, newState)

	return &ev, m.notificationFor(comp, previous, newState, now), nil
}

// lastSeenFor resolves the most recent ledger entry attributable to one
// component. Ingestion records per-device keys ("plant_node_node1",
// "hub_node_hub1", "camera_hub1") and per-reading keys ("ph_water"), so a
// component claims its own id, any "<id>_"-suffixed key, and the same for
// each of its activity aliases. The latest matching timestamp wins.
func lastSeenFor(spec models.ComponentSpec, seen map[string]time.Time) (time.Time, bool) {
	var (
		latest   time.Time
		recorded bool
	)

	claim := func(candidate string) {
		for key, ts := range seen {
			if key != candidate && !strings.HasPrefix(key, candidate+"_") {
				continue
			}

			if !recorded || ts.After(latest) {
				latest = ts
				recorded = true
			}
		}
	}

	claim(spec.ID)

	for _, alias := range spec.ActivityKeys {
		claim(alias)
	}

	return latest, recorded
}

func (m *Monitor) logTransition(comp *componentState, previous, next models.ConnectionState) {
	switch {
	case next == models.StateOnline && previous != models.StateUnknown:
		m.logger.Info().
			Str("component_id", comp.spec.ID).
			Str("name", comp.spec.Name).
			Msg("Component reconnected")
	case next == models.StateWarning:
		m.logger.Warn().
			Str("component_id", comp.spec.ID).
			Str("name", comp.spec.Name).
			Msg("Component connection degraded")
	case next.Disconnected():
		m.logger.Error().
			Str("component_id", comp.spec.ID).
			Str("name", comp.spec.Name).
			Str("state", string(next)).
			Msg("Component disconnected")
	}
}

// notificationFor applies the notification policy to one transition and
// consumes the per-component cooldown when a notification is due.
func (m *Monitor) notificationFor(comp *componentState, previous, next models.ConnectionState, now time.Time) *pendingAlert {
	var (
		severity models.Severity
		title    string
		message  string
	)

	switch {
	case next == models.StateOnline && previous.Degraded():
		severity = models.SeverityInfo
		title = "Component Reconnected"
		message = comp.spec.Name + " has reconnected"
	case next == models.StateWarning && comp.spec.Critical:
		severity = models.SeverityWarning
		title = "Component Degraded"
		message = comp.spec.Name + " connection is degraded: " + comp.message
	case next.Disconnected():
		severity = models.SeverityWarning
		if comp.spec.Critical {
			severity = models.SeverityError
		}

		title = "Component Disconnected"
		message = comp.spec.Name + " has disconnected: " + comp.message
	default:
		return nil
	}

	if last, ok := m.lastNotified[comp.spec.ID]; ok {
		if now.Sub(last) < m.config.CooldownDuration() {
			m.logger.Debug().
				Str("component_id", comp.spec.ID).
				Msg("Skipping notification (in cooldown period)")

			return nil
		}
	}

	m.lastNotified[comp.spec.ID] = now

	return &pendingAlert{
		componentID: comp.spec.ID,
		severity:    severity,
		title:       title,
		message:     message,
	}
}

// recomputeUptime recalculates the trailing-24h uptime for every component
// with history inside the window. A component with no in-window history
// keeps its previous value.
func (m *Monitor) recomputeUptime(now time.Time) {
	for _, comp := range m.components {
		if pct, ok := uptimeOver(comp.history, now, uptimeWindow); ok {
			comp.uptimePercentage = pct
		}
	}
}

// uptimeOver computes the share of time in the online state over the
// window. The state at the window start is taken from the last transition
// before the window, so a component that went offline yesterday and never
// recovered is not credited for the silent stretch.
func uptimeOver(history []models.HistoryEntry, now time.Time, window time.Duration) (float64, bool) {
	windowStart := now.Add(-window)

	firstInWindow := len(history)

	for i := range history {
		if history[i].Timestamp.After(windowStart) {
			firstInWindow = i
			break
		}
	}

	if firstInWindow == len(history) {
		return 0, false
	}

	var connected, total time.Duration

	segmentStart := windowStart
	segmentState := models.StateUnknown

	if firstInWindow > 0 {
		segmentState = history[firstInWindow-1].State
	} else {
		segmentStart = history[0].Timestamp
	}

	for i := firstInWindow; i <= len(history); i++ {
		segmentEnd := now
		if i < len(history) {
			segmentEnd = history[i].Timestamp
		}

		duration := segmentEnd.Sub(segmentStart)
		if duration > 0 {
			total += duration

			if segmentState == models.StateOnline {
				connected += duration
			}
		}

		if i < len(history) {
			segmentStart = history[i].Timestamp
			segmentState = history[i].State
		}
	}

	if total <= 0 {
		return 0, false
	}

	return float64(connected) / float64(total) * 100, true
}

// evictExpired drops connection events older than the retention window.
func (m *Monitor) evictExpired(now time.Time) {
	cutoff := now.Add(-m.config.HistoryRetention())

	kept := m.events[:0]

	for _, ev := range m.events {
		if ev.Timestamp.After(cutoff) {
			kept = append(kept, ev)
		}
	}

	m.events = kept
}

// snapshotLocked builds the persistable view of every component. Caller
// holds the lock.
func (m *Monitor) snapshotLocked(now time.Time) *models.StatusSnapshot {
	snapshot := &models.StatusSnapshot{
		Timestamp:  now,
		Components: make(map[string]models.ComponentStatus, len(m.components)),
	}

	for id, comp := range m.components {
		snapshot.Components[id] = comp.status()
	}

	return snapshot
}

func (m *Monitor) fireCallbacks(ev models.ConnectionEvent) {
	m.cbMu.Lock()
	callbacks := make([]func(models.ConnectionEvent), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.cbMu.Unlock()

	for _, cb := range callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.logger.Error().
						Interface("panic", r).
						Msg("Recovered from panic in connection event callback")
				}
			}()

			cb(ev)
		}()
	}
}

// deliver sends one alert to every sink. Sink failures are logged and
// never propagate into the state machine.
func (m *Monitor) deliver(ctx context.Context, now time.Time, p pendingAlert) {
	alert := &alerts.Alert{
		ComponentID: p.componentID,
		Severity:    p.severity,
		Title:       p.title,
		Message:     p.message,
		Timestamp:   now,
	}

	switch p.severity {
	case models.SeverityInfo:
		m.logger.Info().Str("component_id", p.componentID).Msg(p.message)
	case models.SeverityWarning:
		m.logger.Warn().Str("component_id", p.componentID).Msg(p.message)
	default:
		m.logger.Error().Str("component_id", p.componentID).Msg(p.message)
	}

	for _, sink := range m.sinks {
		if err := sink.Alert(ctx, alert); err != nil {
			m.logger.Error().
				Err(err).
				Str("component_id", p.componentID).
				Msg("Failed to deliver notification")
		}
	}
}

func (c *componentState) status() models.ComponentStatus {
	status := models.ComponentStatus{
		ID:                  c.spec.ID,
		Name:                c.spec.Name,
		Type:                c.spec.Type,
		State:               c.state,
		Message:             c.message,
		Critical:            c.spec.Critical,
		UptimePercentage:    c.uptimePercentage,
		ConsecutiveFailures: c.consecutiveFailures,
	}

	if c.lastSeen != nil {
		ts := *c.lastSeen
		status.LastSeen = &ts
	}

	return status
}
