// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/resistance/internal/log"
	"github.com/ChainSafe/resistance/lib/game"
	"github.com/gorilla/websocket"
)

// ErrTimeout is returned when the event queue stays full
// for longer than the send timeout.
var ErrTimeout = errors.New("timeout sending event")

const (
	queueSize      = 256
	messageTimeout = time.Second
)

type connection struct {
	wsconn   *websocket.Conn
	endpoint string
	sync.Mutex
}

// Mailer is a game observer shipping every event as a JSON
// text message to websocket telemetry endpoints.
type Mailer struct {
	queue       chan game.Event
	connections []*connection
	logger      log.LeveledLogger
	cancel      context.CancelFunc
	done        chan struct{}
}

var _ game.Observer = (*Mailer)(nil)

// NewMailer connects to the endpoints given and starts the
// asynchronous shipment of events. Endpoints which cannot be
// reached after a few attempts are skipped.
func NewMailer(ctx context.Context, endpoints []string,
	logger log.LeveledLogger) *Mailer {
	const (
		maxRetries = 3
		retryDelay = time.Second
	)

	m := &Mailer{
		queue:  make(chan game.Event, queueSize),
		logger: logger,
		done:   make(chan struct{}),
	}

	for _, endpoint := range endpoints {
		for attempt := 0; attempt < maxRetries; attempt++ {
			c, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
			if err != nil {
				m.logger.Debugf("issue adding telemetry connection to %s: %s", endpoint, err)
				select {
				case <-time.After(retryDelay):
					continue
				case <-ctx.Done():
				}
				break
			}

			m.connections = append(m.connections, &connection{
				wsconn:   c,
				endpoint: endpoint,
			})
			break
		}
	}

	ctx, m.cancel = context.WithCancel(ctx)
	go m.asyncShipment(ctx)

	return m
}

// Connections returns the number of telemetry endpoints connected.
func (m *Mailer) Connections() int {
	return len(m.connections)
}

// Notify queues the event for shipment.
func (m *Mailer) Notify(event game.Event) {
	err := m.Send(event)
	if err != nil {
		m.logger.Debugf("dropping %s telemetry event: %s", event.Type(), err)
	}
}

// Send queues the event for shipment, and fails if the
// queue stays full for a second.
func (m *Mailer) Send(event game.Event) error {
	t := time.NewTimer(messageTimeout)
	defer t.Stop()

	select {
	case m.queue <- event:
		return nil
	case <-t.C:
		return ErrTimeout
	}
}

// Close ships the events already queued, stops the
// shipment and closes the connections.
func (m *Mailer) Close() (err error) {
	m.cancel()
	<-m.done

	for _, conn := range m.connections {
		conn.Lock()
		closeErr := conn.wsconn.Close()
		conn.Unlock()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("closing connection to %s: %w", conn.endpoint, closeErr)
		}
	}
	return err
}

func (m *Mailer) asyncShipment(ctx context.Context) {
	defer close(m.done)
	for {
		select {
		case <-ctx.Done():
			// flush the events queued before closing
			for {
				select {
				case event := <-m.queue:
					m.ship(event)
				default:
					return
				}
			}
		case event := <-m.queue:
			m.ship(event)
		}
	}
}

func (m *Mailer) ship(event game.Event) {
	msgBytes, err := eventToJSON(event, time.Now())
	if err != nil {
		m.logger.Debugf("issue encoding telemetry event: %s", err)
		return
	}

	for _, conn := range m.connections {
		conn.Lock()
		err = conn.wsconn.WriteMessage(websocket.TextMessage, msgBytes)
		conn.Unlock()
		if err != nil {
			m.logger.Debugf("issue while sending telemetry event to %s: %s",
				conn.endpoint, err)
		}
	}
}

func eventToJSON(event game.Event, ts time.Time) ([]byte, error) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	eventMap := make(map[string]interface{})
	err = json.Unmarshal(eventBytes, &eventMap)
	if err != nil {
		return nil, err
	}

	eventMap["ts"] = ts
	eventMap["msg"] = event.Type().String()

	return json.Marshal(eventMap)
}
