// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"sync"

	"github.com/google/uuid"
)

// Observer receives the lifecycle notifications of a game.
// Notify is called synchronously once the transition is committed,
// and must not call the guarded operations of the game.
type Observer interface {
	Notify(event Event)
}

// ObserverFunc is an adapter to use a function as an Observer.
type ObserverFunc func(event Event)

// Notify calls f(event).
func (f ObserverFunc) Notify(event Event) { f(event) }

// ChannelObserver returns an observer sending every event on ch.
// Notify blocks until the event is sent, so ch should be buffered
// or drained by a dedicated goroutine.
func ChannelObserver(ch chan<- Event) Observer {
	return ObserverFunc(func(event Event) {
		ch <- event
	})
}

type subscription struct {
	id       uint32
	observer Observer
}

// notifier delivers event batches to observers in the order
// their tickets were taken.
type notifier struct {
	mutex         sync.Mutex
	cond          *sync.Cond
	next, serving uint64
	subscriptions []subscription
}

func newNotifier() *notifier {
	n := &notifier{}
	n.cond = sync.NewCond(&n.mutex)
	return n
}

func (n *notifier) subscribe(observer Observer) (id uint32) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	for {
		id = uuid.New().ID()
		if !n.hasID(id) {
			break
		}
	}
	n.subscriptions = append(n.subscriptions, subscription{id: id, observer: observer})
	return id
}

func (n *notifier) hasID(id uint32) bool {
	for _, s := range n.subscriptions {
		if s.id == id {
			return true
		}
	}
	return false
}

func (n *notifier) unsubscribe(id uint32) (removed bool) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	for i, s := range n.subscriptions {
		if s.id != id {
			continue
		}
		subscriptions := make([]subscription, 0, len(n.subscriptions)-1)
		subscriptions = append(subscriptions, n.subscriptions[:i]...)
		n.subscriptions = append(subscriptions, n.subscriptions[i+1:]...)
		return true
	}
	return false
}

// ticket must be taken while the transition producing
// the events is still locked, and must be delivered.
func (n *notifier) ticket() (ticket uint64) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	ticket = n.next
	n.next++
	return ticket
}

// deliver waits for the previous tickets to be delivered, runs
// the before function if any, and notifies every observer
// of every event.
func (n *notifier) deliver(ticket uint64, before func(), events ...Event) {
	n.mutex.Lock()
	for n.serving != ticket {
		n.cond.Wait()
	}
	subscriptions := n.subscriptions
	n.mutex.Unlock()

	if before != nil {
		before()
	}

	for _, event := range events {
		for _, s := range subscriptions {
			s.observer.Notify(event)
		}
	}

	n.mutex.Lock()
	n.serving++
	n.cond.Broadcast()
	n.mutex.Unlock()
}
