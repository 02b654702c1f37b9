// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mission

import "container/list"

// Queue is the ordered pool of pending missions.
// Missions are consumed from the front, and a mission whose team
// was rejected is put back at the front to be retried.
// It is NOT THREAD SAFE to use.
type Queue struct {
	// double linked list of Mission
	linkedList *list.List
	// map of mission to its linked list element
	mapping map[Mission]*list.Element
}

// NewQueue creates a queue holding the missions given in order.
// Nil and duplicate missions are dropped.
func NewQueue(missions ...Mission) *Queue {
	q := &Queue{
		linkedList: list.New(),
		mapping:    make(map[Mission]*list.Element, len(missions)),
	}
	for _, m := range missions {
		if m == nil || q.Contains(m) {
			continue
		}
		q.mapping[m] = q.linkedList.PushBack(m)
	}
	return q
}

// Len returns the number of pending missions.
func (q *Queue) Len() int {
	return q.linkedList.Len()
}

// Head returns the mission at the front of the queue,
// and false if the queue is empty.
func (q *Queue) Head() (m Mission, ok bool) {
	front := q.linkedList.Front()
	if front == nil {
		return nil, false
	}
	return front.Value.(Mission), true
}

// Contains returns true if the mission is pending in the queue.
func (q *Queue) Contains(m Mission) bool {
	if m == nil {
		return false
	}
	_, has := q.mapping[m]
	return has
}

// Remove removes the mission from the queue wherever it is,
// and returns false if the mission was not queued.
func (q *Queue) Remove(m Mission) (removed bool) {
	if m == nil {
		return false
	}
	element, has := q.mapping[m]
	if !has {
		return false
	}
	q.linkedList.Remove(element)
	delete(q.mapping, m)
	return true
}

// PushFront inserts the mission at the front of the queue.
// A mission already queued is moved to the front rather than duplicated.
func (q *Queue) PushFront(m Mission) {
	if m == nil {
		return
	}
	if element, has := q.mapping[m]; has {
		q.linkedList.MoveToFront(element)
		return
	}
	q.mapping[m] = q.linkedList.PushFront(m)
}

// Missions returns the pending missions in queue order.
func (q *Queue) Missions() (missions []Mission) {
	missions = make([]Mission, 0, q.linkedList.Len())
	for e := q.linkedList.Front(); e != nil; e = e.Next() {
		missions = append(missions, e.Value.(Mission))
	}
	return missions
}
