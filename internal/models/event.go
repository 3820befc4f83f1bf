// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package models

import "time"

// EventDetails is the admin-editable part of an event. Date, time,
// deadline and location are opaque strings shown to volunteers as typed.
type EventDetails struct {
	Title        string `json:"title" validate:"required"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Requirements string `json:"requirements"`
	Capacity     int    `json:"capacity"`
	Deadline     string `json:"deadline"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Tasks        string `json:"tasks"`
}

// Validate enforces a positive capacity.
func (d *EventDetails) Validate() error {
	if d.Capacity <= 0 {
		return Validation(DetailInvalidCapacity)
	}
	return nil
}

// Event is a volunteer event. RegistrantCount mirrors the number of rows
// in the registration relation for this event and never exceeds Capacity.
type Event struct {
	ID string `json:"-"`
	EventDetails
	RegistrantCount int       `json:"-"`
	CreatedAt       time.Time `json:"-"`
}

// IsFull reports whether no seat is left.
func (e *Event) IsFull() bool {
	return e.SeatsLeft() == 0
}

// SeatsLeft returns the number of free seats, never negative.
func (e *Event) SeatsLeft() int {
	if left := e.Capacity - e.RegistrantCount; left > 0 {
		return left
	}
	return 0
}
