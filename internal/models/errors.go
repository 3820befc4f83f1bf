// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package models

import "fmt"

// Kind classifies a domain failure.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindNotAuthorized
	KindCapacityExceeded
	KindNotRegistered
	KindInvalidCredentials
	KindExternalService
)

var kindNames = map[Kind]string{
	KindInternal:           "internal",
	KindNotFound:           "not_found",
	KindConflict:           "conflict",
	KindValidation:         "validation",
	KindNotAuthorized:      "not_authorized",
	KindCapacityExceeded:   "capacity_exceeded",
	KindNotRegistered:      "not_registered",
	KindInvalidCredentials: "invalid_credentials",
	KindExternalService:    "external_service",
}

// String returns the snake_case name used in logs and metric labels.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a domain failure carrying a client-facing detail message.
//
// errors.Is matches two *Error values when their kinds agree and the target
// has no Detail, or when both kind and detail agree. This lets callers test
// against the sentinels below while specific errors keep their wording:
//
//	errors.Is(models.NotFound("Event not found"), models.ErrNotFound) // true
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality with sentinel errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Detail == "" || t.Detail == e.Detail
}

// Sentinel errors for errors.Is checks.
var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrValidation         = &Error{Kind: KindValidation}
	ErrNotAuthorized      = &Error{Kind: KindNotAuthorized}
	ErrCapacityExceeded   = &Error{Kind: KindCapacityExceeded}
	ErrNotRegistered      = &Error{Kind: KindNotRegistered}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrExternalService    = &Error{Kind: KindExternalService}

	// ErrAlreadyRegistered is the Conflict raised for a duplicate membership.
	ErrAlreadyRegistered = &Error{Kind: KindConflict, Detail: DetailAlreadyRegistered}
)

// Detail messages shared across layers. Clients match on these strings.
const (
	DetailUserNotFound        = "User not found"
	DetailEventNotFound       = "Event not found"
	DetailAdminNotFound       = "Admin User not found"
	DetailTargetNotFound      = "New User not found"
	DetailNotAdmin            = "User is not an admin"
	DetailCurrentNotAdmin     = "Current User is not an admin"
	DetailEmailTaken          = "Email already registered"
	DetailTitleTaken          = "Event already exists"
	DetailEventFull           = "Event is full already"
	DetailAlreadyRegistered   = "User already registered for event"
	DetailNotRegistered       = "User not registered for event"
	DetailTargetNotRegistered = "New User not registered for event"
	DetailIncorrectEmail      = "Incorrect Email"
	DetailIncorrectPassword   = "Incorrect Password"
	DetailRegistrationBusy    = "Event registration is busy, please retry"
	DetailInvalidAge          = "Please enter a valid value for Age"
	DetailInvalidGender       = "Please enter a valid value for Gender: M or F"
	DetailInvalidWorkStatus   = "Please enter a valid value for Work Status: Student, Employed, or Unemployed"
	DetailInvalidImmigration  = "Please enter a valid value for Immigration Status: Citizen, PR, Student Visa, or Other"
	DetailInvalidCapacity     = "Please enter a valid value for Capacity"
	DetailCapacityBelowCount  = "Capacity cannot be lower than the number of registered users"
	DetailPasswordRequired    = "Please enter a password"
	DetailPasswordTooLong     = "Password must be at most 72 bytes"
)

// NotFound returns a NotFound error with the given detail.
func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// Conflict returns a Conflict error with the given detail.
func Conflict(detail string) *Error {
	return &Error{Kind: KindConflict, Detail: detail}
}

// Validation returns a Validation error with the given detail.
func Validation(detail string) *Error {
	return &Error{Kind: KindValidation, Detail: detail}
}

// NotAuthorized returns a NotAuthorized error with the given detail.
func NotAuthorized(detail string) *Error {
	return &Error{Kind: KindNotAuthorized, Detail: detail}
}

// CapacityExceeded returns the error raised when an event has no free seat.
func CapacityExceeded() *Error {
	return &Error{Kind: KindCapacityExceeded, Detail: DetailEventFull}
}

// NotRegistered returns a NotRegistered error with the given detail.
func NotRegistered(detail string) *Error {
	return &Error{Kind: KindNotRegistered, Detail: detail}
}

// InvalidCredentials returns an InvalidCredentials error with the given detail.
func InvalidCredentials(detail string) *Error {
	return &Error{Kind: KindInvalidCredentials, Detail: detail}
}

// ExternalService wraps a failure of the embedding or generation service.
func ExternalService(detail string, err error) *Error {
	return &Error{Kind: KindExternalService, Detail: detail, Err: err}
}
