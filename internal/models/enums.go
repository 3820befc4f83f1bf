// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package models

import "strings"

// Gender is the closed set of gender values accepted on a profile.
type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "f"
)

// ParseGender parses s case-insensitively.
func ParseGender(s string) (Gender, bool) {
	switch g := Gender(normalizeEnum(s)); g {
	case GenderMale, GenderFemale:
		return g, true
	}
	return "", false
}

// WorkStatus is the closed set of employment values accepted on a profile.
type WorkStatus string

const (
	WorkStatusStudent    WorkStatus = "student"
	WorkStatusEmployed   WorkStatus = "employed"
	WorkStatusUnemployed WorkStatus = "unemployed"
)

// ParseWorkStatus parses s case-insensitively.
func ParseWorkStatus(s string) (WorkStatus, bool) {
	switch w := WorkStatus(normalizeEnum(s)); w {
	case WorkStatusStudent, WorkStatusEmployed, WorkStatusUnemployed:
		return w, true
	}
	return "", false
}

// ImmigrationStatus is the closed set of residency values accepted on a profile.
type ImmigrationStatus string

const (
	ImmigrationCitizen     ImmigrationStatus = "citizen"
	ImmigrationPR          ImmigrationStatus = "pr"
	ImmigrationStudentVisa ImmigrationStatus = "student visa"
	ImmigrationOther       ImmigrationStatus = "other"
)

// ParseImmigrationStatus parses s case-insensitively.
func ParseImmigrationStatus(s string) (ImmigrationStatus, bool) {
	switch i := ImmigrationStatus(normalizeEnum(s)); i {
	case ImmigrationCitizen, ImmigrationPR, ImmigrationStudentVisa, ImmigrationOther:
		return i, true
	}
	return "", false
}

// normalizeEnum lowercases s. Whitespace is significant.
func normalizeEnum(s string) string {
	return strings.ToLower(s)
}
