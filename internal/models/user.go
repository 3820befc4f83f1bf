// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package models

import "time"

// UserInput is the sign-up and profile-update payload. Profile updates
// replace every field, so the same shape serves both operations.
type UserInput struct {
	Email                   string `json:"email" validate:"required,email"`
	FullName                string `json:"full_name" validate:"required"`
	Password                string `json:"password" validate:"required"`
	Age                     int    `json:"age"`
	Gender                  string `json:"gender"`
	PhoneNumber             string `json:"phone_number"`
	WorkStatus              string `json:"work_status"`
	ImmigrationStatus       string `json:"immigration_status"`
	Skills                  string `json:"skills"`
	Interests               string `json:"interests"`
	PastVolunteerExperience string `json:"past_volunteer_experience"`
}

// Profile checks the domain rules in a fixed order (age, gender, work
// status, immigration status) and returns the typed profile. The first
// failing rule determines the Validation error.
func (in *UserInput) Profile() (Profile, error) {
	if in.Age <= 0 {
		return Profile{}, Validation(DetailInvalidAge)
	}
	gender, ok := ParseGender(in.Gender)
	if !ok {
		return Profile{}, Validation(DetailInvalidGender)
	}
	work, ok := ParseWorkStatus(in.WorkStatus)
	if !ok {
		return Profile{}, Validation(DetailInvalidWorkStatus)
	}
	immigration, ok := ParseImmigrationStatus(in.ImmigrationStatus)
	if !ok {
		return Profile{}, Validation(DetailInvalidImmigration)
	}

	return Profile{
		FullName:                in.FullName,
		Age:                     in.Age,
		Gender:                  gender,
		PhoneNumber:             in.PhoneNumber,
		WorkStatus:              work,
		ImmigrationStatus:       immigration,
		Skills:                  in.Skills,
		Interests:               in.Interests,
		PastVolunteerExperience: in.PastVolunteerExperience,
	}, nil
}

// Profile holds the validated, user-editable part of an account.
type Profile struct {
	FullName                string            `json:"full_name"`
	Age                     int               `json:"age"`
	Gender                  Gender            `json:"gender"`
	PhoneNumber             string            `json:"phone_number"`
	WorkStatus              WorkStatus        `json:"work_status"`
	ImmigrationStatus       ImmigrationStatus `json:"immigration_status"`
	Skills                  string            `json:"skills"`
	Interests               string            `json:"interests"`
	PastVolunteerExperience string            `json:"past_volunteer_experience"`
}

// User is a volunteer account. The events a user is registered for are
// not stored here; they are read from the registration relation.
type User struct {
	ID           string `json:"-"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
	Profile
	CreatedAt time.Time `json:"-"`
}

// ProfileText is the text embedded for event recommendations: skills,
// interests and past experience joined by single spaces.
func (u *User) ProfileText() string {
	return u.Skills + " " + u.Interests + " " + u.PastVolunteerExperience
}

// Role returns the authorization role derived from the admin flag.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleVolunteer
}
