// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package tasks

import "github.com/tomtom215/connect4good/internal/models"

const query = "Can you generate 3 to 5 personalized tasks for the user that are tailored to the event? " +
	"Try not to repeat tasks that are already in the event description. " +
	"Do not use any lists, keep the response in a single paragraph."

// EventPart renders the event section of the prompt.
func EventPart(event *models.Event) string {
	return "Event Description: \n" + event.Description + "\n\n" +
		"Event Tasks: \n" + event.Tasks
}

// UserPart renders the user section of the prompt.
func UserPart(user *models.User) string {
	return "User Skills: \n" + user.Skills + "\n\n" +
		"User Interests: \n" + user.Interests + "\n\n" +
		"User Past Volunteer Experience: \n" + user.PastVolunteerExperience
}

// BuildPrompt renders the full generation prompt.
func BuildPrompt(event *models.Event, user *models.User) string {
	intro := "Here is a description and list of tasks of the volunteering event: \n" + EventPart(event) + "\n\n" +
		"Here is the user's list of skills, description of his interests and past volunteer experiences : " +
		UserPart(user) + "\n\n"
	return intro + "\n\n" + query
}
