// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/connect4good/internal/models"
	"github.com/tomtom215/connect4good/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// DetailInvalidBody is returned for bodies that are not valid JSON for the
// endpoint.
const DetailInvalidBody = "Invalid request body"

// EmailRequest identifies a user.
type EmailRequest struct {
	Email string `json:"email" validate:"required"`
}

// TitleRequest identifies an event.
type TitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangeAdminRequest names the acting admin and the user acted on.
type ChangeAdminRequest struct {
	CurrUserEmail string `json:"curr_user_email" validate:"required"`
	NewUserEmail  string `json:"new_user_email" validate:"required"`
}

// ChangeEventRequest creates or fully replaces an event on behalf of Email.
type ChangeEventRequest struct {
	Email string `json:"email" validate:"required"`
	models.EventDetails
}

// AdminEventRequest pairs a user with an event. It serves delete_event,
// register_event, unregister_event and get_users_registered.
type AdminEventRequest struct {
	Email string `json:"email" validate:"required"`
	Title string `json:"title" validate:"required"`
}

// KickUserRequest is the body of POST /admin/kick_user.
type KickUserRequest struct {
	CurrUserEmail string `json:"curr_user_email" validate:"required"`
	NewUserEmail  string `json:"new_user_email" validate:"required"`
	Title         string `json:"title" validate:"required"`
}

// UserEventRequest pairs a user with an event for generate_tasks and
// is_registered.
type UserEventRequest struct {
	UserEmail  string `json:"user_email" validate:"required"`
	EventTitle string `json:"event_title" validate:"required"`
}

// bind fills dst from the query string, then from the JSON body, then
// validates it. Body fields override query fields.
func bind(r *http.Request, dst any) error {
	if err := bindQuery(r, dst); err != nil {
		return err
	}

	if r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return models.Validation(DetailInvalidBody)
		}
		if len(strings.TrimSpace(string(body))) > 0 {
			if err := json.Unmarshal(body, dst); err != nil {
				return models.Validation(DetailInvalidBody)
			}
		}
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		return &models.Error{Kind: models.KindValidation, Detail: verr.Detail(), Err: verr}
	}
	return nil
}

// bindQuery copies query parameters into the string and int fields of the
// struct dst points at, matched by json tag. Embedded structs are walked.
func bindQuery(r *http.Request, dst any) error {
	query := r.URL.Query()
	if len(query) == 0 {
		return nil
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return errors.New("bind: destination must be a pointer to a struct")
	}
	return setFields(v.Elem(), query)
}

func setFields(v reflect.Value, query map[string][]string) error {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)

		if field.Anonymous && fv.Kind() == reflect.Struct {
			if err := setFields(fv, query); err != nil {
				return err
			}
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		values, ok := query[name]
		if name == "" || name == "-" || !ok || len(values) == 0 || !fv.CanSet() {
			continue
		}

		switch fv.Kind() {
		case reflect.String:
			fv.SetString(values[0])
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(values[0], 10, 64)
			if err != nil {
				return models.Validation("Please enter a valid value for " + name)
			}
			fv.SetInt(n)
		}
	}
	return nil
}
