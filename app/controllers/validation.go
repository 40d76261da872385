package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"unicode/utf8"

	"todo-api/app/models"

	"github.com/gorilla/mux"
)

// FieldError describes one invalid part of a request.
// Loc is the path to the offending value, e.g. ["body", "task"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrors is returned when a request fails validation.
// It is rendered as a 422 response.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("%d validation error(s), first: %v: %s", len(v), v[0].Loc, v[0].Msg)
}

func (v *ValidationErrors) add(msg, typ string, loc ...string) {
	*v = append(*v, FieldError{Loc: loc, Msg: msg, Type: typ})
}

// todoIDFromPath parses the {todoID} route variable.
func todoIDFromPath(r *http.Request, errs *ValidationErrors) int {
	id, err := strconv.Atoi(mux.Vars(r)["todoID"])
	if err != nil {
		errs.add("value is not a valid integer", "type_error.integer", "path", "todo_id")
		return 0
	}
	return id
}

// decodeTodoInput reads a TodoInput from the request body. task and
// description are required strings, task must not be empty, and completed
// is an optional boolean that defaults to false.
func decodeTodoInput(r *http.Request, errs *ValidationErrors) models.TodoInput {
	var in models.TodoInput

	body, err := io.ReadAll(r.Body)
	if err != nil {
		errs.add(err.Error(), "value_error.jsondecode", "body")
		return in
	}
	if len(bytes.TrimSpace(body)) == 0 {
		errs.add("field required", "value_error.missing", "body")
		return in
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			errs.add("value is not a valid dict", "type_error.dict", "body")
		} else {
			errs.add(err.Error(), "value_error.jsondecode", "body")
		}
		return in
	}
	if fields == nil {
		errs.add("value is not a valid dict", "type_error.dict", "body")
		return in
	}

	in.Task = stringField(fields, "task", 1, errs)
	in.Description = stringField(fields, "description", 0, errs)
	in.Completed = boolField(fields, "completed", errs)
	return in
}

func stringField(fields map[string]json.RawMessage, name string, minLen int, errs *ValidationErrors) string {
	raw, ok := fields[name]
	if !ok {
		errs.add("field required", "value_error.missing", "body", name)
		return ""
	}
	if isNull(raw) {
		errs.add("none is not an allowed value", "type_error.none.not_allowed", "body", name)
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.add("str type expected", "type_error.str", "body", name)
		return ""
	}
	if utf8.RuneCountInString(s) < minLen {
		errs.add(fmt.Sprintf("ensure this value has at least %d characters", minLen), "value_error.any_str.min_length", "body", name)
		return ""
	}
	return s
}

func boolField(fields map[string]json.RawMessage, name string, errs *ValidationErrors) bool {
	raw, ok := fields[name]
	if !ok {
		return false
	}
	if isNull(raw) {
		errs.add("none is not an allowed value", "type_error.none.not_allowed", "body", name)
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		errs.add("value could not be parsed to a boolean", "type_error.bool", "body", name)
		return false
	}
	return b
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
