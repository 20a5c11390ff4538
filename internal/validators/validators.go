// Package validators configures the shared go-playground validator and turns
// its field errors into the human readable rule violations the API reports.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/eightd-studio/engine/internal/models"
)

// Validator is the subset of *validator.Validate the services and handlers need.
type Validator interface {
	Struct(any) error
}

const tagRootCauseAction = "root_cause_action"

// messages maps "<json field>.<tag>" to the message reported to clients.
var messages = map[string]string{
	"title.notblank":                         "Title is required",
	"title.max":                              "Title must be at most %s characters",
	"description.notblank":                   "Description is required",
	"description.max":                        "Description must be at most %s characters",
	"responsible_team.notblank":              "Responsible team is required",
	"responsible_team.max":                   "Responsible team must be at most %s characters",
	"status.oneof":                           "Invalid status value",
	"problem_id.required":                    "Problem ID is required",
	"cause_text.notblank":                    "Cause text is required",
	"cause_text.max":                         "Cause text must be at most %s characters",
	"permanent_action.max":                   "Permanent action must be at most %s characters",
	"permanent_action." + tagRootCauseAction: "Permanent action is required for root causes",
}

// New returns a validator that names fields after their json tags, knows the
// notblank rule, and enforces the root-cause/permanent-action rule on causes.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	v.RegisterStructValidation(causeRules, models.Cause{})
	return v
}

func causeRules(sl validator.StructLevel) {
	c, ok := sl.Current().Interface().(models.Cause)
	if !ok {
		return
	}
	if c.IsRootCause && !c.HasPermanentAction() {
		sl.ReportError(c.PermanentAction, "permanent_action", "PermanentAction", tagRootCauseAction, "")
	}
}

// Messages flattens a validation error into one message per violated rule,
// in the order the validator reported them.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	if tmpl, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		if strings.Contains(tmpl, "%s") {
			return fmt.Sprintf(tmpl, fe.Param())
		}
		return tmpl
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
