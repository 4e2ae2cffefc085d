package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// internRules mirrors the persisted field constraints. Score is a pointer so
// that "absent" and "0" stay distinguishable on create.
type internRules struct {
	Name   string `validate:"required,min=2"`
	Email  string `validate:"required,email"`
	Role   string `validate:"required,oneof=Frontend Backend Fullstack"`
	Status string `validate:"required,oneof=Applied Interviewing Hired Rejected"`
	Score  *int   `validate:"required,min=0,max=100"`
}

var fieldMessages = map[string]string{
	"Name.required":   "Name is required",
	"Name.min":        "Name must be at least 2 characters long",
	"Email.required":  "Email is required",
	"Email.email":     "Please fill a valid email address",
	"Role.required":   "Role is required",
	"Status.required": "Status is required",
	"Score.required":  "Score is required",
	"Score.min":       "Score cannot be less than 0",
	"Score.max":       "Score cannot be more than 100",
}

func validateInput(in InternInput) error {
	return check(internRules{
		Name:   deref(in.Name),
		Email:  deref(in.Email),
		Role:   deref(in.Role),
		Status: deref(in.Status),
		Score:  in.Score,
	})
}

func validateIntern(i *Intern) error {
	score := i.Score
	return check(internRules{
		Name:   i.Name,
		Email:  i.Email,
		Role:   i.Role,
		Status: i.Status,
		Score:  &score,
	})
}

// check runs every rule and aggregates one message per violated field.
func check(r internRules) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range ferrs {
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			ve.Violations = append(ve.Violations, msg)
			continue
		}
		if fe.Tag() == "oneof" {
			ve.Violations = append(ve.Violations, fmt.Sprintf(
				"`%v` is not a valid enum value for path `%s`",
				fe.Value(), strings.ToLower(fe.Field())))
			continue
		}
		ve.Violations = append(ve.Violations, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return ve
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
