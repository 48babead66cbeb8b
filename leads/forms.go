package leads

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Kind says which form produced a lead.
type Kind string

const (
	KindContact  Kind = "contact"
	KindReferral Kind = "referral"
)

// Lead is a stored form submission.
type Lead struct {
	ID      string
	Kind    Kind
	Name    string
	Email   string
	Phone   string
	Course  string
	Message string

	// Referral only: the friend being referred.
	FriendName  string
	FriendEmail string
	FriendPhone string

	CreatedAt time.Time
	IPHash    string
}

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

// Add records msg for field unless it already has one.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// ContactForm is the contact page submission.
type ContactForm struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone"`
	Course    string `form:"course"`
	Message   string `form:"message" validate:"required,max=5000"`
	Token     string `form:"challenge"`
	Answer    string `form:"answer"`
}

var contactMessages = map[string]string{
	"first_name.required": "First name is required.",
	"last_name.required":  "Last name is required.",
	"email.required":      "Email is required.",
	"email.email":         "Enter a valid email address.",
	"message.required":    "Please tell us how we can help.",
	"message.max":         "Message is too long.",
}

// Normalize trims whitespace from every field.
func (f *ContactForm) Normalize() {
	for _, p := range []*string{&f.FirstName, &f.LastName, &f.Email, &f.Phone, &f.Course, &f.Message} {
		*p = strings.TrimSpace(*p)
	}
}

// Validate checks required fields and the challenge answer.
func (f ContactForm) Validate(ch *Challenger) FieldErrors {
	errs := FieldErrors{}
	validateStruct(errs, f, contactMessages)
	checkChallenge(errs, ch, f.Token, f.Answer)
	return errs
}

// Lead converts the form into a new lead.
func (f ContactForm) Lead() Lead {
	return Lead{
		ID:        uuid.NewString(),
		Kind:      KindContact,
		Name:      joinName(f.FirstName, f.LastName),
		Email:     f.Email,
		Phone:     f.Phone,
		Course:    f.Course,
		Message:   f.Message,
		CreatedAt: time.Now().UTC(),
	}
}

// ReferralForm is the referral program submission.
type ReferralForm struct {
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Phone           string `form:"phone"`
	FriendFirstName string `form:"friend_first_name" validate:"required"`
	FriendLastName  string `form:"friend_last_name" validate:"required"`
	FriendEmail     string `form:"friend_email" validate:"required,email"`
	FriendPhone     string `form:"friend_phone"`
	Course          string `form:"course"`
	Message         string `form:"message" validate:"max=5000"`
	Terms           bool   `form:"terms" validate:"required"`
	Token           string `form:"challenge"`
	Answer          string `form:"answer"`
}

var referralMessages = map[string]string{
	"first_name.required":        "Your first name is required.",
	"last_name.required":         "Your last name is required.",
	"email.required":             "Email is required.",
	"email.email":                "Enter a valid email address.",
	"friend_first_name.required": "Your friend's first name is required.",
	"friend_last_name.required":  "Your friend's last name is required.",
	"friend_email.required":      "Your friend's email is required.",
	"friend_email.email":         "Enter a valid email address.",
	"message.max":                "Message is too long.",
	"terms.required":             "Please accept the referral terms.",
}

// Normalize trims whitespace from every text field.
func (f *ReferralForm) Normalize() {
	for _, p := range []*string{
		&f.FirstName, &f.LastName, &f.Email, &f.Phone,
		&f.FriendFirstName, &f.FriendLastName, &f.FriendEmail, &f.FriendPhone,
		&f.Course, &f.Message,
	} {
		*p = strings.TrimSpace(*p)
	}
}

// Validate checks required fields, the terms box and the challenge.
func (f ReferralForm) Validate(ch *Challenger) FieldErrors {
	errs := FieldErrors{}
	validateStruct(errs, f, referralMessages)
	if f.Email != "" && strings.EqualFold(f.Email, f.FriendEmail) {
		errs.Add("friend_email", "You can't refer yourself.")
	}
	checkChallenge(errs, ch, f.Token, f.Answer)
	return errs
}

// Lead converts the form into a new lead.
func (f ReferralForm) Lead() Lead {
	return Lead{
		ID:          uuid.NewString(),
		Kind:        KindReferral,
		Name:        joinName(f.FirstName, f.LastName),
		Email:       f.Email,
		Phone:       f.Phone,
		Course:      f.Course,
		Message:     f.Message,
		FriendName:  joinName(f.FriendFirstName, f.FriendLastName),
		FriendEmail: f.FriendEmail,
		FriendPhone: f.FriendPhone,
		CreatedAt:   time.Now().UTC(),
	}
}

var validate = newValidator()

// newValidator reports failures under the form field names, so they line
// up with FieldErrors keys and the rendered inputs.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the validate tags on form and records the message
// for each failing field and tag.
func validateStruct(errs FieldErrors, form any, messages map[string]string) {
	var verrs validator.ValidationErrors
	if !errors.As(validate.Struct(form), &verrs) {
		return
	}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = "This field is invalid."
		}
		errs.Add(fe.Field(), msg)
	}
}

func checkChallenge(errs FieldErrors, ch *Challenger, token, answer string) {
	err := ch.Verify(token, answer)
	switch {
	case err == nil:
	case errors.Is(err, ErrChallengeExpired):
		errs.Add("answer", "The question expired. Please answer the new one.")
	default:
		errs.Add("answer", "Incorrect answer. Please try again.")
	}
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
