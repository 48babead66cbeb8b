package leads

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answered(c *Challenger) (string, string) {
	ch := c.Issue()
	return ch.Token, strconv.Itoa(ch.A + ch.B)
}

func TestContactFormValid(t *testing.T) {
	c := NewChallenger([]byte("k"))
	token, answer := answered(c)
	f := ContactForm{
		FirstName: " Maria ",
		LastName:  "Santos",
		Email:     "maria@example.com",
		Message:   "When is the next OSCE intake?",
		Course:    "OSCE",
		Token:     token,
		Answer:    answer,
	}
	f.Normalize()
	assert.Empty(t, f.Validate(c))

	l := f.Lead()
	assert.Equal(t, KindContact, l.Kind)
	assert.Equal(t, "Maria Santos", l.Name)
	_, err := uuid.Parse(l.ID)
	assert.NoError(t, err)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestContactFormErrors(t *testing.T) {
	c := NewChallenger([]byte("k"))
	token, _ := answered(c)
	errs := ContactForm{Email: "not-an-email", Token: token, Answer: "0"}.Validate(c)

	assert.Equal(t, "First name is required.", errs["first_name"])
	assert.Equal(t, "Last name is required.", errs["last_name"])
	assert.Equal(t, "Please tell us how we can help.", errs["message"])
	assert.Equal(t, "Enter a valid email address.", errs["email"])
	assert.Equal(t, "Incorrect answer. Please try again.", errs["answer"])
}

func TestContactFormRejectsDisplayNameEmail(t *testing.T) {
	c := NewChallenger([]byte("k"))
	token, answer := answered(c)
	errs := ContactForm{
		FirstName: "A", LastName: "B", Message: "m",
		Email: "Maria <maria@example.com>", Token: token, Answer: answer,
	}.Validate(c)
	assert.Equal(t, FieldErrors{"email": "Enter a valid email address."}, errs)
}

func TestReferralForm(t *testing.T) {
	c := NewChallenger([]byte("k"))
	token, answer := answered(c)
	f := ReferralForm{
		FirstName:       "Ana",
		LastName:        "Cruz",
		Email:           "ana@example.com",
		FriendFirstName: "Ben",
		FriendLastName:  "Lee",
		FriendEmail:     "ben@example.com",
		FriendPhone:     "0400 000 000",
		Course:          "NCLEX Live Review",
		Terms:           true,
		Token:           token,
		Answer:          answer,
	}
	require.Empty(t, f.Validate(c))

	l := f.Lead()
	assert.Equal(t, KindReferral, l.Kind)
	assert.Equal(t, "Ben Lee", l.FriendName)

	f.Terms = false
	f.FriendEmail = "ANA@example.com"
	errs := f.Validate(c)
	assert.Contains(t, errs, "terms")
	assert.Equal(t, "You can't refer yourself.", errs["friend_email"])
}

func TestReferralFormMessages(t *testing.T) {
	c := NewChallenger([]byte("k"))
	token, answer := answered(c)
	errs := ReferralForm{
		FirstName: "Ana", LastName: "Cruz", Email: "ana@example.com",
		Message: strings.Repeat("x", 5001), Token: token, Answer: answer,
	}.Validate(c)

	assert.Equal(t, FieldErrors{
		"friend_first_name": "Your friend's first name is required.",
		"friend_last_name":  "Your friend's last name is required.",
		"friend_email":      "Your friend's email is required.",
		"message":           "Message is too long.",
		"terms":             "Please accept the referral terms.",
	}, errs)
}

func TestContactFormMessageLimit(t *testing.T) {
	c := NewChallenger([]byte("k"))
	token, answer := answered(c)
	f := ContactForm{
		FirstName: "A", LastName: "B", Email: "a@example.com",
		Message: strings.Repeat("é", 5000), Token: token, Answer: answer,
	}
	assert.Empty(t, f.Validate(c), "the limit counts characters")

	f.Message += "!"
	assert.Equal(t, FieldErrors{"message": "Message is too long."}, f.Validate(c))
}

func TestFieldErrorsKeepsFirst(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("email", "first")
	errs.Add("email", "second")
	assert.Equal(t, "first", errs["email"])
}
