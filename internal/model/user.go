package model

import (
	"fmt"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User is the persisted account record. Password holds the bcrypt hash and
// must never be serialized to clients.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Password       string `json:"-"`
	Gender         Gender `json:"gender"`
	ProfilePicture string `json:"profilePicture"`
}

// NewUser builds a user with a fresh id and a profile picture derived from
// username and gender. The password must already be hashed by the caller.
func NewUser(username, name, hashedPassword string, gender Gender) *User {
	return &User{
		ID:             uuid.NewString(),
		Username:       username,
		Name:           name,
		Password:       hashedPassword,
		Gender:         gender,
		ProfilePicture: ProfilePictureURL(username, gender),
	}
}

// ProfilePictureURL returns one of the two fixed avatar templates.
// https://avatar-placeholder.iran.liara.run/
func ProfilePictureURL(username string, gender Gender) string {
	if gender == GenderMale {
		return fmt.Sprintf("https://avatar.iran.liara.run/public/boy?username=%s", username)
	}
	return fmt.Sprintf("https://avatar.iran.liara.run/public/girl?username=%s", username)
}
