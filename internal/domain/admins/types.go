package admins

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("admin not found")
	ErrDuplicateUsername = errors.New("an admin with that username already exists")
)

type Admin struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Password password `json:"-"`
}

// password only ever holds the bcrypt hash once persisted.
type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

// Hash exposes the stored hash for persistence.
func (p *password) Hash() []byte {
	return p.hash
}
