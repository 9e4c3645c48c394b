package senator

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is returned when a profile is missing required identity.
var ErrInvalidProfile = errors.New("invalid senator profile")

// Profile is the immutable identity of a senator, supplied at construction.
type Profile struct {
	Name    string `json:"name"`
	Faction string `json:"faction"`
}

// Validate checks the profile carries the identity the roster requires.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	}
	if p.Faction == "" {
		return fmt.Errorf("%w: empty faction for %q", ErrInvalidProfile, p.Name)
	}
	return nil
}

// String renders the profile for logs and prompts.
func (p Profile) String() string {
	return fmt.Sprintf("%s of the %s", p.Name, p.Faction)
}
