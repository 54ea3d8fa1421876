package domain

import (
	"context"
	"errors"
	"fmt"
)

// MockPassword is the single password accepted for every account.
const MockPassword = "password123"

// Authenticate resolves the intern for email when password matches MockPassword.
func Authenticate(ctx context.Context, store RosterStore, email, password string) (Intern, error) {
	intern, err := store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Intern{}, ErrInvalidCredentials
		}
		return Intern{}, fmt.Errorf("find intern by email: %w", err)
	}
	if password != MockPassword {
		return Intern{}, ErrInvalidCredentials
	}
	return intern, nil
}
