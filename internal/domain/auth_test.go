package domain

import (
	"context"
	"errors"
	"testing"
)

type stubRoster struct {
	interns []Intern
	err     error
}

func (s stubRoster) Get(context.Context, int) (Intern, error) { return Intern{}, ErrNotFound }

func (s stubRoster) List(context.Context) ([]Intern, error) { return s.interns, nil }

func (s stubRoster) FindByEmail(_ context.Context, email string) (Intern, error) {
	if s.err != nil {
		return Intern{}, s.err
	}
	for _, in := range s.interns {
		if in.Email == email {
			return in, nil
		}
	}
	return Intern{}, ErrNotFound
}

func (s stubRoster) Append(context.Context, string, string, int64) (Intern, error) {
	return Intern{}, errors.New("not supported")
}

func TestAuthenticate(t *testing.T) {
	store := stubRoster{interns: []Intern{
		NewIntern(1, "Shiva", "shiv@example.com", 15420),
		NewIntern(2, "Shiva Dup", "shiv@example.com", 0),
	}}
	ctx := context.Background()

	got, err := Authenticate(ctx, store, "shiv@example.com", MockPassword)
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("Authenticate() returned id %d, want first match 1", got.ID)
	}

	if _, err := Authenticate(ctx, store, "shiv@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := Authenticate(ctx, store, "nobody@example.com", MockPassword); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticatePropagatesStoreFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Authenticate(context.Background(), stubRoster{err: boom}, "a@example.com", MockPassword)
	if !errors.Is(err, boom) || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate() error = %v, want wrapped store failure", err)
	}
}
