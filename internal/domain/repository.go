package domain

import "context"

// RosterStore defines access methods for the intern roster.
type RosterStore interface {
	Get(ctx context.Context, id int) (Intern, error)
	List(ctx context.Context) ([]Intern, error)
	FindByEmail(ctx context.Context, email string) (Intern, error)
	Append(ctx context.Context, name, email string, donations int64) (Intern, error)
}
