package repo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"internportal/internal/domain"
)

func TestRosterRepositorySeedOrder(t *testing.T) {
	r := NewRosterRepository(DefaultSeed())
	list, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []domain.Intern{
		{ID: 1, Name: "Shiva", Email: "shiv@example.com", ReferralCode: "shiva2025", DonationsRaised: 15420},
		{ID: 2, Name: "Sarah", Email: "sara@example.com", ReferralCode: "sarah2025", DonationsRaised: 12800},
		{ID: 3, Name: "Vishnu", Email: "vishnu@example.com", ReferralCode: "vishnu2025", DonationsRaised: 9650},
		{ID: 4, Name: "Ram", Email: "ram@example.com", ReferralCode: "ram2025", DonationsRaised: 8200},
		{ID: 5, Name: "Krishna", Email: "krishna@example.com", ReferralCode: "krishna2025", DonationsRaised: 7100},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRosterRepositoryGet(t *testing.T) {
	r := NewRosterRepository(DefaultSeed())
	ctx := context.Background()

	in, err := r.Get(ctx, 3)
	if err != nil || in.Name != "Vishnu" {
		t.Fatalf("Get(3) = %+v, %v", in, err)
	}
	if _, err := r.Get(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get(42) error = %v, want ErrNotFound", err)
	}
}

func TestRosterRepositoryFindByEmail(t *testing.T) {
	r := NewRosterRepository(DefaultSeed())
	ctx := context.Background()

	if _, err := r.Append(ctx, "Ram Two", "ram@example.com", 0); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	in, err := r.FindByEmail(ctx, "ram@example.com")
	if err != nil || in.ID != 4 {
		t.Fatalf("FindByEmail() = %+v, %v; want first match id 4", in, err)
	}
	if _, err := r.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("FindByEmail(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRosterRepositoryAppend(t *testing.T) {
	r := NewRosterRepository(DefaultSeed())
	ctx := context.Background()

	before, _ := r.List(ctx)
	in, err := r.Append(ctx, "Asha Rao", "asha@example.com", 0)
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	want := domain.Intern{ID: len(before) + 1, Name: "Asha Rao", Email: "asha@example.com", ReferralCode: "asharao2025"}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("Append() mismatch (-want +got):\n%s", diff)
	}
	if got, err := r.Get(ctx, in.ID); err != nil || got != in {
		t.Fatalf("Get(%d) = %+v, %v", in.ID, got, err)
	}
}

func TestRosterRepositoryListIsCopy(t *testing.T) {
	r := NewRosterRepository(DefaultSeed())
	ctx := context.Background()

	list, _ := r.List(ctx)
	list[0].DonationsRaised = 0

	again, _ := r.List(ctx)
	if again[0].DonationsRaised != 15420 || len(again) != 5 {
		t.Fatalf("List() exposed internal state: %+v", again)
	}
}

func TestRosterRepositoryConcurrentAppendUniqueIDs(t *testing.T) {
	r := NewRosterRepository(nil)
	ctx := context.Background()

	const n = 64
	var wg sync.WaitGroup
	idsCh := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in, err := r.Append(ctx, "Intern", "intern@example.com", 0)
			if err != nil {
				t.Errorf("Append() error: %v", err)
				return
			}
			idsCh <- in.ID
		}()
	}
	wg.Wait()
	close(idsCh)

	seen := make(map[int]bool, n)
	for id := range idsCh {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	for id := 1; id <= n; id++ {
		if !seen[id] {
			t.Fatalf("missing id %d", id)
		}
	}
}
