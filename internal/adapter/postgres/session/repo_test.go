package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akarpov/resilience-backend/internal/adapter/postgres/session"
	"github.com/akarpov/resilience-backend/internal/adapter/postgres/testhelper"
	"github.com/akarpov/resilience-backend/internal/domain"
)

func newRepo(t *testing.T) (*session.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return session.New(pool), pool
}

func strPtr(s string) *string { return &s }

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.AssessmentSession{
		Name:         "Q3 resilience check",
		Assessor:     strPtr("alice"),
		Organization: strPtr("acme"),
		Notes:        strPtr("initial run"),
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil session ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}

	if got.Name != "Q3 resilience check" {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, "Q3 resilience check")
	}
	if got.Assessor == nil || *got.Assessor != "alice" {
		t.Errorf("Assessor mismatch: got %v, want %q", got.Assessor, "alice")
	}
	if got.Organization == nil || *got.Organization != "acme" {
		t.Errorf("Organization mismatch: got %v, want %q", got.Organization, "acme")
	}
	if got.Notes == nil || *got.Notes != "initial run" {
		t.Errorf("Notes mismatch: got %v, want %q", got.Notes, "initial run")
	}
}

func TestRepo_Create_OptionalFieldsNil(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.AssessmentSession{Name: "bare session"})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}

	if got.Assessor != nil {
		t.Errorf("expected nil Assessor, got %v", *got.Assessor)
	}
	if got.Organization != nil {
		t.Errorf("expected nil Organization, got %v", *got.Organization)
	}
	if got.Notes != nil {
		t.Errorf("expected nil Notes, got %v", *got.Notes)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_List_FilterByAssessor(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	// The container is shared between tests, so filter on a unique value.
	assessor := "assessor-" + uuid.New().String()[:8]

	for _, name := range []string{"first", "second"} {
		if _, err := repo.Create(ctx, domain.AssessmentSession{Name: name, Assessor: &assessor}); err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
	}
	if _, err := repo.Create(ctx, domain.AssessmentSession{Name: "other"}); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	got, err := repo.List(ctx, session.Filter{Assessor: &assessor})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	for _, s := range got {
		if s.Assessor == nil || *s.Assessor != assessor {
			t.Errorf("unexpected session in filtered list: %+v", s)
		}
	}
	names := map[string]bool{got[0].Name: true, got[1].Name: true}
	if !names["first"] || !names["second"] {
		t.Errorf("expected sessions %q and %q, got %v", "first", "second", names)
	}
}

func TestRepo_List_FilterByOrganization(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	org := "org-" + uuid.New().String()[:8]
	if _, err := repo.Create(ctx, domain.AssessmentSession{Name: "org session", Organization: &org}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.List(ctx, session.Filter{Organization: &org})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	if got[0].Name != "org session" {
		t.Errorf("Name mismatch: got %q", got[0].Name)
	}
}

func TestRepo_ExistingIDs(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, domain.AssessmentSession{Name: "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := repo.Create(ctx, domain.AssessmentSession{Name: "b"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	missing := uuid.New()

	found, err := repo.ExistingIDs(ctx, []uuid.UUID{a.ID, b.ID, missing})
	if err != nil {
		t.Fatalf("ExistingIDs: unexpected error: %v", err)
	}

	if !found[a.ID] || !found[b.ID] {
		t.Errorf("expected both created sessions to be found, got %v", found)
	}
	if found[missing] {
		t.Error("expected missing ID to be absent")
	}
}
