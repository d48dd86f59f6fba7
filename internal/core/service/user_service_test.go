package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

type stubUserRepo struct {
	byID map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Get(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// Upsert mirrors the real repository: identity fields refresh, role and
// active flag survive.
func (r *stubUserRepo) Upsert(_ context.Context, in ports.UpsertUserInput) (*domain.User, error) {
	if u, ok := r.byID[in.ID]; ok {
		u.Email = in.Email
		u.FirstName = in.FirstName
		u.LastName = in.LastName
		u.ProfileImageURL = in.ProfileImageURL
		u.UpdatedAt = time.Now().UTC()
		clone := *u
		return &clone, nil
	}
	u := &domain.User{
		ID:              in.ID,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ProfileImageURL: in.ProfileImageURL,
		Role:            domain.RoleFreelancer,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	r.byID[in.ID] = u
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsActive = active
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func TestProvision_NewUserDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	u, err := svc.Provision(context.Background(), ports.UpsertUserInput{
		ID:    "u1",
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if u.Role != domain.RoleFreelancer {
		t.Fatalf("new user role: got %s want freelancer", u.Role)
	}
	if !u.IsActive {
		t.Fatalf("new user must be active")
	}
}

func TestProvision_PreservesRoleAndActive(t *testing.T) {
	repo := newStubUserRepo()
	repo.byID["u1"] = &domain.User{ID: "u1", Role: domain.RoleAdmin, IsActive: false}
	svc := NewUserService(repo, zerolog.Nop())

	u, err := svc.Provision(context.Background(), ports.UpsertUserInput{
		ID:    "u1",
		Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if u.Role != domain.RoleAdmin {
		t.Fatalf("role must survive upsert, got %s", u.Role)
	}
	if u.IsActive {
		t.Fatalf("active flag must survive upsert")
	}
	if u.Email != "new@example.com" {
		t.Fatalf("identity fields must refresh, got %s", u.Email)
	}
}

func TestUpdateRole_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	repo.byID["u1"] = &domain.User{ID: "u1", Role: domain.RoleFreelancer, IsActive: true}
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.UpdateRole(context.Background(), "u1", "superuser")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if repo.byID["u1"].Role != domain.RoleFreelancer {
		t.Fatalf("role must be unchanged after rejection")
	}
}

func TestDeactivateThenActivate(t *testing.T) {
	repo := newStubUserRepo()
	repo.byID["u1"] = &domain.User{ID: "u1", Role: domain.RoleFreelancer, IsActive: true}
	svc := NewUserService(repo, zerolog.Nop())

	u, err := svc.Deactivate(context.Background(), "u1")
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if u.IsActive {
		t.Fatalf("expected inactive user")
	}

	u, err = svc.Activate(context.Background(), "u1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !u.IsActive {
		t.Fatalf("expected active user")
	}
}
