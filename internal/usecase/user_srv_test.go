package usecase

import (
	"context"
	"errors"
	"testing"

	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/pkg/password"

	"github.com/google/uuid"
)

func newTestUserService(repo *repository.Repository) UserService {
	return NewUserService(Deps{
		Repo:   repo,
		Hasher: password.NewHasher(testHashParams),
	}, testLogger())
}

func TestCreateStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("staff accounts start email-confirmed", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestUserService(repo)

		staff, err := svc.CreateStaff(ctx, &request.CreateStaffRequest{
			FirstName: "Front",
			LastName:  "Desk",
			Email:     "desk@example.com",
			Password:  "secret-pass",
			BirthDate: "1988-11-02",
			Role:      "staff",
		})
		if err != nil {
			t.Fatalf("CreateStaff: %v", err)
		}
		if staff.Role != "staff" {
			t.Errorf("Role = %q, want staff", staff.Role)
		}
		if !staff.IsVerified {
			t.Error("IsVerified = false for staff account, want true")
		}
	})

	t.Run("rejects the customer role", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestUserService(repo)

		_, err := svc.CreateStaff(ctx, &request.CreateStaffRequest{
			FirstName: "Front",
			LastName:  "Desk",
			Email:     "desk@example.com",
			Password:  "secret-pass",
			BirthDate: "1988-11-02",
			Role:      "customer",
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only the fields provided", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestUserService(repo)
		user := seedCustomer(t, repo)

		newFirst := "Jessica"
		newRole := "staff"
		updated, err := svc.UpdateUser(ctx, user.ID, &request.UserUpdateRequest{
			FirstName: &newFirst,
			Role:      &newRole,
		})
		if err != nil {
			t.Fatalf("UpdateUser: %v", err)
		}
		if updated.FirstName != "Jessica" {
			t.Errorf("FirstName = %q, want Jessica", updated.FirstName)
		}
		if updated.LastName != "Archer" {
			t.Errorf("LastName = %q, want Archer", updated.LastName)
		}
		if updated.Role != "staff" {
			t.Errorf("Role = %q, want staff", updated.Role)
		}
		if updated.Email != user.Email {
			t.Errorf("Email = %q changed, want %q", updated.Email, user.Email)
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestUserService(repo)

		name := "Nobody"
		_, err := svc.UpdateUser(ctx, uuid.New(), &request.UserUpdateRequest{FirstName: &name})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the account", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestUserService(repo)
		manager := seedCustomer(t, repo)
		target := seedCustomer(t, repo)

		if err := svc.DeleteUser(ctx, manager.ID, target.ID); err != nil {
			t.Fatalf("DeleteUser: %v", err)
		}

		if _, err := svc.Profile(ctx, target.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Profile after delete err = %v, want ErrNotFound", err)
		}
	})

	t.Run("refuses to delete the acting account", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestUserService(repo)
		manager := seedCustomer(t, repo)

		err := svc.DeleteUser(ctx, manager.ID, manager.ID)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	repo := testRepository(t)
	svc := newTestUserService(repo)

	for i := 0; i < 5; i++ {
		seedCustomer(t, repo)
	}

	page, err := svc.ListUsers(ctx, &request.PaginatedRequest{Page: 1, PerPage: 3})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(page.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(page.Data))
	}
	if page.Pagination.Total != 5 {
		t.Errorf("Total = %d, want 5", page.Pagination.Total)
	}
}
