package service

import (
	"context"
	"fmt"

	"wholesale-admin/internal/domain"

	"go.uber.org/zap"
)

// UserAPI is the slice of the backend client the user service uses.
type UserAPI interface {
	Users(ctx context.Context) ([]domain.User, error)
	UpdateUserStatus(ctx context.Context, id, status string) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserService holds the store-account list for the admin user screens.
type UserService struct {
	api      UserAPI
	notifier Notifier
	logger   *zap.Logger

	List []domain.User
	Err  error
}

// NewUserService creates an empty user slice.
func NewUserService(api UserAPI, notifier Notifier, logger *zap.Logger) *UserService {
	return &UserService{api: api, notifier: notifier, logger: logger}
}

// Refresh fetches the full account list.
func (s *UserService) Refresh(ctx context.Context) error {
	list, err := s.api.Users(ctx)
	if err != nil {
		return s.fail(err, "Failed to load users")
	}
	s.List = list
	s.Err = nil
	return nil
}

// SetStatus updates an account's status; the stored record replaces the
// list entry with the same id.
func (s *UserService) SetStatus(ctx context.Context, id, status string) (domain.User, error) {
	updated, err := s.api.UpdateUserStatus(ctx, id, status)
	if err != nil {
		return domain.User{}, s.fail(err, "Failed to update user")
	}

	for i := range s.List {
		if s.List[i].ID == updated.ID {
			s.List[i] = updated
			break
		}
	}
	s.Err = nil
	s.notifier.Success("User status updated")
	return updated, nil
}

// Delete removes an account by id and filters it from the list.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return s.fail(err, "Failed to delete user")
	}

	kept := s.List[:0]
	for _, u := range s.List {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.List = kept
	s.Err = nil
	s.notifier.Success("User deleted")
	return nil
}

func (s *UserService) fail(err error, notice string) error {
	s.Err = err
	s.notifier.Error(notice)
	s.logger.Debug("User operation failed", zap.Error(err))
	return fmt.Errorf("%s: %w", notice, err)
}
