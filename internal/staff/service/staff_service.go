package service

import (
	"context"
	"strings"

	"github.com/ridloal/pos-web-client/internal/platform/format"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/posapi"
	posdomain "github.com/ridloal/pos-web-client/internal/posapi/domain"
	"github.com/ridloal/pos-web-client/internal/staff/domain"
)

type StaffService interface {
	Users(ctx context.Context) (*domain.UserTable, error)
	SaveUser(ctx context.Context, input domain.UserInput) (string, error)
	DeleteUser(ctx context.Context, userID string) (string, error)
}

type staffServiceImpl struct {
	userAPI posapi.UserAPI
}

func NewStaffService(ua posapi.UserAPI) StaffService {
	return &staffServiceImpl{userAPI: ua}
}

// Users lists staff accounts. The users endpoint omits success, so only a
// backend error text marks a failed load.
func (s *staffServiceImpl) Users(ctx context.Context) (*domain.UserTable, error) {
	resp, err := s.userAPI.GetUsers(ctx)
	if err != nil {
		logger.Error("StaffService.Users: failed to load users", err)
		return nil, err
	}
	if !resp.Success && resp.Error != "" {
		return &domain.UserTable{Error: "Error: " + resp.Error}, nil
	}
	return &domain.UserTable{Rows: resp.Users}, nil
}

func validRole(role string) bool {
	for _, r := range domain.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s *staffServiceImpl) SaveUser(ctx context.Context, input domain.UserInput) (string, error) {
	req := posdomain.UserRequest{
		Username: strings.TrimSpace(input.Username),
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Role:     strings.TrimSpace(input.Role),
		Password: input.Password,
	}
	if req.Role == "" {
		req.Role = domain.RoleUser
	}

	switch {
	case req.Username == "":
		return "", posapi.Invalid("Please enter a username.")
	case req.Name == "":
		return "", posapi.Invalid("Please enter a name.")
	case req.Email != "" && !format.ValidateEmail(req.Email):
		return "", posapi.Invalid("Please enter a valid email address.")
	case !validRole(req.Role):
		return "", posapi.Invalid("Please select a valid role.")
	case input.ID == "" && req.Password == "":
		return "", posapi.Invalid("Please enter a password.")
	}

	if input.ID != "" {
		resp, err := s.userAPI.UpdateUser(ctx, input.ID, req)
		return posapi.Outcome(resp, err, "User updated successfully", "Error saving user")
	}
	resp, err := s.userAPI.CreateUser(ctx, req)
	return posapi.Outcome(resp, err, "User created successfully", "Error saving user")
}

func (s *staffServiceImpl) DeleteUser(ctx context.Context, userID string) (string, error) {
	resp, err := s.userAPI.DeleteUser(ctx, userID)
	return posapi.Outcome(resp, err, "User deleted successfully", "Error deleting user")
}
