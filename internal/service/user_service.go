package service

import (
	"errors"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/repository"
	"github.com/artsemyn/toko-agung-computer-inventory-management/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	GetUsers(s *Session) ([]model.UserResponse, error)
	GetUserByID(s *Session, id uuid.UUID) (*model.UserResponse, error)
	CreateUser(s *Session, req *CreateUserRequest) (*model.UserResponse, error)
	UpdateUser(s *Session, id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error)
	ToggleUserActive(s *Session, id uuid.UUID) (*model.UserResponse, error)
	DeleteUser(s *Session, id uuid.UUID) error
}

type CreateUserRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Role     model.Role `json:"role" validate:"required,oneof=owner warehouse cashier"`
}

type UpdateUserRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password *string    `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	Role     model.Role `json:"role" validate:"required,oneof=owner warehouse cashier"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers(sess *Session) ([]model.UserResponse, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(sess *Session, id uuid.UUID) (*model.UserResponse, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) CreateUser(sess *Session, req *CreateUserRequest) (*model.UserResponse, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	response := user.ToResponse()
	return &response, nil
}

func (s *userService) UpdateUser(sess *Session, id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != user.Email {
		if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil && existing.ID != id {
			return nil, ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	response := user.ToResponse()
	return &response, nil
}

// ToggleUserActive flips the active flag. Operating on your own account is
// refused so an owner cannot lock themselves out.
func (s *userService) ToggleUserActive(sess *Session, id uuid.UUID) (*model.UserResponse, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}
	if sess.UserID == id {
		return nil, ErrSelfAction
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepo.SetActive(id, !user.IsActive); err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	response := user.ToResponse()
	return &response, nil
}

// DeleteUser is a soft delete: the row stays so StockLog/Transaction
// snapshots keep a valid user reference.
func (s *userService) DeleteUser(sess *Session, id uuid.UUID) error {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return err
	}
	if sess.UserID == id {
		return ErrSelfAction
	}

	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.userRepo.SetActive(id, false)
}
