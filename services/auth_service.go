package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderboard/entity"
	"orderboard/repository"
	"orderboard/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles staff login and staff account management. Customers
// never authenticate.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: u}, nil
}

type RegisterStaffReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// RegisterStaff creates an owner, staff, or kitchen account.
func (s *AuthService) RegisterStaff(req *RegisterStaffReq) (*entity.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if !entity.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: %s (allowed: owner, staff, kitchen)", ErrInvalidRole, req.Role)
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := entity.User{
		Username: username,
		Password: string(hash),
		Role:     req.Role,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := s.userRepo.Create(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) GetProfile(id uint) (*entity.User, error) {
	u, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) ListStaff() ([]entity.User, error) {
	return s.userRepo.ListStaff()
}

type UpdateStaffReq struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	FullName *string `json:"fullName"`
	Role     *string `json:"role"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// UpdateStaff patches a staff or kitchen account. Owner accounts are
// immutable through this path.
func (s *AuthService) UpdateStaff(id uint, req *UpdateStaffReq) (*entity.User, error) {
	u, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}
	if u.Role == entity.RoleOwner {
		return nil, ErrOwnerImmutable
	}

	if req.Username != nil && strings.TrimSpace(*req.Username) != u.Username {
		username := strings.TrimSpace(*req.Username)
		count, err := s.userRepo.CountByUsername(username)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUsernameTaken
		}
		u.Username = username
	}
	if req.Role != nil {
		if *req.Role != entity.RoleStaff && *req.Role != entity.RoleKitchen {
			return nil, fmt.Errorf("%w: %s (allowed: staff, kitchen)", ErrInvalidRole, *req.Role)
		}
		u.Role = *req.Role
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
	}

	if err := s.userRepo.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) DeleteStaff(id uint) error {
	u, err := s.GetProfile(id)
	if err != nil {
		return err
	}
	if u.Role == entity.RoleOwner {
		return ErrOwnerImmutable
	}
	return s.userRepo.Delete(id)
}
