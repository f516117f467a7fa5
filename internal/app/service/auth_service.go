package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/common/security"
	"pharmacy_store/internal/domain/model"
	"pharmacy_store/internal/domain/repository"
)

type AuthService struct {
	userRepo   repository.UserRepository
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, bcryptCost int, logger *slog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type SignupRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`

	invalid castErrors
}

// UnmarshalJSON casts numbers and booleans to text; objects and arrays are
// kept as cast failures and reported by Signup.
func (r *SignupRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		FullName model.Text `json:"fullName"`
		Username model.Text `json:"username"`
		Email    model.Text `json:"email"`
		Password model.Text `json:"password"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = SignupRequest{
		FullName: raw.FullName.Value,
		Username: raw.Username.Value,
		Email:    raw.Email.Value,
		Password: raw.Password.Value,
	}
	r.invalid.check("fullName", raw.FullName)
	r.invalid.check("username", raw.Username)
	r.invalid.check("email", raw.Email)
	r.invalid.check("password", raw.Password)
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	invalid castErrors
}

func (r *LoginRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Username model.Text `json:"username"`
		Password model.Text `json:"password"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = LoginRequest{
		Username: raw.Username.Value,
		Password: raw.Password.Value,
	}
	r.invalid.check("username", raw.Username)
	r.invalid.check("password", raw.Password)
	return nil
}

type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Role    string `json:"role"`
}

// AdminSeed describes the admin account created at startup.
type AdminSeed struct {
	FullName string
	Username string
	Email    string
	Password string
}

// Signup stores a new customer. Any role in the request is ignored.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	if len(req.invalid) > 0 {
		v := model.NewValidationError("User")
		v.Add(req.invalid.messages()...)
		return nil, v
	}
	return s.createUser(ctx, req.FullName, req.Username, req.Email, req.Password, model.RoleCustomer)
}

// Login returns the user's id and role when username and password match a
// stored user. Unknown usernames and wrong passwords both yield ErrNotFound.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if len(req.invalid) > 0 {
		return nil, fmt.Errorf("failed to find user: %s: %w", req.invalid, common.ErrValidation)
	}
	if req.Username == "" || req.Password == "" {
		return nil, common.Errorf("invalid username or password: %w", common.ErrNotFound)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("invalid username or password: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.Errorf("invalid username or password: %w", common.ErrNotFound)
	}

	return &LoginResponse{Message: "Login successful", UserID: user.ID, Role: user.Role}, nil
}

// EnsureAdmin creates the seed admin unless a user with that username exists.
// It reports whether a user was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	_, err := s.userRepo.FindByUsername(ctx, seed.Username)
	if err == nil {
		s.logger.Info("admin user exists, skipping seed", "username", seed.Username)
		return false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return false, fmt.Errorf("checking admin user: %w", err)
	}

	email := seed.Email
	if email == "" {
		email = seed.Username + "@localhost"
	}
	user, err := s.createUser(ctx, seed.FullName, seed.Username, email, seed.Password, model.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("creating admin user: %w", err)
	}
	s.logger.Warn("seed admin account created", "username", user.Username, "user_id", user.ID)
	return true, nil
}

func (s *AuthService) createUser(ctx context.Context, fullName, username, email, password, role string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: s.now(),
	}

	if password != "" {
		hashed, err := security.HashPassword(password, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
