package service

import (
	"campusnet/internal/config"
	"campusnet/internal/models"
	"campusnet/internal/repository"
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type SignupRequest struct {
	Name       string      `json:"name" validate:"required,min=2"`
	Email      string      `json:"email" validate:"required,email"`
	Password   string      `json:"password" validate:"required,min=8"`
	Role       models.Role `json:"role" validate:"required,oneof=junior senior"`
	Department string      `json:"department" validate:"required"`
	Year       string      `json:"year" validate:"required"`
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// CredentialChecker - шов между мок-аутентификацией исходного приложения
// и настоящей проверкой пароля. Выбор реализации задается AUTH_MODE.
type CredentialChecker interface {
	Check(ctx context.Context, email, password string) (*models.User, error)
}

// mockChecker принимает любые учетные данные. Для незнакомого email
// фабрикуется сессия на основе первого демо-профиля, как в исходнике.
type mockChecker struct {
	userRepo repository.UserRepository
}

func (c *mockChecker) Check(ctx context.Context, email, password string) (*models.User, error) {
	user, err := c.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}

	fabricated := repository.SeedUsers()[0]
	fabricated.Email = email
	return &fabricated, nil
}

// bcryptChecker сверяет пароль с сохраненным bcrypt-хешем.
type bcryptChecker struct {
	userRepo repository.UserRepository
}

func (c *bcryptChecker) Check(ctx context.Context, email, password string) (*models.User, error) {
	return c.userRepo.VerifyPassword(ctx, email, password)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	checker     CredentialChecker
	validate    *validator.Validate
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	var checker CredentialChecker
	if cfg != nil && cfg.AuthMode == "bcrypt" {
		checker = &bcryptChecker{userRepo: userRepo}
	} else {
		checker = &mockChecker{userRepo: userRepo}
	}

	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		checker:     checker,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("неверные данные регистрации: %w", err)
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		Year:       req.Year,
	}

	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return s.startSession(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	req := struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}{Email: email, Password: password}

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("неверные данные входа: %w", err)
	}

	user, err := s.checker.Check(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("ошибка аутентификации: %w", err)
	}

	return s.startSession(ctx, user)
}

// startSession пишет запись сессии без хеша пароля.
func (s *authService) startSession(ctx context.Context, user *models.User) (*models.User, error) {
	sessionUser := *user
	sessionUser.PasswordHash = ""

	if err := s.sessionRepo.SaveSession(ctx, &sessionUser); err != nil {
		return nil, fmt.Errorf("ошибка при сохранении сессии: %w", err)
	}

	return &sessionUser, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessionRepo.ClearSession(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.sessionRepo.CurrentUser(ctx)
}
