package repository

import (
	"campusnet/internal/models"
	"campusnet/internal/storage"
	"context"
	"errors"
)

// ErrLoadFallback сигнализирует, что сохраненная коллекция повреждена и
// вместо нее возвращены демо-данные. Ошибка восстановимая: данные пригодны
// к использованию, вызывающий решает, показывать ли уведомление.
var ErrLoadFallback = errors.New("сохраненные данные повреждены, использованы демо-данные")

// ErrNoSession - запись сессии отсутствует, пользователь анонимный.
var ErrNoSession = errors.New("сессия не найдена")

type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	ReplaceAll(ctx context.Context, posts []models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User, password string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type SessionRepository interface {
	CurrentUser(ctx context.Context) (*models.User, error)
	SaveSession(ctx context.Context, user *models.User) error
	ClearSession(ctx context.Context) error
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}

type Repository struct {
	Post    PostRepository
	User    UserRepository
	Session SessionRepository
}

func NewRepository(store storage.Storage) *Repository {
	return &Repository{
		Post:    NewPostRepository(store),
		User:    NewUserRepository(store),
		Session: NewSessionRepository(store),
	}
}
