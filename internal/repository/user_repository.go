package repository

import (
	"campusnet/internal/models"
	"campusnet/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const usersKey = "users"

type userRepository struct {
	store storage.Storage
}

func NewUserRepository(store storage.Storage) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	raw, err := r.store.GetItem(ctx, usersKey)
	if err != nil {
		if errors.Is(err, storage.ErrNoItem) {
			seed := SeedUsers()
			if saveErr := r.saveAll(ctx, seed); saveErr != nil {
				return seed, saveErr
			}
			return seed, nil
		}
		return SeedUsers(), fmt.Errorf("%w: %w", ErrLoadFallback, err)
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return SeedUsers(), fmt.Errorf("%w: %w", ErrLoadFallback, err)
	}

	return users, nil
}

func (r *userRepository) saveAll(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("ошибка сериализации пользователей: %w", err)
	}

	if err := r.store.SetItem(ctx, usersKey, string(data)); err != nil {
		return fmt.Errorf("ошибка при сохранении пользователей: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrLoadFallback) {
		return nil, err
	}

	for i := range users {
		if users[i].UserID == userID {
			return &users[i], nil
		}
	}

	return nil, fmt.Errorf("пользователь с ID %s не найден", userID)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrLoadFallback) {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}

	return nil, fmt.Errorf("пользователь с email %s не найден", email)
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	users, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrLoadFallback) {
		return err
	}

	for i := range users {
		if users[i].Email == user.Email {
			return fmt.Errorf("пользователь с email %s уже существует", user.Email)
		}
	}

	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	// create user id
	user.UserID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now()

	return r.saveAll(ctx, append(users, *user))
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный пароль")
	}

	return user, nil
}
