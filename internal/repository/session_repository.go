package repository

import (
	"campusnet/internal/models"
	"campusnet/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const (
	sessionKey  = "user"
	darkModeKey = "darkMode"
)

type sessionRepository struct {
	store storage.Storage
}

func NewSessionRepository(store storage.Storage) SessionRepository {
	return &sessionRepository{store: store}
}

// CurrentUser читает единственную запись сессии. Отсутствующая или
// нечитаемая запись означает анонимного пользователя.
func (r *sessionRepository) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := r.store.GetItem(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, storage.ErrNoItem) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("ошибка при чтении сессии: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: запись сессии повреждена", ErrNoSession)
	}

	return &user, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("ошибка сериализации сессии: %w", err)
	}

	if err := r.store.SetItem(ctx, sessionKey, string(data)); err != nil {
		return fmt.Errorf("ошибка при сохранении сессии: %w", err)
	}

	return nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if err := r.store.RemoveItem(ctx, sessionKey); err != nil {
		return fmt.Errorf("ошибка при удалении сессии: %w", err)
	}

	return nil
}

func (r *sessionRepository) DarkMode(ctx context.Context) (bool, error) {
	raw, err := r.store.GetItem(ctx, darkModeKey)
	if err != nil {
		if errors.Is(err, storage.ErrNoItem) {
			return false, nil
		}
		return false, fmt.Errorf("ошибка при чтении настройки темы: %w", err)
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return false, nil
	}

	return enabled, nil
}

func (r *sessionRepository) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := r.store.SetItem(ctx, darkModeKey, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("ошибка при сохранении настройки темы: %w", err)
	}

	return nil
}
