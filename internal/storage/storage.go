package storage

import (
	"context"
	"errors"
)

// ErrNoItem возвращается, когда по ключу ничего не сохранено.
var ErrNoItem = errors.New("значение по ключу не найдено")

// Storage - durable key-value storage с семантикой localStorage:
// строковые значения по строковым ключам, запись перезаписывает целиком.
// Конкурентные записи из разных процессов не координируются (last-write-wins).
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}
