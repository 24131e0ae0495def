package service

import "errors"

// Ошибки уровня бизнес-логики. Ни одна из них не фатальна: отказ в
// авторизации и валидации оставляет хранилище без изменений.
var (
	ErrAuthRequired     = errors.New("требуется аутентификация")
	ErrPermissionDenied = errors.New("доступ запрещен")
	ErrEmptyContent     = errors.New("пустое содержимое")
)
