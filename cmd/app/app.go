package app

import (
	"campusnet/internal/config"
	"campusnet/internal/database"
	"campusnet/internal/repository"
	"campusnet/internal/service"
	"campusnet/internal/storage"
	"log"
)

// App собирает зависимости: хранилище по выбранному бэкенду,
// репозитории поверх него и сервисы.
func App(cfg *config.Config) (storage.Storage, *repository.Repository, *service.Service, func()) {
	var store storage.Storage
	closer := func() {}

	switch cfg.Store.Backend {
	case "postgres":
		db, err := database.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Не удалось подключиться к БД: %v", err)
		}
		store = storage.NewPostgresStore(db.DB)
		closer = func() {
			if err := db.CloseDB(); err != nil {
				log.Printf("Ошибка при закрытии БД: %v", err)
			}
		}
	case "memory":
		store = storage.NewMemoryStore()
	default:
		store = storage.NewFileStore(cfg.Store.FilePath)
	}

	// enabling dependencies
	repo := repository.NewRepository(store)
	services := service.NewService(repo, cfg)

	return store, repo, services, closer
}
