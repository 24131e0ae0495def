package main

import (
	"campusnet/cmd/app"
	"campusnet/internal/config"
	"campusnet/internal/repository"
	"context"
	"fmt"
	"log"
)

// Принудительно наполняет хранилище демо-данными.
func main() {
	cfg := config.LoadConfig()

	store, repo, _, closer := app.App(cfg)
	defer closer()

	ctx := context.Background()

	if err := repo.Post.ReplaceAll(ctx, repository.SeedPosts()); err != nil {
		log.Fatalf("Ошибка при записи постов: %v", err)
	}

	// справочник пользователей пересоздается через первый List
	if err := store.RemoveItem(ctx, "users"); err != nil {
		log.Fatalf("Ошибка при очистке пользователей: %v", err)
	}
	users, err := repo.User.List(ctx)
	if err != nil {
		log.Fatalf("Ошибка при записи пользователей: %v", err)
	}

	posts, err := repo.Post.List(ctx)
	if err != nil {
		log.Fatalf("Ошибка при проверке постов: %v", err)
	}

	fmt.Printf("Хранилище наполнено: %d пользователей, %d постов\n", len(users), len(posts))
}
