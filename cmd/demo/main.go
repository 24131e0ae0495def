package main

import (
	"campusnet/cmd/app"
	"campusnet/internal/config"
	"campusnet/internal/models"
	"campusnet/internal/repository"
	"campusnet/internal/service"
	"context"
	"errors"
	"fmt"
	"log"
)

// Сценарий одной сессии: вход, лента с фильтрами и сортировками,
// лайк, комментарий, попытка удалить чужой пост, удаление своего.
func main() {
	cfg := config.LoadConfig()

	_, repo, services, closer := app.App(cfg)
	defer closer()

	ctx := context.Background()

	user, err := services.Auth.Login(ctx, "john@example.com", "password123")
	if err != nil {
		log.Fatalf("Ошибка входа: %v", err)
	}
	fmt.Printf("Вошли как %s (%s)\n", user.Name, user.Role)

	darkMode, _ := repo.Session.DarkMode(ctx)
	fmt.Printf("Темная тема: %v\n\n", darkMode)

	feed := loadFeed(ctx, services, models.FilterAll, models.SortLatest)
	printFeed("Вся лента, новые сверху", feed)

	printFeed("Только seniors", loadFeed(ctx, services, models.FilterSeniors, models.SortLatest))
	printFeed("По популярности", loadFeed(ctx, services, models.FilterAll, models.SortPopular))

	// пост другого автора для лайка и комментария
	var other *models.Post
	for i := range feed {
		if feed[i].AuthorID != user.UserID {
			other = &feed[i]
			break
		}
	}
	if other == nil {
		log.Fatal("В ленте нет чужих постов")
	}

	liked, err := services.Post.ToggleLike(ctx, other.PostID)
	if err != nil {
		log.Fatalf("Ошибка лайка: %v", err)
	}
	fmt.Printf("Лайкнули пост %s, лайков теперь: %d\n", liked.PostID, len(liked.Likes))

	commented, err := services.Post.AddComment(ctx, other.PostID, "Отличный пост, спасибо!")
	if err != nil {
		log.Fatalf("Ошибка комментария: %v", err)
	}
	fmt.Printf("Комментариев у поста %s: %d\n", commented.PostID, len(commented.Comments))

	err = services.Post.DeletePost(ctx, other.PostID)
	if errors.Is(err, service.ErrPermissionDenied) {
		fmt.Println("Удаление чужого поста отклонено:", err)
	} else if err != nil {
		log.Fatalf("Неожиданная ошибка удаления: %v", err)
	}

	created, err := services.Post.CreatePost(ctx, service.CreatePostRequest{
		Content: "Всем привет с демо-запуска! #CampusLife",
	})
	if err != nil {
		log.Fatalf("Ошибка создания поста: %v", err)
	}
	fmt.Printf("Создан пост %s с тегами %v\n", created.PostID, created.Tags)

	if err := services.Post.DeletePost(ctx, created.PostID); err != nil {
		log.Fatalf("Ошибка удаления своего поста: %v", err)
	}
	fmt.Println("Свой пост удален")

	if err := services.Auth.Logout(ctx); err != nil {
		log.Fatalf("Ошибка выхода: %v", err)
	}
	fmt.Println("Сессия завершена")
}

func loadFeed(ctx context.Context, services *service.Service, filter models.FilterType, sortBy models.SortMode) []models.Post {
	feed, err := services.Feed.LoadFeed(ctx, filter, sortBy)
	if err != nil {
		if errors.Is(err, repository.ErrLoadFallback) {
			fmt.Println("Внимание: данные были повреждены, показаны демо-данные")
		} else {
			log.Fatalf("Ошибка загрузки ленты: %v", err)
		}
	}
	return feed
}

func printFeed(title string, feed []models.Post) {
	fmt.Printf("== %s ==\n", title)
	for _, post := range feed {
		author := post.AuthorID
		if post.Author != nil {
			author = fmt.Sprintf("%s (%s)", post.Author.Name, post.Author.Role)
		}
		fmt.Printf("  [%s] %s | лайков: %d, комментариев: %d\n",
			post.CreatedAt.Format("2006-01-02 15:04"), author, len(post.Likes), len(post.Comments))
	}
	fmt.Println()
}
