package repository

import (
	"campusnet/internal/models"
	"campusnet/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const postsKey = "posts"

type PostRepositoryImpl struct {
	store storage.Storage
}

func NewPostRepository(store storage.Storage) *PostRepositoryImpl {
	return &PostRepositoryImpl{store: store}
}

// NextEntryID генерирует идентификатор поста или комментария: миллисекунды
// текущего времени, с инкрементом до уникальности среди всех идентификаторов
// постов и комментариев в коллекции на момент присвоения.
func NextEntryID(posts []models.Post) string {
	taken := make(map[string]struct{})
	for _, post := range posts {
		taken[post.PostID] = struct{}{}
		for _, comment := range post.Comments {
			taken[comment.CommentID] = struct{}{}
		}
	}

	ms := time.Now().UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for {
		if _, exists := taken[id]; !exists {
			return id
		}
		ms++
		id = strconv.FormatInt(ms, 10)
	}
}

func (r *PostRepositoryImpl) List(ctx context.Context) ([]models.Post, error) {
	raw, err := r.store.GetItem(ctx, postsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNoItem) {
			// first run: populate the store with sample posts
			seed := SeedPosts()
			if saveErr := r.ReplaceAll(ctx, seed); saveErr != nil {
				return seed, saveErr
			}
			return seed, nil
		}
		return SeedPosts(), fmt.Errorf("%w: %w", ErrLoadFallback, err)
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return SeedPosts(), fmt.Errorf("%w: %w", ErrLoadFallback, err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ReplaceAll(ctx context.Context, posts []models.Post) error {
	// денормализованные снимки авторов не сохраняются, join делается при чтении
	stripped := make([]models.Post, len(posts))
	for i, post := range posts {
		post.Author = nil
		if post.Comments != nil {
			comments := make([]models.Comment, len(post.Comments))
			for j, comment := range post.Comments {
				comment.Author = nil
				comments[j] = comment
			}
			post.Comments = comments
		}
		stripped[i] = post
	}

	data, err := json.Marshal(stripped)
	if err != nil {
		return fmt.Errorf("ошибка сериализации постов: %w", err)
	}

	if err := r.store.SetItem(ctx, postsKey, string(data)); err != nil {
		return fmt.Errorf("ошибка при сохранении постов: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	posts, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrLoadFallback) {
		return nil, err
	}

	for i := range posts {
		if posts[i].PostID == postID {
			return &posts[i], nil
		}
	}

	return nil, fmt.Errorf("пост с ID %s не найден", postID)
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	posts, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrLoadFallback) {
		return err
	}

	if post.PostID == "" {
		post.PostID = NextEntryID(posts)
	}

	// новый пост встает в начало коллекции
	updated := append([]models.Post{*post}, posts...)

	return r.ReplaceAll(ctx, updated)
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	posts, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrLoadFallback) {
		return err
	}

	found := false
	for i := range posts {
		if posts[i].PostID == post.PostID {
			posts[i] = *post
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("пост с ID %s не найден", post.PostID)
	}

	return r.ReplaceAll(ctx, posts)
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	posts, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrLoadFallback) {
		return err
	}

	updated := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.PostID != postID {
			updated = append(updated, post)
		}
	}

	if len(updated) == len(posts) {
		return errors.New("пост не найден")
	}

	return r.ReplaceAll(ctx, updated)
}
