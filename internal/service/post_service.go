package service

import (
	"campusnet/internal/config"
	"campusnet/internal/models"
	"campusnet/internal/repository"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const maxImagesPerPost = 4

var hashtagRegexp = regexp.MustCompile(`#[a-zA-Z0-9_]+`)

type CreatePostRequest struct {
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	ToggleLike(ctx context.Context, postID string) (*models.Post, error)
	AddComment(ctx context.Context, postID, text string) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type postService struct {
	postRepo    repository.PostRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewPostService(postRepo repository.PostRepository, sessionRepo repository.SessionRepository, cfg *config.Config) PostService {
	return &postService{
		postRepo:    postRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// currentUser возвращает ErrAuthRequired для анонимного вызова,
// до какого-либо обращения к хранилищу постов.
func (p *postService) currentUser(ctx context.Context) (*models.User, error) {
	user, err := p.sessionRepo.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil, ErrAuthRequired
		}
		return nil, err
	}
	return user, nil
}

func extractHashtags(text string) []string {
	tags := hashtagRegexp.FindAllString(text, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// clonePost делает независимую копию поста: мутации возвращают новое
// значение, вид и хранилище не делят слайсы.
func clonePost(post *models.Post) *models.Post {
	clone := *post

	clone.Likes = append([]string(nil), post.Likes...)
	clone.Tags = append([]string(nil), post.Tags...)
	clone.Images = append([]string(nil), post.Images...)

	clone.Comments = make([]models.Comment, len(post.Comments))
	for i, comment := range post.Comments {
		comment.Likes = append([]string(nil), comment.Likes...)
		clone.Comments[i] = comment
	}

	return &clone
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	user, err := p.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" && len(req.Images) == 0 {
		return nil, ErrEmptyContent
	}

	if len(req.Images) > maxImagesPerPost {
		return nil, fmt.Errorf("можно прикрепить не более %d изображений", maxImagesPerPost)
	}

	posts, err := p.postRepo.List(ctx)
	if err != nil && !errors.Is(err, repository.ErrLoadFallback) {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		PostID:    repository.NextEntryID(posts),
		Content:   content,
		Images:    append([]string(nil), req.Images...),
		CreatedAt: now,
		UpdatedAt: now,
		AuthorID:  user.UserID,
		Likes:     []string{},
		Comments:  []models.Comment{},
		Tags:      extractHashtags(content),
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return post, nil
}

// ToggleLike переключает отметку текущего пользователя на посте.
// Повторный вызов возвращает множество лайков в исходное состояние.
func (p *postService) ToggleLike(ctx context.Context, postID string) (*models.Post, error) {
	user, err := p.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	updated := clonePost(post)

	liked := false
	for i, likerID := range updated.Likes {
		if likerID == user.UserID {
			updated.Likes = append(updated.Likes[:i], updated.Likes[i+1:]...)
			liked = true
			break
		}
	}
	if !liked {
		updated.Likes = append(updated.Likes, user.UserID)
	}

	if err := p.postRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("ошибка при сохранении лайка: %w", err)
	}

	return updated, nil
}

func (p *postService) AddComment(ctx context.Context, postID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}

	user, err := p.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	posts, err := p.postRepo.List(ctx)
	if err != nil && !errors.Is(err, repository.ErrLoadFallback) {
		return nil, err
	}

	comment := models.Comment{
		CommentID: repository.NextEntryID(posts),
		Content:   text,
		CreatedAt: time.Now(),
		AuthorID:  user.UserID,
		PostID:    post.PostID,
		Likes:     []string{},
	}

	// комментарии только дописываются в конец, порядок вставки = порядок показа
	updated := clonePost(post)
	updated.Comments = append(updated.Comments, comment)

	if err := p.postRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("ошибка при сохранении комментария: %w", err)
	}

	return updated, nil
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	user, err := p.currentUser(ctx)
	if err != nil {
		return err
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	// удалять пост может только его автор
	if post.AuthorID != user.UserID {
		return ErrPermissionDenied
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	return nil
}
