package service

import (
	"campusnet/internal/config"
	"campusnet/internal/models"
	"campusnet/internal/repository"
	"context"
	"errors"
	"sort"
	"time"
)

type FeedService interface {
	LoadFeed(ctx context.Context, filter models.FilterType, sortBy models.SortMode) ([]models.Post, error)
}

type feedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository, cfg *config.Config) FeedService {
	return &feedService{
		postRepo: postRepo,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoadFeed читает все посты, подставляет авторов из справочника
// пользователей (join при чтении, снимки не сохраняются) и собирает ленту.
// ErrLoadFallback от хранилища пробрасывается вместе с пригодными данными.
func (s *feedService) LoadFeed(ctx context.Context, filter models.FilterType, sortBy models.SortMode) ([]models.Post, error) {
	// имитация сетевой задержки, как в исходном приложении
	if s.cfg != nil && s.cfg.SimulatedLatency > 0 {
		time.Sleep(s.cfg.SimulatedLatency)
	}

	posts, loadErr := s.postRepo.List(ctx)
	if loadErr != nil && !errors.Is(loadErr, repository.ErrLoadFallback) {
		return nil, loadErr
	}

	users, err := s.userRepo.List(ctx)
	if err != nil && !errors.Is(err, repository.ErrLoadFallback) {
		return nil, err
	}

	byID := make(map[string]models.User, len(users))
	for _, user := range users {
		user.PasswordHash = ""
		byID[user.UserID] = user
	}

	for i := range posts {
		if author, ok := byID[posts[i].AuthorID]; ok {
			authorCopy := author
			posts[i].Author = &authorCopy
		}
		for j := range posts[i].Comments {
			if author, ok := byID[posts[i].Comments[j].AuthorID]; ok {
				authorCopy := author
				posts[i].Comments[j].Author = &authorCopy
			}
		}
	}

	return Assemble(posts, filter, sortBy), loadErr
}

// Assemble - чистая функция сборки ленты: фильтр по роли автора и
// устойчивая сортировка. Вход не изменяется, равные элементы сохраняют
// исходный порядок.
func Assemble(posts []models.Post, filter models.FilterType, sortBy models.SortMode) []models.Post {
	out := make([]models.Post, 0, len(posts))

	for _, post := range posts {
		switch filter {
		case models.FilterSeniors:
			// посты без подставленного автора в ролевые выборки не попадают
			if post.Author == nil || post.Author.Role != models.RoleSenior {
				continue
			}
		case models.FilterJuniors:
			if post.Author == nil || post.Author.Role != models.RoleJunior {
				continue
			}
		}
		out = append(out, post)
	}

	switch sortBy {
	case models.SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return len(out[i].Likes) > len(out[j].Likes)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}
