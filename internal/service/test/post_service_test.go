package test

import (
	"campusnet/internal/config"
	"campusnet/internal/models"
	"campusnet/internal/repository"
	"campusnet/internal/service"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostService(postRepo *MockPostRepository, sessionRepo *MockSessionRepository) service.PostService {
	return service.NewPostService(postRepo, sessionRepo, &config.Config{})
}

func samplePost() *models.Post {
	return &models.Post{
		PostID:    "1",
		Content:   "Sample post",
		CreatedAt: time.Date(2023, 8, 10, 14, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2023, 8, 10, 14, 30, 0, 0, time.UTC),
		AuthorID:  "1",
		Likes:     []string{"4"},
		Comments: []models.Comment{
			{CommentID: "10", Content: "First", AuthorID: "4", PostID: "1", Likes: []string{}},
		},
		Tags: []string{},
	}
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("Анонимный вызов отклоняется без обращения к постам", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("CurrentUser", mock.Anything).Return(nil, repository.ErrNoSession)

		_, err := newPostService(postRepo, sessionRepo).ToggleLike(ctx, "1")

		assert.ErrorIs(t, err, service.ErrAuthRequired)
		postRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Двойное переключение возвращает исходное множество лайков", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		user := models.User{UserID: "2", Name: "Jane Smith", Role: models.RoleJunior}
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)
		postRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := newPostService(postRepo, sessionRepo)

		base := samplePost()
		postRepo.On("GetByID", mock.Anything, "1").Return(base, nil).Once()

		first, err := svc.ToggleLike(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, []string{"4", "2"}, first.Likes)

		postRepo.On("GetByID", mock.Anything, "1").Return(first, nil).Once()

		second, err := svc.ToggleLike(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, []string{"4"}, second.Likes)
	})

	t.Run("Мутация не трогает исходный пост", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		user := models.User{UserID: "2"}
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)
		postRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		base := samplePost()
		postRepo.On("GetByID", mock.Anything, "1").Return(base, nil)

		updated, err := newPostService(postRepo, sessionRepo).ToggleLike(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, []string{"4"}, base.Likes)
		assert.Equal(t, []string{"4", "2"}, updated.Likes)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Пустой текст отклоняется до каких-либо обращений", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)

		_, err := newPostService(postRepo, sessionRepo).AddComment(ctx, "1", "   \t  ")

		assert.ErrorIs(t, err, service.ErrEmptyContent)
		sessionRepo.AssertNotCalled(t, "CurrentUser", mock.Anything)
		postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Анонимный вызов отклоняется", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("CurrentUser", mock.Anything).Return(nil, repository.ErrNoSession)

		_, err := newPostService(postRepo, sessionRepo).AddComment(ctx, "1", "Привет!")

		assert.ErrorIs(t, err, service.ErrAuthRequired)
		postRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Комментарий дописывается последним", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		user := models.User{UserID: "2", Name: "Jane Smith"}
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)

		base := samplePost()
		postRepo.On("GetByID", mock.Anything, "1").Return(base, nil)
		postRepo.On("List", mock.Anything).Return([]models.Post{*base}, nil)
		postRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := newPostService(postRepo, sessionRepo).AddComment(ctx, "1", "Second!")

		require.NoError(t, err)
		require.Len(t, updated.Comments, 2)

		last := updated.Comments[1]
		assert.Equal(t, "Second!", last.Content)
		assert.Equal(t, "2", last.AuthorID)
		assert.Equal(t, "1", last.PostID)
		assert.NotEmpty(t, last.CommentID)
		assert.NotEqual(t, "10", last.CommentID)

		// исходный пост не изменился
		assert.Len(t, base.Comments, 1)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Не автор получает отказ, хранилище не меняется", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		user := models.User{UserID: "2"}
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)
		postRepo.On("GetByID", mock.Anything, "1").Return(samplePost(), nil)

		err := newPostService(postRepo, sessionRepo).DeletePost(ctx, "1")

		assert.ErrorIs(t, err, service.ErrPermissionDenied)
		postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Автор удаляет свой пост", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		user := models.User{UserID: "1"}
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)
		postRepo.On("GetByID", mock.Anything, "1").Return(samplePost(), nil)
		postRepo.On("Delete", mock.Anything, "1").Return(nil)

		err := newPostService(postRepo, sessionRepo).DeletePost(ctx, "1")

		assert.NoError(t, err)
		postRepo.AssertCalled(t, "Delete", mock.Anything, "1")
	})

	t.Run("Анонимный вызов отклоняется", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("CurrentUser", mock.Anything).Return(nil, repository.ErrNoSession)

		err := newPostService(postRepo, sessionRepo).DeletePost(ctx, "1")

		assert.ErrorIs(t, err, service.ErrAuthRequired)
	})
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	user := models.User{UserID: "2", Name: "Jane Smith", Role: models.RoleJunior}

	t.Run("Пост с хештегами создается и встает в хранилище", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)
		postRepo.On("List", mock.Anything).Return([]models.Post{}, nil)

		var created *models.Post
		postRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Post)
			}).
			Return(nil)

		post, err := newPostService(postRepo, sessionRepo).CreatePost(ctx, service.CreatePostRequest{
			Content: "  Ищу команду на хакатон #Hackathon #TeamUp  ",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, post.PostID, created.PostID)
		assert.Equal(t, "Ищу команду на хакатон #Hackathon #TeamUp", post.Content)
		assert.Equal(t, []string{"#Hackathon", "#TeamUp"}, post.Tags)
		assert.Equal(t, "2", post.AuthorID)
		assert.Empty(t, post.Likes)
		assert.Empty(t, post.Comments)
		assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
	})

	t.Run("Пустой пост без изображений отклоняется", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)

		_, err := newPostService(postRepo, sessionRepo).CreatePost(ctx, service.CreatePostRequest{
			Content: "   ",
		})

		assert.ErrorIs(t, err, service.ErrEmptyContent)
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Более 4 изображений отклоняются", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("CurrentUser", mock.Anything).Return(&user, nil)

		_, err := newPostService(postRepo, sessionRepo).CreatePost(ctx, service.CreatePostRequest{
			Content: "Фотоотчет",
			Images:  []string{"a", "b", "c", "d", "e"},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "не более 4")
	})
}
