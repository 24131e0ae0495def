package service

import (
	"campusnet/internal/config"
	"campusnet/internal/repository"
)

type Service struct {
	Feed FeedService
	Post PostService
	Auth AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Feed: NewFeedService(rep.Post, rep.User, cfg),
		Post: NewPostService(rep.Post, rep.Session, cfg),
		Auth: NewAuthService(rep.User, rep.Session, cfg),
	}
}
