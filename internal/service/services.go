package service

import (
	"github.com/petwatch/petwatch/internal/config"
	"github.com/petwatch/petwatch/internal/repository"
)

type Services struct {
	Token  *TokenService
	Policy *AccessPolicy
	User   *UserService
	Cat    *CatService
	Dog    *DogService
}

func NewServices(repos *repository.Repositories, notifier Notifier, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg)
	return &Services{
		Token:  tokens,
		Policy: NewAccessPolicy(tokens, repos.User),
		User:   NewUserService(repos.User),
		Cat:    NewCatService(repos.Cat, notifier),
		Dog:    NewDogService(repos.Dog),
	}
}
