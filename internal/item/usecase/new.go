package usecase

import (
	"library-catalog/internal/item/repository"
	"library-catalog/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
