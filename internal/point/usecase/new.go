package usecase

import (
	"vectordb/internal/point"
	"vectordb/internal/point/repository"
	"vectordb/pkg/log"
)

type implUseCase struct {
	repo repository.QdrantRepository
	l    log.Logger
}

func New(repo repository.QdrantRepository, l log.Logger) point.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
