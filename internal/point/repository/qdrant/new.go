package qdrant

import (
	"vectordb/internal/point/repository"
	"vectordb/pkg/log"
	pkgQdrant "vectordb/pkg/qdrant"
)

type implRepository struct {
	client pkgQdrant.IQdrant
	l      log.Logger
}

func New(client pkgQdrant.IQdrant, l log.Logger) repository.QdrantRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
