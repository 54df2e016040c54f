package repository

import "errors"

var (
	ErrFailedToCreate   = errors.New("repository: failed to create collection")
	ErrFailedToGet      = errors.New("repository: failed to get collection")
	ErrFailedToUpsert   = errors.New("repository: failed to upsert points")
	ErrFailedToSearch   = errors.New("repository: failed to search points")
	ErrFailedToCount    = errors.New("repository: failed to count points")
	ErrFailedToDelete   = errors.New("repository: failed to delete points")
	ErrFailedToGetPoint = errors.New("repository: failed to get point")
)
