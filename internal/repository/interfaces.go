package repository

import (
	"context"
	"errors"

	"github.com/pathfinderhq/pathfinder/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ConsultationRepo stores completed quiz runs. Only finished sessions are
// persisted; live session state stays in memory.
type ConsultationRepo interface {
	Create(ctx context.Context, c *domain.Consultation) error
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Consultation, error)
	Delete(ctx context.Context, id string) error
}
