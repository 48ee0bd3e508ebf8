package service

import (
	"context"

	"github.com/pathfinderhq/pathfinder/internal/domain"
	"github.com/pathfinderhq/pathfinder/internal/repository"
)

const defaultHistoryLimit = 20

type historyService struct {
	consultations repository.ConsultationRepo
}

// NewHistoryService creates a service over persisted consultations.
func NewHistoryService(consultations repository.ConsultationRepo) HistoryService {
	return &historyService{consultations: consultations}
}

func (s *historyService) ListRecent(ctx context.Context, limit int) ([]*domain.Consultation, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.consultations.ListRecent(ctx, limit)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.Consultation, error) {
	return s.consultations.GetByID(ctx, id)
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.consultations.Delete(ctx, id)
}
