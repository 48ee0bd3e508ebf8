package service

import (
	"context"
	"fmt"

	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/contract"
	"github.com/pathfinderhq/pathfinder/internal/domain"
)

type careerService struct {
	cat *catalog.Catalog
}

// NewCareerService creates a read-only career browsing service.
func NewCareerService(cat *catalog.Catalog) CareerService {
	return &careerService{cat: cat}
}

func (s *careerService) List(ctx context.Context) ([]contract.CareerView, error) {
	views := make([]contract.CareerView, 0, len(s.cat.Careers))
	for i := range s.cat.Careers {
		views = append(views, s.view(&s.cat.Careers[i]))
	}
	return views, nil
}

func (s *careerService) Get(ctx context.Context, name string) (*contract.CareerView, error) {
	career := s.cat.Career(name)
	if career == nil {
		return nil, fmt.Errorf("unknown career %q", name)
	}
	view := s.view(career)
	return &view, nil
}

func (s *careerService) view(career *domain.CareerProfile) contract.CareerView {
	view := contract.CareerView{Name: career.Name}
	for _, id := range career.Required {
		view.Required = append(view.Required, s.cat.AttributeLabel(id))
	}
	for _, id := range career.Preferred {
		view.Preferred = append(view.Preferred, s.cat.AttributeLabel(id))
	}
	return view
}
