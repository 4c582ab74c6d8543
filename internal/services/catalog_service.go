package services

import (
	"context"
	"sync"

	"github.com/olowojude/Food-Flex/external/foodflex"
	"github.com/olowojude/Food-Flex/internal/model"
)

// CatalogService issues read-only product queries. The one piece of logic
// it owns: a newer search cancels the superseded in-flight request so stale
// results are never rendered.
type CatalogService struct {
	API *foodflex.Client

	mu     sync.Mutex
	seq    int
	cancel context.CancelFunc
}

func NewCatalogService(api *foodflex.Client) *CatalogService {
	return &CatalogService{API: api}
}

// Search runs a catalog query, aborting any earlier query still in flight.
// A superseded call returns the context.Canceled it was aborted with;
// callers drop that result silently.
func (s *CatalogService) Search(ctx context.Context, q foodflex.ProductQuery) (*foodflex.ProductPage, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	mine := s.seq
	s.mu.Unlock()
	defer cancel()

	page, err := s.API.Products(ctx, q)

	s.mu.Lock()
	if s.seq == mine {
		s.cancel = nil
	}
	s.mu.Unlock()

	return page, err
}

func (s *CatalogService) Product(ctx context.Context, slug string) (*model.Product, error) {
	return s.API.Product(ctx, slug)
}

func (s *CatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.API.Categories(ctx)
}
