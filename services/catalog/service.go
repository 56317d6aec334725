package catalog

import (
	"context"
	"fmt"

	"gharseva/models"
	"gharseva/utils"

	"go.uber.org/zap"
)

func (s *DefaultCatalogService) registry() *Registry {
	if s.Registry == nil {
		s.Registry = DefaultRegistry()
	}
	return s.Registry
}

// Categories returns every configured category.
func (s *DefaultCatalogService) Categories() []models.CategoryDefinition {
	return s.registry().All()
}

// CategoryPage resolves the incoming token, then returns the classified page
// for it, from cache when possible. Cache failures only cost the round trip;
// they never fail the request.
func (s *DefaultCatalogService) CategoryPage(ctx context.Context, token, gender string) (*models.CategoryPage, error) {
	logger := utils.GetLogger()

	cat := s.registry().Resolve(token)
	cat = s.registry().GenderVariant(cat, gender)

	if s.Cache != nil {
		page, err := s.Cache.Get(ctx, cat.ID)
		if err != nil {
			logger.Warn("catalog: page cache read failed", zap.String("category", cat.ID), zap.Error(err))
		} else if page != nil {
			return page, nil
		}
	}

	page, err := s.buildPage(ctx, cat)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, *page); err != nil {
			logger.Warn("catalog: page cache write failed", zap.String("category", cat.ID), zap.Error(err))
		}
	}
	return page, nil
}

// buildPage fetches fresh records and re-runs synthesis and classification
// from scratch. There is no incremental update path: every build is a pure
// function of the current catalog.
func (s *DefaultCatalogService) buildPage(ctx context.Context, cat models.CategoryDefinition) (*models.CategoryPage, error) {
	var (
		records []models.ServiceRecord
		err     error
	)
	if cat.IsDefault() {
		records, err = s.Repo.List(ctx)
	} else {
		records, err = s.Repo.FindByCategoryToken(ctx, cat.MatchKey)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch services for %q: %w", cat.ID, err)
	}

	subs := SynthesizeSubCategories(cat, records)
	groups := Classify(records, cat, cat.GenderType, subs)

	return &models.CategoryPage{
		Category:      cat,
		SubCategories: subs,
		Groups:        groups,
	}, nil
}

// RefreshCategory invalidates and re-warms the page for a changed category.
// An empty token means the whole catalog changed.
func (s *DefaultCatalogService) RefreshCategory(ctx context.Context, token string) error {
	if token == "" {
		if s.Cache != nil {
			if err := s.Cache.InvalidateAll(ctx); err != nil {
				return fmt.Errorf("catalog: failed to invalidate page cache: %w", err)
			}
		}
		_, err := s.CategoryPage(ctx, "", "")
		return err
	}

	// Gender-scoped siblings share a MatchKey and serve the same records,
	// so every variant goes stale together.
	for _, cat := range s.registry().Variants(s.registry().Resolve(token)) {
		if s.Cache != nil {
			if err := s.Cache.Invalidate(ctx, cat.ID); err != nil {
				return fmt.Errorf("catalog: failed to invalidate page for %q: %w", cat.ID, err)
			}
		}
		page, err := s.buildPage(ctx, cat)
		if err != nil {
			return err
		}
		if s.Cache != nil {
			if err := s.Cache.Set(ctx, *page); err != nil {
				utils.GetLogger().Warn("catalog: page cache write failed", zap.String("category", cat.ID), zap.Error(err))
			}
		}
	}
	return nil
}

// CreateService inserts a record and drops every cached page, since a record
// can surface on multiple category views.
func (s *DefaultCatalogService) CreateService(ctx context.Context, record models.ServiceRecord) (string, error) {
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		return "", fmt.Errorf("catalog: failed to create service: %w", err)
	}
	s.dropPages(ctx)
	return id, nil
}

// UpdateService replaces a record and drops every cached page.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, record models.ServiceRecord) error {
	if err := s.Repo.Update(ctx, record); err != nil {
		return fmt.Errorf("catalog: failed to update service: %w", err)
	}
	s.dropPages(ctx)
	return nil
}

// DeleteService removes a record and drops every cached page.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("catalog: failed to delete service: %w", err)
	}
	s.dropPages(ctx)
	return nil
}

func (s *DefaultCatalogService) dropPages(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateAll(ctx); err != nil {
		utils.GetLogger().Warn("catalog: page cache invalidation failed", zap.Error(err))
	}
}
