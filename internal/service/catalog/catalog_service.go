// Package catalog manages activity types: the named, point-valued
// catalog the ledger references.
package catalog

import (
	"context"

	"teampoints/internal/http/api"
	"teampoints/internal/models"
	"teampoints/internal/service/access"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ActivityTypeProvider
type ActivityTypeProvider interface {
	Create(ctx context.Context, name string, points int) (int64, error)
	Update(ctx context.Context, typeID int64, name string, points int) error
	Delete(ctx context.Context, typeID int64) error
	List(ctx context.Context) ([]*models.ActivityType, error)
}

type CatalogService struct {
	typeProvider ActivityTypeProvider
}

func NewCatalogService(typeProvider ActivityTypeProvider) *CatalogService {
	return &CatalogService{
		typeProvider: typeProvider,
	}
}

func (s *CatalogService) Create(ctx context.Context, name string, points int) (*api.ActivityTypeSchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	typeID, err := s.typeProvider.Create(ctx, name, points)
	if err != nil {
		return nil, err
	}

	return &api.ActivityTypeSchema{
		ID:     typeID,
		Name:   name,
		Points: points,
	}, nil
}

// Update changes the name or point value. A point change is retroactive:
// every historical activity of the type is re-valued on the next read.
func (s *CatalogService) Update(ctx context.Context, typeID int64, name string, points int) (*api.ActivityTypeSchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := s.typeProvider.Update(ctx, typeID, name, points); err != nil {
		return nil, err
	}

	return &api.ActivityTypeSchema{
		ID:     typeID,
		Name:   name,
		Points: points,
	}, nil
}

func (s *CatalogService) Delete(ctx context.Context, typeID int64) error {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return err
	}

	return s.typeProvider.Delete(ctx, typeID)
}

func (s *CatalogService) List(ctx context.Context) (*api.ActivityTypeListResponse, error) {
	types, err := s.typeProvider.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &api.ActivityTypeListResponse{ActivityTypes: []api.ActivityTypeSchema{}}
	for _, t := range types {
		resp.ActivityTypes = append(resp.ActivityTypes, api.ActivityTypeSchema{
			ID:     t.ID,
			Name:   t.Name,
			Points: t.Points,
		})
	}

	return resp, nil
}
