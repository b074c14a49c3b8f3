package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/harborview/realestate/backend/services/listing-service/internal/gateway"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// PropertyDetail is a property page's data: the listing and whether the
// visitor saved it.
type PropertyDetail struct {
	Property *models.Property
	IsSaved  bool
}

type PropertyService interface {
	// Featured never fails: an unavailable store yields no featured cards.
	Featured(ctx context.Context) []*models.Property
	Detail(ctx context.Context, propertyID, userID uuid.UUID) (*PropertyDetail, error)
}

type propertyService struct {
	gw            gateway.Gateway
	featuredLimit int
}

func NewPropertyService(gw gateway.Gateway, featuredLimit int) PropertyService {
	return &propertyService{gw: gw, featuredLimit: featuredLimit}
}

func (s *propertyService) Featured(ctx context.Context) []*models.Property {
	props, err := s.gw.FetchFeatured(ctx, s.featuredLimit)
	if err != nil {
		utils.Logger.WithError(err).Error("Featured properties unavailable; rendering empty section")
		return []*models.Property{}
	}
	return props
}

// Detail loads the property and its saved state concurrently. A failing
// saved-state probe only costs the heart icon, never the page.
func (s *propertyService) Detail(ctx context.Context, propertyID, userID uuid.UUID) (*PropertyDetail, error) {
	var (
		detail PropertyDetail
		g, gctx = errgroup.WithContext(ctx)
	)

	g.Go(func() error {
		p, err := s.gw.FetchByID(gctx, propertyID)
		if err != nil {
			return err
		}
		detail.Property = p
		return nil
	})
	if userID != uuid.Nil {
		g.Go(func() error {
			saved, err := s.gw.IsSaved(gctx, userID, propertyID)
			if err != nil {
				utils.Logger.WithError(err).Warnf("Saved state unavailable for property %s", propertyID)
				return nil
			}
			detail.IsSaved = saved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &detail, nil
}
