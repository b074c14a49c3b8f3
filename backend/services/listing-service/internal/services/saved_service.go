package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/harborview/realestate/backend/services/listing-service/internal/gateway"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

type SavedService interface {
	Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Property, error)
}

type savedService struct {
	gw gateway.Gateway
}

func NewSavedService(gw gateway.Gateway) SavedService {
	return &savedService{gw: gw}
}

func (s *savedService) Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	saved, err := s.gw.ToggleSavedProperty(ctx, userID, propertyID)
	if err != nil {
		return false, err
	}
	utils.Logger.WithFields(logrus.Fields{
		"user_id":     userID,
		"property_id": propertyID,
		"saved":       saved,
	}).Debug("Saved property toggled")
	return saved, nil
}

func (s *savedService) List(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	return s.gw.GetSavedProperties(ctx, userID)
}
