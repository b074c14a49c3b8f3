package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/harborview/realestate/backend/services/listing-service/internal/dtos"
	"github.com/harborview/realestate/backend/services/listing-service/internal/gateway"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateProfileRequest) (*models.UserProfile, error)
}

type profileService struct {
	gw gateway.Gateway
}

func NewProfileService(gw gateway.Gateway) ProfileService {
	return &profileService{gw: gw}
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	return s.gw.GetUserProfile(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateProfileRequest) (*models.UserProfile, error) {
	req.FullName = trimPtr(req.FullName)
	req.Phone = trimPtr(req.Phone)
	req.AvatarURL = trimPtr(req.AvatarURL)

	if err := utils.ValidateStruct(req, "Invalid profile data"); err != nil {
		return nil, err
	}
	if req.FullName != nil && *req.FullName == "" {
		return nil, utils.NewValidationError("Invalid profile data", map[string]string{"full_name": "must not be blank"})
	}

	return s.gw.UpdateUserProfile(ctx, userID, models.ProfileUpdate{
		FullName:  req.FullName,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
