package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/harborview/realestate/backend/services/listing-service/internal/dtos"
	"github.com/harborview/realestate/backend/services/listing-service/internal/gateway"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

type InquiryService interface {
	Submit(ctx context.Context, userID uuid.UUID, req dtos.CreateInquiryRequest) (*models.Inquiry, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.InquiryWithProperty, error)
}

type inquiryService struct {
	gw       gateway.Gateway
	notifier InquiryNotifier
}

func NewInquiryService(gw gateway.Gateway, notifier InquiryNotifier) InquiryService {
	return &inquiryService{gw: gw, notifier: notifier}
}

// Submit validates the request, checks the listing exists, stores the
// inquiry and then notifies. Notification never affects the outcome.
func (s *inquiryService) Submit(ctx context.Context, userID uuid.UUID, req dtos.CreateInquiryRequest) (*models.Inquiry, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		req.Phone = &phone
		if phone == "" {
			req.Phone = nil
		}
	}

	if err := utils.ValidateStruct(req, "Invalid inquiry"); err != nil {
		return nil, err
	}
	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, utils.NewValidationError("Invalid inquiry", map[string]string{"property_id": "must be a valid UUID"})
	}

	property, err := s.gw.FetchByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	inq, err := s.gw.CreateInquiry(ctx, models.NewInquiry{
		UserID:     userID,
		PropertyID: propertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{
		"inquiry_id":  inq.ID,
		"property_id": propertyID,
	}).Info("Inquiry submitted")

	if s.notifier != nil {
		s.notifier.InquiryCreated(ctx, inq, property)
	}
	return inq, nil
}

func (s *inquiryService) List(ctx context.Context, userID uuid.UUID) ([]*models.InquiryWithProperty, error) {
	return s.gw.GetUserInquiries(ctx, userID)
}
