package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/harborview/realestate/backend/services/listing-service/internal/dtos"
	"github.com/harborview/realestate/backend/services/listing-service/internal/search"
	"github.com/harborview/realestate/backend/services/listing-service/internal/services"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// APIController serves the JSON API under /api/v1.
type APIController struct {
	properties services.PropertyService
	saved      services.SavedService
	profiles   services.ProfileService
	inquiries  services.InquiryService
	pipeline   *search.Pipeline
	devMode    bool
}

func NewAPIController(
	properties services.PropertyService,
	saved services.SavedService,
	profiles services.ProfileService,
	inquiries services.InquiryService,
	pipeline *search.Pipeline,
	devMode bool,
) *APIController {
	return &APIController{
		properties: properties,
		saved:      saved,
		profiles:   profiles,
		inquiries:  inquiries,
		pipeline:   pipeline,
		devMode:    devMode,
	}
}

// requireUser answers 401 and returns false when the request has no user.
func (c *APIController) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID := currentUserID(r)
	if userID == uuid.Nil {
		utils.HandleAppError(w, utils.NewAuthenticationError(""), c.devMode)
		return uuid.Nil, false
	}
	return userID, true
}

// GET /api/v1/properties/featured
func (c *APIController) FeaturedHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.FeaturedPropertiesResponse{
		Properties: c.properties.Featured(r.Context()),
	})
}

// GET /api/v1/properties
func (c *APIController) ListingsHandler(w http.ResponseWriter, r *http.Request) {
	res := c.pipeline.Run(r.Context(), r.URL.Query())
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListingResponse{
		Page:     res.Page,
		Filters:  res.Filters,
		Degraded: res.Degraded(),
	})
}

// GET /api/v1/properties/{id}
func (c *APIController) PropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		utils.HandleAppError(w, utils.NewNotFoundError("Property not found"), c.devMode)
		return
	}

	detail, err := c.properties.Detail(r.Context(), id, currentUserID(r))
	if err != nil {
		utils.HandleAppError(w, err, c.devMode)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyDetailResponse{
		Property: detail.Property,
		IsSaved:  detail.IsSaved,
	})
}

// GET /api/v1/saved
func (c *APIController) SavedHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUser(w, r)
	if !ok {
		return
	}
	props, err := c.saved.List(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err, c.devMode)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SavedPropertiesResponse{Properties: props})
}

// POST /api/v1/saved/{propertyId}/toggle
func (c *APIController) ToggleSavedHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUser(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathUUID(r, "propertyId")
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid property id", nil, utils.ErrInvalidPropertyID)
		return
	}

	saved, err := c.saved.Toggle(r.Context(), userID, propertyID)
	if err != nil {
		utils.HandleAppError(w, err, c.devMode)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ToggleSavedResponse{
		PropertyID: propertyID.String(),
		Saved:      saved,
	})
}

// GET /api/v1/profile
func (c *APIController) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUser(w, r)
	if !ok {
		return
	}
	profile, err := c.profiles.Get(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err, c.devMode)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// PATCH /api/v1/profile
func (c *APIController) PatchProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUser(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}

	profile, err := c.profiles.Update(r.Context(), userID, req)
	if err != nil {
		utils.HandleAppError(w, err, c.devMode)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// GET /api/v1/inquiries
func (c *APIController) ListInquiriesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUser(w, r)
	if !ok {
		return
	}
	list, err := c.inquiries.List(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err, c.devMode)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.InquiriesResponse{Inquiries: list})
}

// POST /api/v1/inquiries
func (c *APIController) CreateInquiryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.requireUser(w, r)
	if !ok {
		return
	}

	var req dtos.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}

	inq, err := c.inquiries.Submit(r.Context(), userID, req)
	if err != nil {
		utils.HandleAppError(w, err, c.devMode)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, inq)
}
