package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/harborview/realestate/backend/services/listing-service/internal/dtos"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

const healthPingTimeout = 3 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.checkStore(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("listing-service store unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Store unreachable", nil, err)
		return
	}
	resp := dtos.HealthCheckResponse{Status: "OK"}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// checkStore pings the store; failures wrap utils.ErrStoreUnavailable.
func (c *HealthController) checkStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := c.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
	}
	return nil
}
