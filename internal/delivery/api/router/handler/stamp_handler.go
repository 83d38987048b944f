package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/api/response"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StampHandlerParams holds dependencies for StampHandler, injected by Fx.
type StampHandlerParams struct {
	fx.In

	StampUC usecase.StampUsecase
	Logger  *slog.Logger
}

// StampHandler serves the stamp ledger endpoint.
type StampHandler struct {
	stampUC usecase.StampUsecase
	logger  *slog.Logger
}

// NewStampHandler is the constructor for StampHandler
func NewStampHandler(params StampHandlerParams) *StampHandler {
	return &StampHandler{
		stampUC: params.StampUC,
		logger:  params.Logger,
	}
}

// AddStampRequest is the body of POST /add-stamp.
type AddStampRequest struct {
	CustomerID   string   `json:"customer_id" validate:"required,uuid"`
	LocationID   string   `json:"location_id" validate:"required,uuid"`
	StampsEarned int      `json:"stamps_earned"`
	Amount       *float64 `json:"amount"`
	Notes        *string  `json:"notes" validate:"omitempty,max=500"`
}

// AddStamp appends a stamp event and returns the customer's new totals.
func (h *StampHandler) AddStamp(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req AddStampRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid stamp input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	customerID, ok := parseUUID(req.CustomerID)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "customer_id must be a non-nil UUID")
	}
	locationID, ok := parseUUID(req.LocationID)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a non-nil UUID")
	}
	result, err := h.stampUC.AwardStamps(c.Request().Context(), &usecase.AwardStampsInput{
		ActorID:        actorID,
		CustomerID:     customerID,
		LocationID:     locationID,
		Stamps:         req.StampsEarned,
		PurchaseAmount: req.Amount,
		Note:           req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"stamp_record": result.Event,
		"customer_summary": echo.Map{
			"total_stamps":           result.Progress.Balance,
			"available_rewards":      result.Progress.AvailableRewards,
			"stamps_for_next_reward": result.Progress.StampsForNextReward,
		},
	})
}
