package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/api/response"
	"stampcard/internal/domain/entity"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves the customer directory endpoints.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// RegisterCustomerRequest is the body of POST /register-customer.
type RegisterCustomerRequest struct {
	LocationID   string                `json:"location_id" validate:"required,uuid"`
	QRCode       string                `json:"qr_code"`
	CustomerData *usecase.CustomerData `json:"customer_data"`
}

// LookupCustomerRequest is the body of POST /customer-lookup.
type LookupCustomerRequest struct {
	LocationID string `json:"location_id" validate:"required,uuid"`
	QRCode     string `json:"qr_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// UpdateCustomerStatusRequest is the body of PATCH /customers/:id/status.
type UpdateCustomerStatusRequest struct {
	LocationID string `json:"location_id" validate:"required,uuid"`
	Status     string `json:"status" validate:"required,oneof=active inactive blocked"`
}

// RegisterCustomer returns the scanned customer (200) or registers a new one (201).
func (h *CustomerHandler) RegisterCustomer(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	locationID, ok := parseUUID(req.LocationID)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a non-nil UUID")
	}
	out, err := h.customerUC.FindOrRegister(c.Request().Context(), &usecase.RegisterCustomerInput{
		ActorID:      actorID,
		LocationID:   locationID,
		QRCode:       req.QRCode,
		CustomerData: req.CustomerData,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, echo.Map{"customer": out.Customer})
}

// LookupCustomer searches the location's tenant by one contact key.
func (h *CustomerHandler) LookupCustomer(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req LookupCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid lookup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	locationID, ok := parseUUID(req.LocationID)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a non-nil UUID")
	}
	customers, err := h.customerUC.Lookup(c.Request().Context(), &usecase.LookupCustomerInput{
		ActorID:    actorID,
		LocationID: locationID,
		QRCode:     req.QRCode,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"customers": customers})
}

// UpdateStatus moves a customer between active, inactive and blocked.
func (h *CustomerHandler) UpdateStatus(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	customerID, ok := parseUUID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	var req UpdateCustomerStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	locationID, ok := parseUUID(req.LocationID)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a non-nil UUID")
	}
	customer, err := h.customerUC.UpdateStatus(c.Request().Context(), &usecase.UpdateCustomerStatusInput{
		ActorID:    actorID,
		LocationID: locationID,
		CustomerID: customerID,
		Status:     entity.CustomerStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"customer": customer})
}

// QRCode streams the customer's QR card as a PNG.
func (h *CustomerHandler) QRCode(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	customerID, ok := parseUUID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}
	locationID, ok := parseUUID(c.QueryParam("location_id"))
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a valid UUID")
	}

	png, err := h.customerUC.RenderQRCode(c.Request().Context(), actorID, locationID, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// History returns the customer's latest ledger entries.
func (h *CustomerHandler) History(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	customerID, ok := parseUUID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}
	locationID, ok := parseUUID(c.QueryParam("location_id"))
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a valid UUID")
	}
	limit, ok := queryInt(c, "limit")
	if !ok || limit < 0 {
		return response.BadRequest(c, "VALIDATION_FAILED", "limit must be a non-negative integer")
	}

	history, err := h.customerUC.History(c.Request().Context(), actorID, locationID, customerID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"history": history})
}
