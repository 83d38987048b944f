package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stampcard/internal/delivery/api/response"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves aggregate reports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// Summary handles GET /reports/summary?location_id=|tenant_id=&from=&to=.
func (h *ReportHandler) Summary(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	locationID, ok := optionalUUID(c.QueryParam("location_id"))
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location_id must be a valid UUID")
	}
	tenantID, ok := optionalUUID(c.QueryParam("tenant_id"))
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "tenant_id must be a valid UUID")
	}
	from, ok := optionalTime(c.QueryParam("from"))
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "from must be an RFC3339 timestamp")
	}
	to, ok := optionalTime(c.QueryParam("to"))
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "to must be an RFC3339 timestamp")
	}

	report, err := h.reportUC.Summary(c.Request().Context(), &usecase.ReportInput{
		ActorID:    actorID,
		TenantID:   tenantID,
		LocationID: locationID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"report": report})
}

func optionalTime(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, false
	}

	return &t, true
}
