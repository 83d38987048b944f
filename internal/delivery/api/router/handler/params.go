package handler

import (
	"strconv"

	"stampcard/internal/delivery/api/middleware"
	domainerrors "stampcard/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorFromContext returns the actor stored by the auth middleware.
func actorFromContext(c echo.Context) (uuid.UUID, error) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithMessage("Invalid actor ID in token")
	}

	return actorID, nil
}

func parseUUID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

func optionalUUID(raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, ok := parseUUID(raw)
	if !ok {
		return nil, false
	}

	return &id, true
}

func queryInt(c echo.Context, name string) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return v, true
}
