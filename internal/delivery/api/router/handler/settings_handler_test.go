package handler

import (
	"net/http"
	"testing"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	mockUsecase "stampcard/internal/mocks/usecase"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler_GetSettings(t *testing.T) {
	actorID := uuid.New()
	locationID := uuid.New()
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(SettingsHandlerParams{SettingsUC: settingsUC})
	settingsUC.EXPECT().Get(mock.Anything, actorID, locationID).Return(&entity.LoyaltySettings{
		LocationID:        locationID,
		StampsForReward:   10,
		MaxStampsPerVisit: 5,
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/locations/"+locationID.String()+"/settings", "", actorID)
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	require.NoError(t, h.GetSettings(c))
	requireStatus(t, rec, http.StatusOK)
	_, ok := decodeBody(t, rec)["settings"].(map[string]any)
	assert.True(t, ok)
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	actorID := uuid.New()
	locationID := uuid.New()

	t.Run("forbidden for staff", func(t *testing.T) {
		settingsUC := mockUsecase.NewMockSettingsUsecase(t)
		h := NewSettingsHandler(SettingsHandlerParams{SettingsUC: settingsUC})
		settingsUC.EXPECT().Update(mock.Anything, actorID, locationID, &usecase.UpdateSettingsInput{
			StampsForReward:   8,
			RewardValue:       3.5,
			MaxStampsPerVisit: 4,
		}).Return(nil, domainerrors.ErrForbidden)

		c, rec := newTestContext(http.MethodPut, "/locations/"+locationID.String()+"/settings",
			`{"stamps_for_reward":8,"reward_value":3.5,"max_stamps_per_visit":4}`, actorID)
		c.SetParamNames("id")
		c.SetParamValues(locationID.String())

		require.NoError(t, h.UpdateSettings(c))
		requireStatus(t, rec, http.StatusForbidden)
	})

	t.Run("invalid body", func(t *testing.T) {
		h := NewSettingsHandler(SettingsHandlerParams{SettingsUC: mockUsecase.NewMockSettingsUsecase(t)})

		c, rec := newTestContext(http.MethodPut, "/locations/"+locationID.String()+"/settings",
			`{"stamps_for_reward":0,"max_stamps_per_visit":4}`, actorID)
		c.SetParamNames("id")
		c.SetParamValues(locationID.String())

		require.NoError(t, h.UpdateSettings(c))
		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("bad location id", func(t *testing.T) {
		h := NewSettingsHandler(SettingsHandlerParams{SettingsUC: mockUsecase.NewMockSettingsUsecase(t)})

		c, rec := newTestContext(http.MethodPut, "/locations/x/settings", `{}`, actorID)
		c.SetParamNames("id")
		c.SetParamValues("x")

		require.NoError(t, h.UpdateSettings(c))
		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "INVALID_ID", decodeBody(t, rec)["code"])
	})
}
