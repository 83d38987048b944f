package handler

import (
	"fmt"
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

func TestStampHandler_AddStamp(t *testing.T) {
	actorID := uuid.New()
	customerID := uuid.New()
	locationID := uuid.New()
	body := fmt.Sprintf(`{"customer_id":%q,"location_id":%q,"stamps_earned":3,"amount":12.5,"notes":"latte"}`,
		customerID, locationID)

	t.Run("created with summary", func(t *testing.T) {
		stampUC := mockUsecase.NewMockStampUsecase(t)
		h := NewStampHandler(StampHandlerParams{StampUC: stampUC})

		stampUC.EXPECT().AwardStamps(mock.Anything, mock.MatchedBy(func(in *usecase.AwardStampsInput) bool {
			return in.ActorID == actorID && in.CustomerID == customerID && in.LocationID == locationID &&
				in.Stamps == 3 && in.PurchaseAmount != nil && *in.PurchaseAmount == 12.5 &&
				in.Note != nil && *in.Note == "latte"
		})).Return(&entity.LedgerResult{
			Event:    &entity.StampEvent{ID: uuid.New(), CustomerID: customerID, Stamps: 3},
			Progress: entity.NewCardProgress(3, 10),
		}, nil)

		c, rec := newTestContext(http.MethodPost, "/add-stamp", body, actorID)
		require.NoError(t, h.AddStamp(c))
		requireStatus(t, rec, http.StatusCreated)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["success"])
		record, ok := resp["stamp_record"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 3, record["stamps_earned"], 0)
		assert.Equal(t, map[string]any{
			"total_stamps":           float64(3),
			"available_rewards":      float64(0),
			"stamps_for_next_reward": float64(7),
		}, resp["customer_summary"])
	})

	t.Run("over the per-visit cap", func(t *testing.T) {
		stampUC := mockUsecase.NewMockStampUsecase(t)
		h := NewStampHandler(StampHandlerParams{StampUC: stampUC})
		stampUC.EXPECT().AwardStamps(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewValidationError("stamps_earned must be between 1 and 5"))

		c, rec := newTestContext(http.MethodPost, "/add-stamp", body, actorID)
		require.NoError(t, h.AddStamp(c))
		requireStatus(t, rec, http.StatusBadRequest)

		resp := decodeBody(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", resp["code"])
		assert.Equal(t, "stamps_earned must be between 1 and 5", resp["error"])
	})

	t.Run("malformed customer id", func(t *testing.T) {
		h := NewStampHandler(StampHandlerParams{StampUC: mockUsecase.NewMockStampUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/add-stamp",
			fmt.Sprintf(`{"customer_id":"nope","location_id":%q,"stamps_earned":1}`, locationID), actorID)
		require.NoError(t, h.AddStamp(c))
		requireStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, decodeBody(t, rec)["error"], "customer_id must be a valid UUID")
	})

	t.Run("all-zero customer id", func(t *testing.T) {
		h := NewStampHandler(StampHandlerParams{StampUC: mockUsecase.NewMockStampUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/add-stamp",
			fmt.Sprintf(`{"customer_id":%q,"location_id":%q,"stamps_earned":1}`, uuid.Nil, locationID), actorID)
		require.NoError(t, h.AddStamp(c))
		requireStatus(t, rec, http.StatusBadRequest)

		resp := decodeBody(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", resp["code"])
		assert.Equal(t, "customer_id must be a non-nil UUID", resp["error"])
	})

	t.Run("no actor", func(t *testing.T) {
		h := NewStampHandler(StampHandlerParams{StampUC: mockUsecase.NewMockStampUsecase(t)})

		c, _ := newTestContext(http.MethodPost, "/add-stamp", body, uuid.Nil)
		err := h.AddStamp(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
