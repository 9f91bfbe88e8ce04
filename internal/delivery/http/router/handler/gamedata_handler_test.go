package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	mockUsecase "garden/internal/mocks/usecase"
	"garden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGameDataTestEcho(t *testing.T, id entity.AccountID) (*mockUsecase.MockGameDataUsecase, *echo.Echo) {
	uc := mockUsecase.NewMockGameDataUsecase(t)
	h := NewGameDataHandler(uc, newDiscardLogger())

	e := newTestEcho()
	api := e.Group("/api", asAccount(id))
	api.GET("/profile", h.GetProfile)
	api.PATCH("/profile/balance", h.UpdateBalance)
	api.PUT("/profile/update", h.UpdateProfile)
	api.PATCH("/seeds/decrement", h.DecrementSeed)
	api.PUT("/seeds/unlock", h.UpdateSeed("Seed unlocked successfully"))
	api.PUT("/inventory/update", h.ReplaceInventory)
	api.PATCH("/plants/remove", h.RemovePlant)
	api.PATCH("/supplies/remove", h.RemoveSupply)

	return uc, e
}

func TestGameDataHandler_GetProfile(t *testing.T) {
	id := entity.AccountID(uuid.New())
	uc, e := newGameDataTestEcho(t, id)

	profile := entity.NewProfile(id, "bob123", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	uc.EXPECT().GetProfile(mock.Anything, id).Return(profile, nil)

	rec := serve(e, http.MethodGet, "/api/profile", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["_id"])
	assert.Equal(t, float64(60), body["balance"])
	assert.Equal(t, false, body["onboardingComplete"])
}

func TestGameDataHandler_MissingDocumentIs404(t *testing.T) {
	id := entity.AccountID(uuid.New())
	uc, e := newGameDataTestEcho(t, id)
	uc.EXPECT().GetProfile(mock.Anything, id).Return(nil, domainerrors.ErrDocumentNotFound)

	rec := serve(e, http.MethodGet, "/api/profile", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Document does not exist"}`, rec.Body.String())
}

func TestGameDataHandler_UpdateBalance(t *testing.T) {
	id := entity.AccountID(uuid.New())
	uc, e := newGameDataTestEcho(t, id)

	rec := serve(e, http.MethodPatch, "/api/profile/balance", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["balance is required"]}`, rec.Body.String())

	uc.EXPECT().UpdateBalance(mock.Anything, id, 0).Return(&entity.Profile{}, nil)
	rec = serve(e, http.MethodPatch, "/api/profile/balance", `{"balance":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User balance updated"}`, rec.Body.String())
}

func TestGameDataHandler_UpdateProfile(t *testing.T) {
	id := entity.AccountID(uuid.New())
	uc, e := newGameDataTestEcho(t, id)

	uc.EXPECT().
		UpdateProfile(mock.Anything, id, mock.MatchedBy(func(in usecase.UpdateProfileInput) bool {
			return in.Theme != nil && *in.Theme == "dark" && in.Balance == nil
		})).
		Return(&entity.Profile{}, nil)

	rec := serve(e, http.MethodPut, "/api/profile/update", `{"updatedProfile":{"theme":"dark"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGameDataHandler_SeedRoutes(t *testing.T) {
	id := entity.AccountID(uuid.New())
	uc, e := newGameDataTestEcho(t, id)

	uc.EXPECT().DecrementSeed(mock.Anything, id, "carrot").Return(&entity.Seeds{}, nil)
	rec := serve(e, http.MethodPatch, "/api/seeds/decrement", `{"name":"carrot"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	seeds := []entity.Seed{{Name: "carrot", Count: 1, Unlocked: true}}
	uc.EXPECT().ReplaceSeeds(mock.Anything, id, seeds).Return(&entity.Seeds{Seeds: seeds}, nil)
	rec = serve(e, http.MethodPut, "/api/seeds/unlock", `{"name":"carrot","updatedSeed":[{"name":"carrot","count":1,"unlocked":true}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Seed unlocked successfully"}`, rec.Body.String())
}

func TestGameDataHandler_ReplaceInventoryReturnsCount(t *testing.T) {
	id := entity.AccountID(uuid.New())
	uc, e := newGameDataTestEcho(t, id)

	uc.EXPECT().
		ReplaceInventory(mock.Anything, id, mock.Anything).
		Return(&entity.Inventory{InventoryCount: 7}, nil)

	rec := serve(e, http.MethodPut, "/api/inventory/update", `{"updatedInventory":{"tomato":{"count":7}}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Inventory updated successfully","inventoryCount":7}`, rec.Body.String())
}

func TestGameDataHandler_RemoveAcceptsNumericIDs(t *testing.T) {
	id := entity.AccountID(uuid.New())
	uc, e := newGameDataTestEcho(t, id)

	uc.EXPECT().RemovePlant(mock.Anything, id, "7").Return(&entity.Plants{}, nil)
	uc.EXPECT().RemoveSupply(mock.Anything, id, "fertilizer").Return(&entity.Supplies{}, nil)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodPatch, "/api/plants/remove", `{"idToRemove":7}`).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPatch, "/api/supplies/remove", `{"supplyId":"fertilizer"}`).Code)

	rec := serve(e, http.MethodPatch, "/api/plants/remove", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGameDataHandler_RequiresCaller(t *testing.T) {
	uc := mockUsecase.NewMockGameDataUsecase(t)
	h := NewGameDataHandler(uc, newDiscardLogger())
	e := newTestEcho()
	e.GET("/api/profile", h.GetProfile)

	rec := serve(e, http.MethodGet, "/api/profile", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPing(t *testing.T) {
	e := newTestEcho()
	e.GET("/api/ping", Ping)

	rec := serve(e, http.MethodGet, "/api/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
