package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "garden/internal/delivery/context"
	"garden/internal/delivery/http/response"
	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type balanceRequest struct {
	Balance *int `json:"balance" validate:"required"`
}

type onboardingRequest struct {
	Status *bool `json:"status" validate:"required"`
}

type updateProfileRequest struct {
	UpdatedProfile *usecase.UpdateProfileInput `json:"updatedProfile" validate:"required"`
}

type seedNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateSeedsRequest struct {
	UpdatedSeeds []entity.Seed `json:"updatedSeeds" validate:"required"`
}

// updateSeedRequest is the body of the count and unlock routes, which also replace the whole list.
type updateSeedRequest struct {
	Name        string        `json:"name"`
	UpdatedSeed []entity.Seed `json:"updatedSeed" validate:"required"`
}

type updateInventoryRequest struct {
	UpdatedInventory map[string]entity.Record `json:"updatedInventory" validate:"required"`
}

type updateShopRequest struct {
	UpdatedShop map[string]any `json:"updatedShop" validate:"required"`
}

type updatePurchasesRequest struct {
	UpdatedPurchases []entity.Record `json:"updatedPurchases" validate:"required"`
}

type addPlantRequest struct {
	Plant entity.Record `json:"plant" validate:"required"`
}

type removePlantRequest struct {
	IDToRemove any `json:"idToRemove" validate:"required"`
}

type updatePlantsRequest struct {
	UpdatedPlants []entity.Record `json:"updatedPlants" validate:"required"`
}

type addUpgradeRequest struct {
	Upgrade entity.Record `json:"upgrade" validate:"required"`
}

type addSupplyRequest struct {
	Supply entity.Record `json:"supply" validate:"required"`
}

type removeSupplyRequest struct {
	SupplyID any `json:"supplyId" validate:"required"`
}

type updateGardenRequest struct {
	UpdatedGarden map[string]any `json:"updatedGarden" validate:"required"`
}

// GameDataHandler serves the caller's own category documents.
type GameDataHandler struct {
	uc     usecase.GameDataUsecase
	logger *slog.Logger
}

// NewGameDataHandler is the constructor for GameDataHandler, injected by Fx.
func NewGameDataHandler(uc usecase.GameDataUsecase, logger *slog.Logger) *GameDataHandler {
	return &GameDataHandler{
		uc:     uc,
		logger: logger,
	}
}

// caller returns the account set by the auth middleware.
func caller(c echo.Context) (entity.AccountID, error) {
	account, ok := deliverycontext.AccountFromContext(c.Request().Context())
	if !ok {
		return entity.AccountID{}, domainerrors.ErrUnauthorized
	}

	return account.ID, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}

	return c.Validate(req)
}

// recordID renders a client-supplied id (string or number) the way stored records expose theirs.
func recordID(v any) string {
	return entity.Record{"id": v}.ID()
}

func acknowledge(c echo.Context, message string) error {
	return response.Message(c, http.StatusOK, message)
}

// --- Profile ---

func (h *GameDataHandler) GetProfile(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, profile)
}

func (h *GameDataHandler) UpdateBalance(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req balanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.UpdateBalance(c.Request().Context(), id, *req.Balance); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "User balance updated")
}

func (h *GameDataHandler) IncrementUsedPlantCapacity(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	if _, err := h.uc.IncrementUsedPlantCapacity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Plant capacity incremented successfully")
}

func (h *GameDataHandler) UpdateOnboardingStatus(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req onboardingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.UpdateOnboardingStatus(c.Request().Context(), id, *req.Status); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Onboarding status updated successfully")
}

func (h *GameDataHandler) UpdateProfile(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.UpdateProfile(c.Request().Context(), id, *req.UpdatedProfile); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Profile updated successfully")
}

// --- Seeds ---

func (h *GameDataHandler) GetSeeds(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	seeds, err := h.uc.GetSeeds(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, seeds)
}

func (h *GameDataHandler) DecrementSeed(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req seedNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.DecrementSeed(c.Request().Context(), id, req.Name); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Seed capacity decremented successfully")
}

func (h *GameDataHandler) ReplaceSeeds(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req updateSeedsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.ReplaceSeeds(c.Request().Context(), id, req.UpdatedSeeds); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Seeds updated successfully")
}

// UpdateSeed serves the seed count and unlock routes; message is what the client shows on success.
func (h *GameDataHandler) UpdateSeed(message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}

		var req updateSeedRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		if _, err := h.uc.ReplaceSeeds(c.Request().Context(), id, req.UpdatedSeed); err != nil {
			return errors.WithStack(err)
		}

		return acknowledge(c, message)
	}
}

// --- Inventory ---

func (h *GameDataHandler) GetInventory(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	inv, err := h.uc.GetInventory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, inv)
}

func (h *GameDataHandler) ReplaceInventory(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req updateInventoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	inv, err := h.uc.ReplaceInventory(c.Request().Context(), id, req.UpdatedInventory)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":        "Inventory updated successfully",
		"inventoryCount": inv.InventoryCount,
	})
}

// --- Shop, purchases, garden ---

func (h *GameDataHandler) GetShop(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	shop, err := h.uc.GetShop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, shop)
}

func (h *GameDataHandler) ReplaceShop(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req updateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.ReplaceShop(c.Request().Context(), id, req.UpdatedShop); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "shop updated successfully")
}

func (h *GameDataHandler) GetPurchases(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	purchases, err := h.uc.GetPurchases(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, purchases)
}

func (h *GameDataHandler) ReplacePurchases(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req updatePurchasesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.ReplacePurchases(c.Request().Context(), id, req.UpdatedPurchases); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "purchases updated successfully")
}

func (h *GameDataHandler) GetGarden(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	garden, err := h.uc.GetGarden(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, garden)
}

func (h *GameDataHandler) ReplaceGarden(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req updateGardenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.ReplaceGarden(c.Request().Context(), id, req.UpdatedGarden); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Garden updated successfully")
}

// --- Plants ---

func (h *GameDataHandler) GetPlants(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	plants, err := h.uc.GetPlants(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, plants)
}

func (h *GameDataHandler) AddPlant(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req addPlantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.AddPlant(c.Request().Context(), id, req.Plant); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Plant added successfully")
}

func (h *GameDataHandler) RemovePlant(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req removePlantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.RemovePlant(c.Request().Context(), id, recordID(req.IDToRemove)); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Plant removed successfully")
}

// ReplacePlants also serves the buffs route, which rewrites the list with buffed plants.
func (h *GameDataHandler) ReplacePlants(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req updatePlantsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.ReplacePlants(c.Request().Context(), id, req.UpdatedPlants); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Plants updated successfully")
}

// --- Upgrades and supplies ---

func (h *GameDataHandler) GetUpgrades(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	upgrades, err := h.uc.GetUpgrades(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, upgrades)
}

func (h *GameDataHandler) AddUpgrade(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req addUpgradeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.AddUpgrade(c.Request().Context(), id, req.Upgrade); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Upgrade added successfully")
}

func (h *GameDataHandler) GetSupplies(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	supplies, err := h.uc.GetSupplies(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, supplies)
}

func (h *GameDataHandler) AddSupply(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req addSupplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.AddSupply(c.Request().Context(), id, req.Supply); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Supply added successfully")
}

func (h *GameDataHandler) RemoveSupply(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req removeSupplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.RemoveSupply(c.Request().Context(), id, recordID(req.SupplyID)); err != nil {
		return errors.WithStack(err)
	}

	return acknowledge(c, "Supply removed successfully")
}
