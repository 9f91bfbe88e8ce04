// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"garden/internal/delivery/http/middleware"
	"garden/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	GameDataHandler *handler.GameDataHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	gameDataHandler *handler.GameDataHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		gameDataHandler: params.GameDataHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/ping", handler.Ping)
	api.POST("/register", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)

	// Everything below acts on the caller's own documents.
	auth := r.authMiddleware.Authenticate
	h := r.gameDataHandler

	api.GET("/profile", h.GetProfile, auth)
	api.PATCH("/profile/balance", h.UpdateBalance, auth)
	api.PATCH("/profile/usedPlantCapacity", h.IncrementUsedPlantCapacity, auth)
	api.PATCH("/profile/onboardingStatus", h.UpdateOnboardingStatus, auth)
	api.PUT("/profile/update", h.UpdateProfile, auth)

	api.GET("/seeds", h.GetSeeds, auth)
	api.PATCH("/seeds/decrement", h.DecrementSeed, auth)
	api.PUT("/seeds/update", h.ReplaceSeeds, auth)
	api.PUT("/seeds/count", h.UpdateSeed("Seed count updated successfully"), auth)
	api.PUT("/seeds/unlock", h.UpdateSeed("Seed unlocked successfully"), auth)

	api.GET("/inventory", h.GetInventory, auth)
	api.PUT("/inventory/update", h.ReplaceInventory, auth)

	api.GET("/shop", h.GetShop, auth)
	api.PUT("/shop/update", h.ReplaceShop, auth)

	api.GET("/purchases", h.GetPurchases, auth)
	api.PUT("/purchases/update", h.ReplacePurchases, auth)

	api.GET("/plants", h.GetPlants, auth)
	api.POST("/plants/add", h.AddPlant, auth)
	api.PATCH("/plants/remove", h.RemovePlant, auth)
	api.PUT("/plants/update", h.ReplacePlants, auth)
	api.PUT("/plants/buffs", h.ReplacePlants, auth)

	api.GET("/upgrades", h.GetUpgrades, auth)
	api.PATCH("/upgrades/add", h.AddUpgrade, auth)

	api.GET("/supplies", h.GetSupplies, auth)
	api.PATCH("/supplies/add", h.AddSupply, auth)
	api.PATCH("/supplies/remove", h.RemoveSupply, auth)

	api.GET("/garden", h.GetGarden, auth)
	api.PUT("/garden/update", h.ReplaceGarden, auth)
}
