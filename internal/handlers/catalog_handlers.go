package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"topup_store_echo/internal/services"
)

// CatalogHandler serves the static game catalog
type CatalogHandler struct {
	catalog *services.Catalog
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog *services.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListGames returns the catalog, optionally filtered by ?q= (name search)
// or ?popular=true
func (h *CatalogHandler) ListGames(c echo.Context) error {
	if c.QueryParam("popular") == "true" {
		return c.JSON(http.StatusOK, h.catalog.Popular())
	}
	return c.JSON(http.StatusOK, h.catalog.Search(c.QueryParam("q")))
}

// GetGame returns one game with its products
func (h *CatalogHandler) GetGame(c echo.Context) error {
	game, ok := h.catalog.FindGame(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found")
	}
	return c.JSON(http.StatusOK, game)
}

// PaymentMethods returns the supported payment channel labels
func (h *CatalogHandler) PaymentMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.PaymentMethods())
}

// Onboarding returns the first-run introduction slides
func (h *CatalogHandler) Onboarding(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.OnboardingSlides())
}
