package services

import (
	"strings"

	"topup_store_echo/internal/models"
)

// Catalog is the fixed list of games, their purchasable products, the
// supported payment channels and the onboarding slides. It is read-only
// reference data; recorded order amounts are never revalidated against it.
type Catalog struct {
	games      []models.Game
	slides     []models.OnboardingSlide
	payMethods []string
}

// NewCatalog builds the static storefront catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		games: []models.Game{
			{
				ID: "ml", Name: "Mobile Legends", Image: "/static/games/mlbb.jpg", Popular: true,
				Products: []models.Product{
					{ID: "1", Label: "86 Diamond", Price: 12000},
					{ID: "2", Label: "172 Diamond", Price: 24000},
				},
			},
			{
				ID: "freefire", Name: "Free Fire", Image: "/static/games/freefire.jpg", Popular: true,
				Products: []models.Product{
					{ID: "1", Label: "70 Diamond", Price: 10000},
					{ID: "2", Label: "140 Diamond", Price: 20000},
					{ID: "3", Label: "355 Diamond", Price: 48000},
				},
			},
			{
				ID: "valorant", Name: "Valorant", Image: "/static/games/valo.jpg", Popular: true,
				Products: []models.Product{
					{ID: "1", Label: "125 VP", Price: 15000},
					{ID: "2", Label: "250 VP", Price: 30000},
				},
			},
			{
				ID: "pubg", Name: "PUBG Mobile", Image: "/static/games/pubg.jpg", Popular: false,
				Products: []models.Product{
					{ID: "1", Label: "325 UC", Price: 45000},
					{ID: "2", Label: "660 UC", Price: 89000},
				},
			},
		},
		slides: []models.OnboardingSlide{
			{ID: "1", Title: "Selamat Datang!", Description: "Aplikasi TopUp Voucher siap kamu pakai", Image: "/static/promo.jpg"},
			{ID: "2", Title: "Cepat & Mudah", Description: "Top up tanpa ribet langsung dari ponselmu", Image: "/static/promo.jpg"},
			{ID: "3", Title: "Ayo Mulai!", Description: "Klik Mulai untuk masuk ke aplikasi", Image: "/static/promo.jpg"},
		},
		payMethods: []string{"Dana", "GoPay", "OVO", "ShopeePay", "Bank Transfer"},
	}
}

// Games returns every catalog entry.
func (c *Catalog) Games() []models.Game {
	out := make([]models.Game, len(c.games))
	copy(out, c.games)
	return out
}

// Popular returns the games flagged as popular.
func (c *Catalog) Popular() []models.Game {
	out := make([]models.Game, 0, len(c.games))
	for _, g := range c.games {
		if g.Popular {
			out = append(out, g)
		}
	}
	return out
}

// Search returns the games whose name contains the query, case-insensitive.
// An empty query matches everything.
func (c *Catalog) Search(query string) []models.Game {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Games()
	}
	out := make([]models.Game, 0)
	for _, g := range c.games {
		if strings.Contains(strings.ToLower(g.Name), q) {
			out = append(out, g)
		}
	}
	return out
}

// FindGame looks a game up by its catalog id.
func (c *Catalog) FindGame(id string) (models.Game, bool) {
	for _, g := range c.games {
		if g.ID == id {
			return g, true
		}
	}
	return models.Game{}, false
}

// FindProduct resolves a game/product pair.
func (c *Catalog) FindProduct(gameID, productID string) (models.Game, models.Product, bool) {
	game, ok := c.FindGame(gameID)
	if !ok {
		return models.Game{}, models.Product{}, false
	}
	for _, p := range game.Products {
		if p.ID == productID {
			return game, p, true
		}
	}
	return models.Game{}, models.Product{}, false
}

// PaymentMethods returns the supported payment channel labels.
func (c *Catalog) PaymentMethods() []string {
	out := make([]string, len(c.payMethods))
	copy(out, c.payMethods)
	return out
}

// ValidPaymentMethod reports whether m is a supported payment channel.
func (c *Catalog) ValidPaymentMethod(m string) bool {
	for _, pm := range c.payMethods {
		if strings.EqualFold(pm, m) {
			return true
		}
	}
	return false
}

// OnboardingSlides returns the first-run introduction screens.
func (c *Catalog) OnboardingSlides() []models.OnboardingSlide {
	out := make([]models.OnboardingSlide, len(c.slides))
	copy(out, c.slides)
	return out
}
