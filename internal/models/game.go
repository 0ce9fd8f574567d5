package models

// Product is a purchasable top-up package for a game
type Product struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// Game is a catalog entry with its purchasable products
type Game struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Popular  bool      `json:"popular"`
	Products []Product `json:"products"`
}

// OnboardingSlide is one screen of the first-run introduction
type OnboardingSlide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
