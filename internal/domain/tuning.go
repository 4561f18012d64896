package domain

// CategoryWeights are the XP multipliers per category
type CategoryWeights struct {
	Build float64 `json:"build"`
	Ship  float64 `json:"ship"`
	Reach float64 `json:"reach"`
}

// DefaultCategoryWeights favors non-build work
func DefaultCategoryWeights() CategoryWeights {
	return CategoryWeights{Build: 1.0, Ship: 1.25, Reach: 1.2}
}

// For returns the multiplier for c
func (w CategoryWeights) For(c Category) float64 {
	switch c {
	case CategoryShip:
		return w.Ship
	case CategoryReach:
		return w.Reach
	case CategoryBuild:
		return w.Build
	}
	return 1.0
}

// Rarity holds the base probabilities of each loot tier
type Rarity struct {
	Common float64 `json:"common"`
	Rare   float64 `json:"rare"`
	Epic   float64 `json:"epic"`
}

// DefaultRarity is 80% common, 18% rare, 2% epic
func DefaultRarity() Rarity {
	return Rarity{Common: 0.8, Rare: 0.18, Epic: 0.02}
}
