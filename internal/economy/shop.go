package economy

import "github.com/osse101/questgame/internal/domain"

// Reward is a purchasable real-life treat
type Reward struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// Shop is the fixed reward catalog keyed by reward id
var Shop = map[string]Reward{
	"anime":   {Name: "Assistir Anime", Cost: 50},
	"youtube": {Name: "Ver YouTube", Cost: 30},
	"series":  {Name: "Ver Serie", Cost: 60},
	"sleep":   {Name: "Dormir", Cost: 20},
	"rest":    {Name: "Descansar", Cost: 15},
	"silence": {Name: "Silencio", Cost: 10},
	"meditar": {Name: "Meditar", Cost: 10},
	"rezar":   {Name: "Rezar", Cost: 10},
	"hytale":  {Name: "Jogar Hytale", Cost: 65},
}

// Wishlist pending reward presentation
const (
	WishlistRewardID   = "wishlist"
	WishlistRewardName = "Compra Gratis!"
	WishlistRewardIcon = "🌟"
)

// RewardIcons decorates pending rewards in the UI
var RewardIcons = map[string]string{
	"anime":   "🎬",
	"youtube": "📺",
	"series":  "🍿",
	"sleep":   "😴",
	"rest":    "☕",
	"silence": "🧘",
	"meditar": "🧘",
	"rezar":   "🙏",
	"hytale":  "🎮",
}

// LookupReward returns the catalog entry for id
func LookupReward(id string) (Reward, error) {
	r, ok := Shop[id]
	if !ok {
		return Reward{}, domain.ErrRewardNotFound
	}
	return r, nil
}

// Buy spends the reward cost from inventory. It returns the new inventory
// or an InsufficientGoldError carrying the current fortune.
func Buy(inventory []string, cost int) ([]string, error) {
	kept, ok := SpendCheapestFirst(inventory, cost)
	if !ok {
		return inventory, &domain.InsufficientGoldError{Fortune: Fortune(inventory), Cost: cost}
	}
	return kept, nil
}
