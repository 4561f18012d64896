package domain

// Loot item identifiers
const (
	ItemBuildShard = "build_shard"
	ItemShipToken  = "ship_token"
	ItemReachLeaf  = "reach_leaf"
	ItemCommonGem  = "common_gem"
	ItemRareBadge  = "rare_badge"
	ItemEpicBadge  = "epic_badge"
)

// MaterialFor returns the category-specific material dropped by every loot roll
func MaterialFor(c Category) string {
	switch c {
	case CategoryShip:
		return ItemShipToken
	case CategoryReach:
		return ItemReachLeaf
	default:
		return ItemBuildShard
	}
}
