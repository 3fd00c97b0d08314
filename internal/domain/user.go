package domain

// User represents an internal account. A user may be reachable through a
// Roblox identity, a Discord identity, or both.
type User struct {
	ID          string   `json:"internal_id"`
	RobloxID    string   `json:"roblox_id"`
	DiscordID   string   `json:"discord_id"`
	Blacklisted bool     `json:"blacklisted"`
	ProductIDs  []string `json:"product_ids"`
}

// ExternalID returns the external id bound for the given platform,
// or "" when that platform is not linked.
func (u *User) ExternalID(platform string) string {
	switch platform {
	case PlatformRoblox:
		return u.RobloxID
	case PlatformDiscord:
		return u.DiscordID
	}
	return ""
}

// OwnsProduct reports whether the user owns the given product id.
func (u *User) OwnsProduct(productID string) bool {
	for _, id := range u.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
