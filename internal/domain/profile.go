package domain

// Profile is the normalized identity a provider returns after a successful
// authorization-code exchange. It carries facts only; no auth decisions.
type Profile struct {
	Platform   string // PlatformRoblox or PlatformDiscord
	ExternalID string // provider-issued stable identifier
	Username   string
	AvatarURL  string
}
