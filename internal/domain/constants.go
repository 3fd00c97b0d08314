package domain

// Supported platform identifiers. These are the platform_name values seeded
// in the platforms table and the provider names used on the auth routes.
const (
	PlatformRoblox  = "roblox"
	PlatformDiscord = "discord"
)

// ValidPlatform reports whether the given platform name is supported.
func ValidPlatform(platform string) bool {
	return platform == PlatformRoblox || platform == PlatformDiscord
}
