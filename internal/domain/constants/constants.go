// Package constants contains configuration values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Push notification providers.
const (
	PushProviderFirebase = "firebase"
	PushProviderLog      = "log"
)

// Realtime broadcast providers.
const (
	BroadcastProviderLocal  = "local"
	BroadcastProviderRedis  = "redis"
	BroadcastProviderGoogle = "google"
)

// Realtime channel names.
const (
	ChannelTrigger          = "azan:trigger"
	ChannelLiveAnnouncement = "live:announcement"
)

// DefaultAndroidChannelID is the Android notification channel trigger pushes are posted to.
const DefaultAndroidChannelID = "prayer-times"

// DefaultUTCOffsetMinutes is UTC+05:30.
const DefaultUTCOffsetMinutes = 330
