package entity

// SoundAsset is a named audio file referenced by trigger definitions.
type SoundAsset struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Locator  string `json:"sound_file"` // absolute URL, opaque to the engine
	IsActive bool   `json:"is_active"`
}
