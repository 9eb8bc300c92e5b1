package app

// SettingsStore is a process-wide key/value store for user settings.
//
// Values survive restarts. Missing keys return the fallback.
// The method set matches [fyne.Preferences], so Fyne's preferences can be used directly.
type SettingsStore interface {
	FloatWithFallback(key string, fallback float64) float64
	IntWithFallback(key string, fallback int) int
	SetFloat(key string, value float64)
	SetInt(key string, value int)
	SetString(key string, value string)
	StringWithFallback(key string, fallback string) string
}
