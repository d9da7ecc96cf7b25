package model

const (
	DarkModeEnabled  = "enabled"
	DarkModeDisabled = "disabled"
)

type Preferences struct {
	DarkMode bool
}

// DarkModeValue returns the persisted form of the dark mode flag.
func (p Preferences) DarkModeValue() string {
	if p.DarkMode {
		return DarkModeEnabled
	}
	return DarkModeDisabled
}
