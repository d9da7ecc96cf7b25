package ui

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Class merges tailwind classes; later classes win on conflicts, so theme
// overrides can be appended to a base set.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}

// Theme returns the dark variant when dark is set.
func Theme(dark bool, light, darkClasses string) string {
	if dark {
		return Class(light, darkClasses)
	}
	return Class(light)
}
