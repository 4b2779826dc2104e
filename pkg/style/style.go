// Package style colors strings for the console dialog.
package style

import "github.com/fatih/color"

var (
	blue   = color.New(color.FgBlue, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
)

// Blue returns the string colored blue. Used for informational text.
func Blue(s string) string {
	return blue.Sprint(s)
}

// Yellow returns the string colored yellow. Used for warnings and titles.
func Yellow(s string) string {
	return yellow.Sprint(s)
}
