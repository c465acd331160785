// Package theme provides the semantic colors used to paint the tag input.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors of the tag input.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Tag pills
	Tag() lipgloss.AdaptiveColor         // Pill background
	TagText() lipgloss.AdaptiveColor     // Pill label
	TagSelected() lipgloss.AdaptiveColor // Selected pill background
	TagBlink() lipgloss.AdaptiveColor    // Duplicate pulse background

	// Text
	Text() lipgloss.AdaptiveColor      // Typed text, dropdown options
	TextMuted() lipgloss.AdaptiveColor // Placeholder, hints
	Highlight() lipgloss.AdaptiveColor // Highlighted dropdown option
	Error() lipgloss.AdaptiveColor     // Validation messages

	// Borders
	Border() lipgloss.AdaptiveColor        // Unfocused input border
	BorderFocused() lipgloss.AdaptiveColor // Focused input border
}

// Palette is a Theme backed by fixed colors.
type Palette struct {
	TagColor           lipgloss.AdaptiveColor
	TagTextColor       lipgloss.AdaptiveColor
	TagSelectedColor   lipgloss.AdaptiveColor
	TagBlinkColor      lipgloss.AdaptiveColor
	TextColor          lipgloss.AdaptiveColor
	TextMutedColor     lipgloss.AdaptiveColor
	HighlightColor     lipgloss.AdaptiveColor
	ErrorColor         lipgloss.AdaptiveColor
	BorderColor        lipgloss.AdaptiveColor
	BorderFocusedColor lipgloss.AdaptiveColor
}

func (p Palette) Tag() lipgloss.AdaptiveColor           { return p.TagColor }
func (p Palette) TagText() lipgloss.AdaptiveColor       { return p.TagTextColor }
func (p Palette) TagSelected() lipgloss.AdaptiveColor   { return p.TagSelectedColor }
func (p Palette) TagBlink() lipgloss.AdaptiveColor      { return p.TagBlinkColor }
func (p Palette) Text() lipgloss.AdaptiveColor          { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor     { return p.TextMutedColor }
func (p Palette) Highlight() lipgloss.AdaptiveColor     { return p.HighlightColor }
func (p Palette) Error() lipgloss.AdaptiveColor         { return p.ErrorColor }
func (p Palette) Border() lipgloss.AdaptiveColor        { return p.BorderColor }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor { return p.BorderFocusedColor }

func color(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}
