package theme

func init() {
	RegisterTheme("catppuccin", Palette{
		TagColor:           color("#89b4fa", "#1e66f5"),
		TagTextColor:       color("#1e1e2e", "#eff1f5"),
		TagSelectedColor:   color("#cba6f7", "#8839ef"),
		TagBlinkColor:      color("#fab387", "#fe640b"),
		TextColor:          color("#cdd6f4", "#4c4f69"),
		TextMutedColor:     color("#6c7086", "#9ca0b0"),
		HighlightColor:     color("#cba6f7", "#8839ef"),
		ErrorColor:         color("#f38ba8", "#d20f39"),
		BorderColor:        color("#45475a", "#ccd0da"),
		BorderFocusedColor: color("#89b4fa", "#1e66f5"),
	})
}
