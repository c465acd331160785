package theme

func init() {
	RegisterTheme("tokyonight", Palette{
		TagColor:           color("#7dcfff", "#0db9d7"),
		TagTextColor:       color("#222436", "#e1e2e7"),
		TagSelectedColor:   color("#c099ff", "#9854f1"),
		TagBlinkColor:      color("#ff966c", "#b15c00"),
		TextColor:          color("#c8d3f5", "#3760bf"),
		TextMutedColor:     color("#636da6", "#848cb5"),
		HighlightColor:     color("#c099ff", "#9854f1"),
		ErrorColor:         color("#ff757f", "#f52a65"),
		BorderColor:        color("#3b4261", "#a8aecb"),
		BorderFocusedColor: color("#82aaff", "#2e7de9"),
	})
}
