package theme

func init() {
	RegisterTheme("gruvbox", Palette{
		TagColor:           color("#83a598", "#076678"),
		TagTextColor:       color("#282828", "#fbf1c7"),
		TagSelectedColor:   color("#d3869b", "#8f3f71"),
		TagBlinkColor:      color("#fe8019", "#af3a03"),
		TextColor:          color("#ebdbb2", "#3c3836"),
		TextMutedColor:     color("#a89984", "#7c6f64"),
		HighlightColor:     color("#fabd2f", "#b57614"),
		ErrorColor:         color("#fb4934", "#9d0006"),
		BorderColor:        color("#504945", "#bdae93"),
		BorderFocusedColor: color("#83a598", "#076678"),
	})
}
