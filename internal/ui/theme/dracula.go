package theme

// Dracula color palette
// https://draculatheme.com/contribute
func init() {
	RegisterTheme("dracula", Palette{
		TagColor:           color("#8be9fd", "#0097a7"),
		TagTextColor:       color("#282a36", "#ffffff"),
		TagSelectedColor:   color("#bd93f9", "#7e57c2"),
		TagBlinkColor:      color("#ffb86c", "#ef6c00"),
		TextColor:          color("#f8f8f2", "#212121"),
		TextMutedColor:     color("#6272a4", "#757575"),
		HighlightColor:     color("#ff79c6", "#c2185b"),
		ErrorColor:         color("#ff5555", "#d32f2f"),
		BorderColor:        color("#44475a", "#bdbdbd"),
		BorderFocusedColor: color("#bd93f9", "#7e57c2"),
	})
}
