package theme

// Nord color palette
// https://www.nordtheme.com/docs/colors-and-palettes
func init() {
	RegisterTheme("nord", Palette{
		TagColor:           color("#88C0D0", "#5E81AC"),
		TagTextColor:       color("#2E3440", "#ECEFF4"),
		TagSelectedColor:   color("#B48EAD", "#B48EAD"),
		TagBlinkColor:      color("#D08770", "#D08770"),
		TextColor:          color("#D8DEE9", "#2E3440"),
		TextMutedColor:     color("#4C566A", "#4C566A"),
		HighlightColor:     color("#8FBCBB", "#5E81AC"),
		ErrorColor:         color("#BF616A", "#BF616A"),
		BorderColor:        color("#3B4252", "#D8DEE9"),
		BorderFocusedColor: color("#81A1C1", "#5E81AC"),
	})
}
