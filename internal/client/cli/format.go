package cli

// Formatting helpers insert flat markdown-style markers around text. The
// note body stays a plain string; there is no rich-format representation.

// WrapBold wraps text in ** markers.
func WrapBold(text string) string {
	return "**" + text + "**"
}

// WrapItalic wraps text in * markers.
func WrapItalic(text string) string {
	return "*" + text + "*"
}
