package slides

// Slide is one page of the preview: the deck slide's textual content
// rendered as markdown.
type Slide struct {
	Title   string
	Content string
}
