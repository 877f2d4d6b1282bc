package components

const (
	TaskCardHeight      = 5  // border(2) + title + meta + tags
	taskTitleMaxLength  = 40 // Maximum display length for list titles before truncation
	cardTitleMaxLength  = 22 // Maximum display length for card titles
	descriptionMaxLines = 2  // Wrapped description lines shown under a list row
	columnOverhead      = 5  // border(2) + bottom padding + header + top indicator
	minColumnWidth      = 24

	// Date formats
	detailTimestampLayout = "Jan 2, 2006 3:04 PM"
)
