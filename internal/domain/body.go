package domain

// Link is an anchor found in an email body
type Link struct {
	Text string
	URL  string
}

// Body is an email body reduced to plain text and its links, in document order
type Body struct {
	Links []Link
	Text  string
}
