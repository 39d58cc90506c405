package domain

// Topic groups articles. Slug is the natural key and the set of slugs is the
// allow-list for the article topic filter.
type Topic struct {
	Slug        string
	Description string
}
