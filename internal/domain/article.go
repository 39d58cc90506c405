// Package domain contains the core data types for the NC News API.
// This package has zero external dependencies and is imported by every other
// internal package (query, repo, service, handler).
package domain

import "time"

// Article is a single news story posted under a topic.
// CommentCount is never stored; it is derived at read time from the comments table.
type Article struct {
	ID            int64
	Title         string
	Topic         string
	Author        string
	Body          string // empty in listings
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
	CommentCount  int
}

// NewArticle carries the fields a client may supply when posting an article.
// An empty ArticleImgURL lets the database default apply.
type NewArticle struct {
	Author        string
	Title         string
	Body          string
	Topic         string
	ArticleImgURL string
}

// ArticlePage is one page of a filtered article listing together with the
// number of rows the same filter matches without pagination.
type ArticlePage struct {
	Articles   []Article
	TotalCount int64
}
