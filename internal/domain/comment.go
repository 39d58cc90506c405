package domain

import "time"

// Comment is a user's reply to an article.
type Comment struct {
	ID        int64
	Body      string
	Author    string
	ArticleID int64
	CreatedAt time.Time
	Votes     int
}

// NewComment carries the fields a client may supply when posting a comment.
type NewComment struct {
	Username string
	Body     string
}

// CommentPage is one page of an article's comments plus the unpaginated total.
type CommentPage struct {
	Comments   []Comment
	TotalCount int64
}
