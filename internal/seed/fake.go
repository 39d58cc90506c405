package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// Fake generates a dataset with n articles, roughly n/4 users, a handful of
// topics and up to 3n comments. The same seed always yields the same data.
func Fake(n int, seed int64) Data {
	f := gofakeit.New(seed)
	if n < 0 {
		n = 0
	}

	var d Data

	topicCount := min(max(n/10, 3), 12)
	for i := range topicCount {
		d.Topics = append(d.Topics, domain.Topic{
			Slug:        fmt.Sprintf("%s-%d", f.Word(), i+1),
			Description: f.Sentence(6),
		})
	}

	userCount := max(n/4, 2)
	for i := range userCount {
		d.Users = append(d.Users, domain.User{
			Username:  fmt.Sprintf("%s_%d", f.Username(), i+1),
			Name:      f.Name(),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.UUID()),
		})
	}

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for range n {
		a := Article{
			Title:     f.Sentence(5),
			Topic:     d.Topics[f.Number(0, topicCount-1)].Slug,
			Author:    d.Users[f.Number(0, userCount-1)].Username,
			Body:      f.Paragraph(1, 3, 12, "\n"),
			CreatedAt: f.DateRange(start, end).UTC(),
			Votes:     f.Number(-20, 200),
		}
		if f.Bool() {
			a.ArticleImgURL = fmt.Sprintf("https://picsum.photos/seed/%s/700/700", f.UUID())
		}
		d.Articles = append(d.Articles, a)
	}

	for i, a := range d.Articles {
		for range f.Number(0, 3) {
			d.Comments = append(d.Comments, Comment{
				Body:      f.Sentence(10),
				ArticleID: int64(i + 1),
				Author:    d.Users[f.Number(0, userCount-1)].Username,
				Votes:     f.Number(-5, 30),
				CreatedAt: f.DateRange(a.CreatedAt, end).UTC(),
			})
		}
	}

	return d
}
