package seed

import (
	"time"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

func ms(epochMillis int64) time.Time {
	return time.UnixMilli(epochMillis).UTC()
}

const (
	mitchImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"
)

// TestData returns the fixed dataset the API integration tests assert
// against: 3 topics, 4 users, 13 articles (12 about mitch, 1 about cats,
// none about paper) and 18 comments, 11 of them on article 1.
func TestData() Data {
	return Data{
		Topics: []domain.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []domain.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []Article{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ms(1594329060000), Votes: 100, ArticleImgURL: mitchImg},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago I thought I would buy a laptop.", CreatedAt: ms(1602828180000), ArticleImgURL: mitchImg},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ms(1604394720000), ArticleImgURL: mitchImg},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: ms(1588731240000), ArticleImgURL: mitchImg},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ms(1596464040000), ArticleImgURL: mitchImg},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ms(1602986400000), ArticleImgURL: mitchImg},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ms(1578406080000), ArticleImgURL: mitchImg},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: ms(1587089280000), ArticleImgURL: mitchImg},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ms(1591438200000), ArticleImgURL: mitchImg},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ms(1589433300000), ArticleImgURL: mitchImg},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall.", CreatedAt: ms(1579126860000), ArticleImgURL: mitchImg},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ms(1602419040000), ArticleImgURL: mitchImg},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: ms(1602419040000), ArticleImgURL: mitchImg},
		},
		Comments: []Comment{
			{Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", ArticleID: 9, Author: "butter_bridge", Votes: 16, CreatedAt: ms(1586179020000)},
			{Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", ArticleID: 1, Author: "butter_bridge", Votes: 14, CreatedAt: ms(1604113380000)},
			{Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy - onyou it works.", ArticleID: 1, Author: "icellusedkars", Votes: 100, CreatedAt: ms(1583025180000)},
			{Body: " I carry a log - yes. Is it funny to you? It is not to me.", ArticleID: 1, Author: "icellusedkars", Votes: -100, CreatedAt: ms(1582459260000)},
			{Body: "I hate streaming noses", ArticleID: 1, Author: "icellusedkars", CreatedAt: ms(1604437200000)},
			{Body: "I hate streaming eyes even more", ArticleID: 1, Author: "icellusedkars", CreatedAt: ms(1586642520000)},
			{Body: "Lobster pot", ArticleID: 1, Author: "icellusedkars", CreatedAt: ms(1589577540000)},
			{Body: "Delicious crackerbreads", ArticleID: 1, Author: "icellusedkars", CreatedAt: ms(1586899140000)},
			{Body: "Superficially charming", ArticleID: 1, Author: "icellusedkars", CreatedAt: ms(1577848080000)},
			{Body: "git push origin master", ArticleID: 3, Author: "icellusedkars", CreatedAt: ms(1592641440000)},
			{Body: "Ambidextrous marsupial", ArticleID: 3, Author: "icellusedkars", CreatedAt: ms(1600560600000)},
			{Body: "Massive intercranial brain haemorrhage", ArticleID: 1, Author: "icellusedkars", CreatedAt: ms(1583133000000)},
			{Body: "Fruit pastilles", ArticleID: 1, Author: "icellusedkars", CreatedAt: ms(1592220300000)},
			{Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", ArticleID: 5, Author: "icellusedkars", Votes: 16, CreatedAt: ms(1591682400000)},
			{Body: "I am 100% sure that we're not completely sure.", ArticleID: 5, Author: "butter_bridge", Votes: 1, CreatedAt: ms(1606176480000)},
			{Body: "This is a bad article name", ArticleID: 6, Author: "butter_bridge", Votes: 1, CreatedAt: ms(1602433380000)},
			{Body: "The owls are not what they seem.", ArticleID: 9, Author: "icellusedkars", Votes: 20, CreatedAt: ms(1584205320000)},
			{Body: "This morning, I showered for nine minutes.", ArticleID: 1, Author: "butter_bridge", Votes: 16, CreatedAt: ms(1595294400000)},
		},
	}
}
