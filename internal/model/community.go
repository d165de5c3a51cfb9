package model

import "time"

// PostCategory classifies community posts.
type PostCategory string

const (
	CategoryAchievement PostCategory = "achievement"
	CategoryTips        PostCategory = "tips"
	CategoryQuestion    PostCategory = "question"
	CategoryStory       PostCategory = "story"
)

// Valid reports whether c is a known post category.
func (c PostCategory) Valid() bool {
	switch c {
	case CategoryAchievement, CategoryTips, CategoryQuestion, CategoryStory:
		return true
	}
	return false
}

// Post is a community board post.
type Post struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Category      PostCategory `json:"category"`
	ImageURL      string       `json:"image_url,omitempty"`
	Owner         User         `json:"owner"`
	LikesCount    int          `json:"likes_count"`
	CommentsCount int          `json:"comments_count"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Comment is a community post comment. Append-only from the client's
// perspective.
type Comment struct {
	ID        int       `json:"id"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
