package models

import "time"

// Snippet is a language-tagged piece of code owned by a user. Likes and
// Dislikes only ever grow under the exposed operations; there is no unlike.
// CreatedAt is set at insert and immutable afterwards.
type Snippet struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int32     `json:"likes"`
	Dislikes  int32     `json:"dislikes"`
	Saved     bool      `json:"saved"`
}
