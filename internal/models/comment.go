package models

import "time"

type Comment struct {
	CommentID int       `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	ArticleID int       `gorm:"column:article_id;not null" json:"article_id"`
	Body      string    `gorm:"column:body;not null" json:"body"`
	Votes     int       `gorm:"column:votes" json:"votes"`
	Author    string    `gorm:"column:author;not null" json:"author"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }

type CreateCommentRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Body     string `json:"body" binding:"required,notblank"`
}

// VoteRequest carries inc_votes untyped so that absence, falsy values and
// wrong types can be told apart.
type VoteRequest struct {
	IncVotes any `json:"inc_votes"`
}
