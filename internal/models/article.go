package models

import "time"

// DefaultArticleImgURL is stored when an article is posted without an image.
const DefaultArticleImgURL = "http://www.gravatar.com/avatar/?d=mp"

type Article struct {
	ArticleID     int       `gorm:"column:article_id;primaryKey" json:"article_id"`
	Title         string    `gorm:"column:title;not null" json:"title"`
	Topic         string    `gorm:"column:topic;not null" json:"topic"`
	Author        string    `gorm:"column:author;not null" json:"author"`
	Body          string    `gorm:"column:body;not null" json:"body"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	Votes         int       `gorm:"column:votes" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`

	// CommentCount is only populated when the caller asked for it.
	CommentCount *int `gorm:"column:comment_count;->" json:"comment_count,omitempty"`
}

func (Article) TableName() string { return "articles" }

// ArticleSummary is one row of the article listing: no body, always a count.
type ArticleSummary struct {
	ArticleID     int       `gorm:"column:article_id" json:"article_id"`
	Title         string    `gorm:"column:title" json:"title"`
	Topic         string    `gorm:"column:topic" json:"topic"`
	Author        string    `gorm:"column:author" json:"author"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	Votes         int       `gorm:"column:votes" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`
	CommentCount  int       `gorm:"column:comment_count" json:"comment_count"`
}

type ArticlePage struct {
	Articles   []ArticleSummary `json:"articles"`
	TotalCount int64            `json:"total_count"`
}

type CreateArticleRequest struct {
	Author        string  `json:"author" binding:"required,notblank"`
	Title         string  `json:"title" binding:"required,notblank"`
	Body          string  `json:"body" binding:"required,notblank"`
	Topic         string  `json:"topic" binding:"required,notblank"`
	ArticleImgURL *string `json:"article_img_url" binding:"omitempty,notblank"`
}
