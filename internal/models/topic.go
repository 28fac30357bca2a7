package models

type Topic struct {
	Slug        string  `gorm:"column:slug;primaryKey" json:"slug"`
	Description string  `gorm:"column:description;not null" json:"description"`
	ImgURL      *string `gorm:"column:img_url" json:"img_url"`
}

func (Topic) TableName() string { return "topics" }

type CreateTopicRequest struct {
	Slug        string `json:"slug" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
}
