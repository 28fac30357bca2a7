package models

type User struct {
	Username  string `gorm:"column:username;primaryKey" json:"username"`
	Name      string `gorm:"column:name;not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}

func (User) TableName() string { return "users" }
