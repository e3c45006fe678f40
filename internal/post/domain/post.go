package domain

import (
	"time"

	userdomain "snapnet-backend/internal/user/domain"
)

type Post struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	AuthorID    string           `json:"author_id" gorm:"index;not null"`
	Author      *userdomain.User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Image       string           `json:"image,omitempty"`
	Caption     string           `json:"caption"`
	Description string           `json:"description,omitempty"`
	Likes       []Like           `json:"likes,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments    []Comment        `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type Like struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	PostID    string           `json:"post_id" gorm:"index;not null"`
	Post      *Post            `json:"post,omitempty" gorm:"foreignKey:PostID"`
	UserID    string           `json:"user_id" gorm:"index;not null"`
	User      *userdomain.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time        `json:"created_at"`
}

type Comment struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	PostID    string           `json:"post_id" gorm:"index;not null"`
	Post      *Post            `json:"post,omitempty" gorm:"foreignKey:PostID"`
	UserID    string           `json:"user_id" gorm:"index;not null"`
	User      *userdomain.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
}
