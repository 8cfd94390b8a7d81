package posts

import (
	"time"

	"github.com/syedimran-dev/myblog3/internal/users"
)

type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:250;unique;not null" json:"title"`
	Slug      string     `gorm:"size:250;unique;not null" json:"slug"`
	Subtitle  string     `gorm:"size:250;not null" json:"subtitle"`
	Date      string     `gorm:"size:250;not null" json:"date"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	ImageURL  string     `gorm:"size:250;not null" json:"image_url"`
	AuthorID  uint       `gorm:"not null" json:"author_id"`
	Author    users.User `gorm:"foreignKey:AuthorID" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
