package posts

import (
	"time"

	"github.com/syedimran-dev/myblog3/internal/users"
)

type Comment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Text      string     `gorm:"size:255;not null" json:"text"`
	AuthorID  uint       `gorm:"not null" json:"author_id"`
	Author    users.User `gorm:"foreignKey:AuthorID" json:"-"`
	PostID    uint       `gorm:"not null;index" json:"post_id"`
	CreatedAt time.Time  `json:"created_at"`
}
