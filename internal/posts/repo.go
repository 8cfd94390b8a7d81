package posts

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/syedimran-dev/myblog3/internal/database"
	"github.com/syedimran-dev/myblog3/internal/users"
)

var (
	ErrTitleTaken = errors.New("a post with that title already exists")
	ErrNotFound   = errors.New("post not found")
	ErrNotOwner   = errors.New("only the author may change this post")
)

// DateLayout is the human-readable creation date shown on posts,
// e.g. "August 30 2026".
const DateLayout = "January 02 2006"

func List() ([]Post, error) {
	var list []Post
	err := database.DB.Preload("Author").Order("created_at ASC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}

func Get(id uint) (*Post, error) {
	var p Post
	err := database.DB.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}

func titleTaken(title string, excludeID uint) (bool, error) {
	var count int64
	query := database.DB.Model(&Post{}).Where("title = ?", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check title: %w", err)
	}
	return count > 0, nil
}

// Create stores a new post. The creation date is fixed to the server's
// current date; duplicate titles are rejected before touching the unique
// constraint so callers get a typed error instead of a driver error.
func Create(author *users.User, title, subtitle, imageURL, body string) (*Post, error) {
	taken, err := titleTaken(title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTitleTaken
	}

	p := Post{
		Title:    title,
		Slug:     slug.Make(title),
		Subtitle: subtitle,
		Date:     time.Now().Format(DateLayout),
		Body:     body,
		ImageURL: imageURL,
		AuthorID: author.ID,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &p, nil
}

// Update rewrites the editable fields. Only the post's author may edit.
func Update(id uint, actor *users.User, title, subtitle, imageURL, body string) (*Post, error) {
	var p Post
	if err := database.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	if p.AuthorID != actor.ID {
		return nil, ErrNotOwner
	}

	taken, err := titleTaken(title, p.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTitleTaken
	}

	p.Title = title
	p.Slug = slug.Make(title)
	p.Subtitle = subtitle
	p.ImageURL = imageURL
	p.Body = body
	if err := database.DB.Save(&p).Error; err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &p, nil
}

// Delete removes a post and its comments in one transaction, so a failure
// partway can never leave a comment pointing at a missing post. Only the
// post's author may delete.
func Delete(id uint, actor *users.User) error {
	var p Post
	if err := database.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get post: %w", err)
	}

	if p.AuthorID != actor.ID {
		return ErrNotOwner
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Comment{}, "post_id = ?", p.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// AddComment attaches a comment to an existing post.
func AddComment(postID uint, author *users.User, text string) (*Comment, error) {
	var p Post
	if err := database.DB.First(&p, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	comment := Comment{
		Text:     text,
		AuthorID: author.ID,
		PostID:   p.ID,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &comment, nil
}
