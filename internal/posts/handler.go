package posts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syedimran-dev/myblog3/internal/auth"
	"github.com/syedimran-dev/myblog3/internal/flash"
)

type postForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	ImageURL string `form:"image_url" binding:"required"`
	Body     string `form:"body" binding:"required"`
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "invalid post id"})
		return 0, false
	}
	return uint(id), true
}

func HomeHandler(c *gin.Context) {
	list, err := List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "could not load posts"})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Home",
		"user":  auth.UserFrom(c),
		"flash": flash.Take(c),
		"posts": list,
	})
}

func NewPostFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "post_form.html", gin.H{
		"title":  "New Post",
		"user":   auth.UserFrom(c),
		"flash":  flash.Take(c),
		"post":   Post{},
		"action": "/add_post",
		"isEdit": false,
	})
}

func CreatePostHandler(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, "All fields are required.")
		c.Redirect(http.StatusFound, "/add_post")
		return
	}

	_, err := Create(auth.UserFrom(c), form.Title, form.Subtitle, form.ImageURL, form.Body)
	switch {
	case err == ErrTitleTaken:
		flash.Set(c, "A post with that title already exists, pick another one.")
		c.Redirect(http.StatusFound, "/add_post")
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "could not create post"})
		return
	}

	c.Redirect(http.StatusFound, "/home")
}

func ShowPostHandler(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	p, err := Get(id)
	switch {
	case err == ErrNotFound:
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "post not found"})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "could not load post"})
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"title": p.Title,
		"user":  auth.UserFrom(c),
		"flash": flash.Take(c),
		"post":  p,
	})
}

// AddCommentHandler handles the comment form on the post page. Anonymous
// visitors can read the post but get sent to the login page if they try to
// comment.
func AddCommentHandler(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	user := auth.UserFrom(c)
	if user == nil {
		flash.Set(c, "You need to login or register to comment.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	text := c.PostForm("text")
	if text == "" {
		flash.Set(c, "Comment text is required.")
		c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
		return
	}

	_, err := AddComment(id, user, text)
	switch {
	case err == ErrNotFound:
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "post not found"})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "could not add comment"})
		return
	}

	c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
}

func EditPostFormHandler(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	p, err := Get(id)
	switch {
	case err == ErrNotFound:
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "post not found"})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "could not load post"})
		return
	}

	if p.AuthorID != auth.UserFrom(c).ID {
		flash.Set(c, "You can only edit your own posts.")
		c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
		return
	}

	c.HTML(http.StatusOK, "post_form.html", gin.H{
		"title":  "Edit Post",
		"user":   auth.UserFrom(c),
		"flash":  flash.Take(c),
		"post":   p,
		"action": "/edit/" + c.Param("id"),
		"isEdit": true,
	})
}

func UpdatePostHandler(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, "All fields are required.")
		c.Redirect(http.StatusFound, "/edit/"+c.Param("id"))
		return
	}

	_, err := Update(id, auth.UserFrom(c), form.Title, form.Subtitle, form.ImageURL, form.Body)
	switch {
	case err == ErrNotFound:
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "post not found"})
		return
	case err == ErrNotOwner:
		flash.Set(c, "You can only edit your own posts.")
		c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
		return
	case err == ErrTitleTaken:
		flash.Set(c, "A post with that title already exists, pick another one.")
		c.Redirect(http.StatusFound, "/edit/"+c.Param("id"))
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "could not update post"})
		return
	}

	c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
}

func DeletePostHandler(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	err := Delete(id, auth.UserFrom(c))
	switch {
	case err == ErrNotFound:
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "post not found"})
		return
	case err == ErrNotOwner:
		flash.Set(c, "You can only delete your own posts.")
		c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "could not delete post"})
		return
	}

	c.Redirect(http.StatusFound, "/home")
}
