package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedimran-dev/myblog3/internal/database"
	"github.com/syedimran-dev/myblog3/internal/posts"
	"github.com/syedimran-dev/myblog3/internal/users"
)

// ListPostsPublicHandler returns a paginated list of posts
func ListPostsPublicHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	query := database.DB.Model(&posts.Post{})

	// Search by title or subtitle
	if search != "" {
		query = query.Where("title ILIKE ? OR subtitle ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var postList []posts.Post
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&postList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": postList,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetPostPublicHandler returns a single post by ID or slug
func GetPostPublicHandler(c *gin.Context) {
	identifier := c.Param("id")

	var post posts.Post
	var err error

	// Try to parse as ID first
	if id, parseErr := strconv.Atoi(identifier); parseErr == nil {
		err = database.DB.First(&post, id).Error
	} else {
		// Otherwise treat as slug
		err = database.DB.Where("slug = ?", identifier).First(&post).Error
	}

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var commentList []posts.Comment
	database.DB.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&commentList)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"post":     post,
			"comments": commentList,
		},
	})
}

// GetStatsPublicHandler returns public statistics
func GetStatsPublicHandler(c *gin.Context) {
	var postCount, userCount, commentCount int64

	database.DB.Model(&posts.Post{}).Count(&postCount)
	database.DB.Model(&users.User{}).Count(&userCount)
	database.DB.Model(&posts.Comment{}).Count(&commentCount)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"total_posts":    postCount,
			"total_users":    userCount,
			"total_comments": commentCount,
		},
	})
}
