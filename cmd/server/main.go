package main

import (
	"context"
	"html/template"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/syedimran-dev/myblog3/internal/api"
	"github.com/syedimran-dev/myblog3/internal/auth"
	"github.com/syedimran-dev/myblog3/internal/config"
	"github.com/syedimran-dev/myblog3/internal/database"
	"github.com/syedimran-dev/myblog3/internal/gravatar"
	"github.com/syedimran-dev/myblog3/internal/posts"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg := config.New()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"gravatar": gravatar.CommentURL,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	r.Use(auth.CurrentUser())

	// Auth routes
	r.GET("/", auth.LoginFormHandler)
	r.POST("/", auth.LoginPostHandler)
	r.GET("/register", auth.RegisterFormHandler)
	r.POST("/register", auth.RegisterPostHandler)
	r.GET("/logout", auth.LogoutHandler)

	// Public blog pages
	r.GET("/home", posts.HomeHandler)
	r.GET("/post/:id", posts.ShowPostHandler)
	r.POST("/post/:id", posts.AddCommentHandler)

	// Authoring routes
	r.GET("/add_post", auth.RequireAuth(), posts.NewPostFormHandler)
	r.POST("/add_post", auth.RequireAuth(), posts.CreatePostHandler)
	r.GET("/edit/:id", auth.RequireAuth(), posts.EditPostFormHandler)
	r.POST("/edit/:id", auth.RequireAuth(), posts.UpdatePostHandler)
	r.GET("/delete/:id", auth.RequireAuth(), posts.DeletePostHandler)

	// Read-only public API
	apiGroup := r.Group("/api")
	apiGroup.GET("/posts", api.ListPostsPublicHandler)
	apiGroup.GET("/posts/:id", api.GetPostPublicHandler)
	apiGroup.GET("/stats", api.GetStatsPublicHandler)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
