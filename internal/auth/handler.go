package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syedimran-dev/myblog3/internal/flash"
)

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

func LoginFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Log In",
		"user":  UserFrom(c),
		"flash": flash.Take(c),
	})
}

func LoginPostHandler(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"title": "Log In",
			"user":  UserFrom(c),
			"flash": "Email and password are required.",
		})
		return
	}

	_, token, expires, err := Login(form.Email, form.Password)
	switch {
	case err == ErrUnknownEmail:
		flash.Set(c, "That email does not exist, please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	case err == ErrBadPassword:
		flash.Set(c, "Password incorrect, please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Something went wrong, please try again."})
		return
	}

	SetSessionCookie(c, token, expires)
	c.Redirect(http.StatusFound, "/home")
}

func RegisterFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"title": "Register",
		"user":  UserFrom(c),
		"flash": flash.Take(c),
	})
}

func RegisterPostHandler(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"title": "Register",
			"user":  UserFrom(c),
			"flash": "Name, a valid email and a password of at least 6 characters are required.",
		})
		return
	}

	_, token, expires, err := Register(form.Name, form.Email, form.Password)
	switch {
	case err == ErrEmailTaken:
		flash.Set(c, "You've already signed up with that email, log in instead!")
		c.Redirect(http.StatusFound, "/")
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Something went wrong, please try again."})
		return
	}

	SetSessionCookie(c, token, expires)
	c.Redirect(http.StatusFound, "/home")
}

func LogoutHandler(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		if claims, err := ParseToken(token); err == nil {
			_ = RevokeSession(claims.ID)
		}
	}
	ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
