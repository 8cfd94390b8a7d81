// Package gravatar builds avatar URLs for comment authors from their email.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const BaseURL = "https://www.gravatar.com/avatar/"

const (
	SizeComment = 60
	SizeProfile = 140
)

func URL(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%s%x?s=%d&d=retro", BaseURL, sum, size)
}

func CommentURL(email string) string {
	return URL(email, SizeComment)
}
