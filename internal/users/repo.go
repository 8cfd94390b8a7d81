package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/syedimran-dev/myblog3/internal/database"
)

func FindByEmail(email string) (*User, error) {
	var u User
	if err := database.DB.First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindByID(id uint) (*User, error) {
	var u User
	if err := database.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func ExistsByEmail(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
