package model

import "time"

// User is an account that can author recipes.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username" validate:"required"`
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	Role         string    `gorm:"size:20;not null;default:'USER'" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Public returns the projection of u that may be embedded in a recipe.
func (u *User) Public() Author {
	return Author{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Author is the public projection of a User. It maps onto the users table
// but only ever loads the four public columns.
type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (Author) TableName() string {
	return "users"
}

// AuthorColumns are the users columns selected when an author is preloaded.
var AuthorColumns = []string{"id", "username", "first_name", "last_name"}
