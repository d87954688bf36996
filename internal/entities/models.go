package entities

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:255" json:"first_name"`
	LastName     string    `gorm:"size:255" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"` // bcrypt hash, hidden from JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Book struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"index;size:255" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	UploadedByID uint      `gorm:"index" json:"uploaded_by_id"`
	UploadedBy   User      `gorm:"foreignKey:UploadedByID;constraint:OnDelete:CASCADE" json:"-"`
	LikedBy      []User    `gorm:"many2many:book_likes;" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

// LikedByUser reports whether the given user is in the book's likes set.
// Requires LikedBy to be preloaded.
func (b Book) LikedByUser(userID uint) bool {
	for _, u := range b.LikedBy {
		if u.ID == userID {
			return true
		}
	}
	return false
}
