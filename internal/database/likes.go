package database

import (
	"github.com/mrlokans/bookclub/internal/entities"
)

// AddLike puts a user into a book's likes set. Adding an existing member
// is a no-op, so the operation is idempotent.
func (d *Database) AddLike(bookID, userID uint) error {
	book := entities.Book{ID: bookID}
	return d.DB.Model(&book).Association("LikedBy").Append(&entities.User{ID: userID})
}

// RemoveLike takes a user out of a book's likes set. Removing a
// non-member is a no-op.
func (d *Database) RemoveLike(bookID, userID uint) error {
	book := entities.Book{ID: bookID}
	return d.DB.Model(&book).Association("LikedBy").Delete(&entities.User{ID: userID})
}

// ListBooksLikedBy returns the books whose likes set contains the user.
func (d *Database) ListBooksLikedBy(userID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := d.DB.
		Joins("JOIN book_likes ON book_likes.book_id = books.id").
		Where("book_likes.user_id = ?", userID).
		Preload("UploadedBy").
		Order("books.created_at ASC").
		Find(&books).Error
	return books, err
}
