package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookclub/internal/entities"
)

// CreateBook stores a new book for the uploader and adds the uploader to
// its likes set. Both writes happen in one transaction so a book can
// never exist without its creator's like.
func (d *Database) CreateBook(title, description string, uploaderID uint) (*entities.Book, error) {
	book := &entities.Book{
		Title:        title,
		Description:  description,
		UploadedByID: uploaderID,
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		return tx.Model(book).Association("LikedBy").Append(&entities.User{ID: uploaderID})
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// GetBookByID retrieves a book with its uploader and likes set.
func (d *Database) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := d.DB.Preload("UploadedBy").Preload("LikedBy").First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// GetAllBooks returns every book with uploader and likes preloaded.
func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := d.DB.Preload("UploadedBy").Preload("LikedBy").Order("created_at ASC").Find(&books).Error
	return books, err
}

// UpdateBook overwrites title and description. The update timestamp is
// refreshed by GORM as part of the write.
func (d *Database) UpdateBook(id uint, title, description string) error {
	result := d.DB.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
		"title":       title,
		"description": description,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBook removes a book and its likes-set memberships. Rows other
// users created by liking the book go with it, so a stale favorite can
// never point at a deleted book.
func (d *Database) DeleteBook(id uint) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		book := entities.Book{ID: id}
		if err := tx.Model(&book).Association("LikedBy").Clear(); err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})
}
