package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/database"
	"github.com/mrlokans/bookclub/internal/entities"
	"github.com/mrlokans/bookclub/internal/forms"
)

// bookFlashOrder fixes the order book validation errors are flashed in.
var bookFlashOrder = []string{"title", "desc"}

// BooksStore defines the persistence operations for book management.
type BooksStore interface {
	GetUserByID(id uint) (*entities.User, error)
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	CreateBook(title, description string, uploaderID uint) (*entities.Book, error)
	UpdateBook(id uint, title, description string) error
	DeleteBook(id uint) error
}

type BooksController struct {
	store BooksStore
	flash Flasher
}

func NewBooksController(store BooksStore, flash Flasher) *BooksController {
	return &BooksController{store: store, flash: flash}
}

// List renders the main books page with every uploaded book.
// GET /books
func (bc *BooksController) List(c *gin.Context) {
	userID := GetUserID(c)

	user, err := bc.store.GetUserByID(userID)
	if err != nil {
		respondInternalError(c, err, "load current user")
		return
	}

	books, err := bc.store.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.HTML(http.StatusOK, "books.html", gin.H{
		"User":      user,
		"Books":     books,
		"Flashes":   bc.flash.PopFlashes(c.Request),
		"CSRFField": auth.CSRFTokenField(c),
	})
}

// Add creates a new book owned by the current user. The uploader is
// added to the likes set as part of the same operation.
// POST /books/add
func (bc *BooksController) Add(c *gin.Context) {
	userID := GetUserID(c)

	data := map[string]string{
		"title": c.PostForm("title"),
		"desc":  c.PostForm("desc"),
	}

	if errs := forms.ValidateBook(data); len(errs) > 0 {
		bc.flashErrors(c, errs)
		c.Redirect(http.StatusFound, "/books")
		return
	}

	if _, err := bc.store.CreateBook(data["title"], data["desc"], userID); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	bc.flash.AddFlash(c.Request, auth.FlashSuccess, "Book added successfully!")
	c.Redirect(http.StatusFound, "/books")
}

// Details renders a single book's page.
// GET /books/:id
func (bc *BooksController) Details(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, ok := bc.fetchBook(c, id)
	if !ok {
		return
	}

	user, err := bc.store.GetUserByID(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "load current user")
		return
	}

	c.HTML(http.StatusOK, "book_details.html", gin.H{
		"User":      user,
		"Book":      book,
		"Flashes":   bc.flash.PopFlashes(c.Request),
		"CSRFField": auth.CSRFTokenField(c),
	})
}

// EditForm renders the edit form for a book the current user uploaded.
// Anyone else is silently sent back to the books list.
// GET /books/:id/edit
func (bc *BooksController) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, ok := bc.fetchBook(c, id)
	if !ok {
		return
	}

	if book.UploadedByID != GetUserID(c) {
		c.Redirect(http.StatusFound, "/books")
		return
	}

	user, err := bc.store.GetUserByID(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "load current user")
		return
	}

	c.HTML(http.StatusOK, "edit_book.html", gin.H{
		"User":      user,
		"Book":      book,
		"Flashes":   bc.flash.PopFlashes(c.Request),
		"CSRFField": auth.CSRFTokenField(c),
	})
}

// Update overwrites a book's title and description. Validation runs
// before the ownership check; ownership mismatches redirect silently.
// POST /books/:id/update
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	data := map[string]string{
		"title": c.PostForm("title"),
		"desc":  c.PostForm("desc"),
	}

	if errs := forms.ValidateBook(data); len(errs) > 0 {
		bc.flashErrors(c, errs)
		c.Redirect(http.StatusFound, fmt.Sprintf("/books/%d/edit", id))
		return
	}

	book, ok := bc.fetchBook(c, id)
	if !ok {
		return
	}

	if book.UploadedByID != GetUserID(c) {
		c.Redirect(http.StatusFound, "/books")
		return
	}

	if err := bc.store.UpdateBook(id, data["title"], data["desc"]); err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	bc.flash.AddFlash(c.Request, auth.FlashSuccess, "Book updated successfully!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/books/%d", id))
}

// Delete removes a book if the current user uploaded it. For anyone
// else nothing happens; both paths land on the books list.
// GET /books/:id/delete
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, ok := bc.fetchBook(c, id)
	if !ok {
		return
	}

	if book.UploadedByID == GetUserID(c) {
		if err := bc.store.DeleteBook(id); err != nil {
			respondInternalError(c, err, "delete book")
			return
		}
		bc.flash.AddFlash(c.Request, auth.FlashSuccess, "Book deleted successfully!")
	}

	c.Redirect(http.StatusFound, "/books")
}

// fetchBook loads a book or renders the not-found page.
func (bc *BooksController) fetchBook(c *gin.Context, id uint) (*entities.Book, bool) {
	book, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			renderNotFound(c)
		} else {
			respondInternalError(c, err, "load book")
		}
		return nil, false
	}
	return book, true
}

func (bc *BooksController) flashErrors(c *gin.Context, errs forms.Errors) {
	for _, field := range bookFlashOrder {
		if msg, ok := errs[field]; ok {
			bc.flash.AddFlash(c.Request, auth.FlashError, msg)
		}
	}
}
