package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/database"
	"github.com/mrlokans/bookclub/internal/entities"
)

// LikesStore defines the persistence operations for the likes set.
type LikesStore interface {
	GetUserByID(id uint) (*entities.User, error)
	GetBookByID(id uint) (*entities.Book, error)
	AddLike(bookID, userID uint) error
	RemoveLike(bookID, userID uint) error
	ListBooksLikedBy(userID uint) ([]entities.Book, error)
}

type FavoritesController struct {
	store LikesStore
	flash Flasher
}

func NewFavoritesController(store LikesStore, flash Flasher) *FavoritesController {
	return &FavoritesController{store: store, flash: flash}
}

// Favorite adds the current user to a book's likes set. Liking a book
// twice leaves the set unchanged. Any logged-in user may like any book,
// their own included.
// GET /books/:id/favorite
func (fc *FavoritesController) Favorite(c *gin.Context) {
	book, ok := fc.fetchBook(c)
	if !ok {
		return
	}

	if err := fc.store.AddLike(book.ID, GetUserID(c)); err != nil {
		respondInternalError(c, err, "add favorite")
		return
	}

	redirectBack(c, "/books")
}

// Unfavorite removes the current user from a book's likes set.
// Removing a like that isn't there is a no-op.
// GET /books/:id/unfavorite
func (fc *FavoritesController) Unfavorite(c *gin.Context) {
	book, ok := fc.fetchBook(c)
	if !ok {
		return
	}

	if err := fc.store.RemoveLike(book.ID, GetUserID(c)); err != nil {
		respondInternalError(c, err, "remove favorite")
		return
	}

	redirectBack(c, "/books")
}

// FavoritesPage renders the current user's liked books.
// GET /favorites
func (fc *FavoritesController) FavoritesPage(c *gin.Context) {
	userID := GetUserID(c)

	user, err := fc.store.GetUserByID(userID)
	if err != nil {
		respondInternalError(c, err, "load current user")
		return
	}

	books, err := fc.store.ListBooksLikedBy(userID)
	if err != nil {
		respondInternalError(c, err, "list liked books")
		return
	}

	c.HTML(http.StatusOK, "favorites.html", gin.H{
		"User":      user,
		"Books":     books,
		"Flashes":   fc.flash.PopFlashes(c.Request),
		"CSRFField": auth.CSRFTokenField(c),
	})
}

func (fc *FavoritesController) fetchBook(c *gin.Context) (*entities.Book, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	book, err := fc.store.GetBookByID(id)
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
