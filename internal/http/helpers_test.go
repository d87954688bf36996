package http

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/database"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

// testTemplates stubs out every view so handlers can render without the
// real template files.
func testTemplates() *template.Template {
	return template.Must(template.New("").Parse(`
{{define "index.html"}}index{{end}}
{{define "books.html"}}{{range .Books}}{{.Title}};{{end}}{{end}}
{{define "book_details.html"}}{{.Book.Title}}{{end}}
{{define "edit_book.html"}}edit:{{.Book.Title}}{{end}}
{{define "favorites.html"}}{{range .Books}}{{.Title}};{{end}}{{end}}
{{define "not_found.html"}}not found{{end}}`))
}

// asUser stands in for the session gate, injecting the user id directly.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, id)
		c.Next()
	}
}

// flashRecorder collects flash messages without a session.
type flashRecorder struct {
	flashes []auth.Flash
}

func (f *flashRecorder) AddFlash(_ *http.Request, severity, message string) {
	f.flashes = append(f.flashes, auth.Flash{Severity: severity, Message: message})
}

func (f *flashRecorder) PopFlashes(_ *http.Request) []auth.Flash {
	flashes := f.flashes
	f.flashes = nil
	return flashes
}

func (f *flashRecorder) messages() []string {
	msgs := make([]string, 0, len(f.flashes))
	for _, fl := range f.flashes {
		msgs = append(msgs, fl.Message)
	}
	return msgs
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}
