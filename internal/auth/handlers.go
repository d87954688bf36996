package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/database"
	"github.com/mrlokans/bookclub/internal/entities"
	"github.com/mrlokans/bookclub/internal/forms"
)

// userFlashOrder fixes the order registration errors are flashed in, so
// the user always sees them in form order.
var userFlashOrder = []string{"first_name", "last_name", "email", "password", "confirm_password"}

// UserStore defines the user persistence operations the controller needs.
type UserStore interface {
	CreateUser(firstName, lastName, email, passwordHash string) (*entities.User, error)
	GetUserByEmail(email string) (*entities.User, error)
	EmailTaken(email string) (bool, error)
}

// Controller handles the landing page and register/login/logout.
type Controller struct {
	store          UserStore
	sessionManager *SessionManager
	bcryptCost     int
}

// NewController creates a new authentication controller.
func NewController(store UserStore, sessionManager *SessionManager, bcryptCost int) *Controller {
	return &Controller{
		store:          store,
		sessionManager: sessionManager,
		bcryptCost:     bcryptCost,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ac.Index)
	router.POST("/register", ac.Register)
	router.POST("/login", ac.Login)
	router.GET("/logout", ac.Logout)
}

// Index renders the landing page with the register and login forms.
// GET /
func (ac *Controller) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flashes":   ac.sessionManager.PopFlashes(c.Request),
		"CSRFField": CSRFTokenField(c),
	})
}

// Register handles the registration form submission.
// POST /register
func (ac *Controller) Register(c *gin.Context) {
	data := map[string]string{
		"first_name":       c.PostForm("first_name"),
		"last_name":        c.PostForm("last_name"),
		"email":            c.PostForm("email"),
		"password":         c.PostForm("password"),
		"confirm_password": c.PostForm("confirm_password"),
	}

	taken, err := ac.store.EmailTaken(data["email"])
	if err != nil {
		log.Printf("Registration failed to check email: %v", err)
		ac.sessionManager.AddFlash(c.Request, FlashError, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if errs := forms.ValidateUser(data, taken); len(errs) > 0 {
		for _, field := range userFlashOrder {
			if msg, ok := errs[field]; ok {
				ac.sessionManager.AddFlash(c.Request, FlashError, msg)
			}
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	// Hashing fails closed: no user record is written unless the hash
	// succeeded, so a plaintext password can never be stored.
	hash, err := HashPassword(data["password"], ac.bcryptCost)
	if err != nil {
		log.Printf("Registration failed to hash password: %v", err)
		ac.sessionManager.AddFlash(c.Request, FlashError, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	user, err := ac.store.CreateUser(data["first_name"], data["last_name"], data["email"], hash)
	if err != nil {
		log.Printf("Registration failed to create user: %v", err)
		ac.sessionManager.AddFlash(c.Request, FlashError, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		log.Printf("Registration failed to create session: %v", err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	ac.sessionManager.AddFlash(c.Request, FlashSuccess, "Successfully registered!")
	c.Redirect(http.StatusFound, "/books")
}

// Login handles the login form submission. Unknown email and wrong
// password collapse into the same generic message.
// POST /login
func (ac *Controller) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := ac.store.GetUserByEmail(email)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			log.Printf("Login failed to look up user: %v", err)
		}
		ac.loginFailed(c)
		return
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		ac.loginFailed(c)
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		log.Printf("Login failed to create session: %v", err)
		ac.loginFailed(c)
		return
	}

	c.Redirect(http.StatusFound, "/books")
}

func (ac *Controller) loginFailed(c *gin.Context) {
	ac.sessionManager.AddFlash(c.Request, FlashError, "Invalid email or password")
	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session and returns to the landing page.
// GET /logout
func (ac *Controller) Logout(c *gin.Context) {
	if err := ac.sessionManager.DestroySession(c.Request); err != nil {
		log.Printf("Logout failed to destroy session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
