package http

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/auth/service"
	"github.com/omer2190/portfolio-backend/internal/content/view"
)

// Handler serves the auth endpoints. Exactly one of authService or firebase
// is set, depending on the configured backend.
type Handler struct {
	authService *service.AuthService
	firebase    *fbauth.Client
}

func New(authService *service.AuthService) *Handler {
	return &Handler{authService: authService}
}

func NewFirebase(client *fbauth.Client) *Handler {
	return &Handler{firebase: client}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type resetPasswordReq struct {
	Email   string `json:"email"`
	Confirm bool   `json:"confirm"`
}

// msg picks the localized variant for the request's language.
func msg(c *gin.Context, ar, en string) string {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	if view.Normalize(lang) == view.LangArabic {
		return ar
	}
	return en
}
