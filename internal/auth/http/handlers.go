package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/auth"
	"github.com/omer2190/portfolio-backend/internal/auth/domain"
	"github.com/omer2190/portfolio-backend/internal/auth/middleware"
)

// Login validates the admin credentials and issues a session token.
func (h *Handler) Login(c *gin.Context) {
	if h.authService == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "login is handled by the identity provider"})
		return
	}

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": msg(c, "يرجى إدخال اسم المستخدم وكلمة المرور", "Please enter a username and password"),
		})
		return
	}

	if err := h.authService.ValidateLogin(strings.TrimSpace(req.Username), req.Password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": msg(c, "اسم المستخدم أو كلمة المرور غير صحيحة", "Incorrect username or password"),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": msg(c, "حدث خطأ في التحقق من البيانات", "An error occurred while verifying credentials"),
		})
		return
	}

	session, err := h.authService.CreateSession(c.Request.Context(), strings.TrimSpace(req.Username), req.Remember)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": msg(c, "تم تسجيل الدخول بنجاح", "Logged in successfully"),
		"session": session,
	})
}

// Session reports the live session behind the bearer token.
func (h *Handler) Session(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" || h.authService == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "authenticated": false})
		return
	}

	session, err := h.authService.CurrentSession(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": true, "session": session})
}

func (h *Handler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token != "" && h.authService != nil {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ChangePassword verifies the current secret locally, or delegates to the
// provider in firebase mode (where the provider has already authenticated
// the caller and the old password is not re-checked).
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if h.firebase != nil {
		uid := c.GetString(middleware.CtxFirebaseUID)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
			return
		}
		if err := auth.ProviderChangePassword(c.Request.Context(), h.firebase, uid, req.NewPassword); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": msg(c, "حدث خطأ أثناء تغيير كلمة المرور", "An error occurred while changing the password"),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": msg(c, "تم تغيير كلمة المرور بنجاح", "Password changed successfully"),
		})
		return
	}

	err := h.authService.ChangePassword(req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"ok":    false,
			"error": msg(c, "كلمة المرور الحالية غير صحيحة", "The current password is incorrect"),
		})
	case errors.Is(err, domain.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": msg(c, "كلمة المرور يجب أن تكون 6 أحرف على الأقل", "The password must be at least 6 characters"),
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": msg(c, "حدث خطأ أثناء تغيير كلمة المرور", "An error occurred while changing the password"),
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": msg(c, "تم تغيير كلمة المرور بنجاح", "Password changed successfully"),
		})
	}
}

// ResetPassword restores the default credentials (local) or sends the
// provider's reset-link workflow (firebase). The local reset requires an
// explicit confirm flag; it is the destructive variant.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	_ = c.ShouldBindJSON(&req)

	if h.firebase != nil {
		if strings.TrimSpace(req.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "email required"})
			return
		}
		link, err := auth.ProviderResetLink(c.Request.Context(), h.firebase, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "reset_link": link})
		return
	}

	if !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": msg(c, "يجب تأكيد إعادة التعيين", "Reset must be confirmed"),
		})
		return
	}

	token := middleware.ExtractToken(c)
	if err := h.authService.ResetToDefault(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": msg(c, "تم إعادة تعيين كلمة المرور بنجاح", "Password reset successfully"),
	})
}
