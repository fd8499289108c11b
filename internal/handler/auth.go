package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/auth"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db           *gorm.DB
	jwtSecret    string
	googleConfig *oauth2.Config
	frontendURL  string
	seeder       *quotes.Seeder
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, googleConfig *oauth2.Config, frontendURL string, seeder *quotes.Seeder) *AuthHandler {
	return &AuthHandler{
		db:           db,
		jwtSecret:    jwtSecret,
		googleConfig: googleConfig,
		frontendURL:  frontendURL,
		seeder:       seeder,
	}
}

type TokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn"`
	User         *model.User `json:"user"`
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup registers an email/password account and initializes its quote
// library from the system master set.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.User
	err := h.db.Where("provider = ? AND provider_id = ?", model.ProviderEmail, email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check existing account"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := model.User{
		Provider:     model.ProviderEmail,
		ProviderID:   email,
		Email:        email,
		PasswordHash: hash,
		Settings:     model.DefaultSettings(),
	}
	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	h.initializeUserData(user.ID)

	h.respondWithTokens(c, &user)
}

// Login authenticates an email/password account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user model.User
	err := h.db.Where("provider = ? AND provider_id = ?", model.ProviderEmail, email).First(&user).Error
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	h.respondWithTokens(c, &user)
}

// GoogleAuth redirects to Google OAuth authorization URL
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	state := generateState()
	// Store state in cookie for CSRF protection
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)

	url := h.googleConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles Google OAuth callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=invalid_state")
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=no_code")
		return
	}

	token, err := h.googleConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("Failed to exchange code: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=exchange_failed")
		return
	}

	userInfo, err := auth.GetGoogleUserInfo(c.Request.Context(), token)
	if err != nil {
		log.Printf("Failed to get user info: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=user_info_failed")
		return
	}

	// Find or create user
	var user model.User
	result := h.db.Where("provider = ? AND provider_id = ?", model.ProviderGoogle, userInfo.ID).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user = model.User{
			Provider:    model.ProviderGoogle,
			ProviderID:  userInfo.ID,
			Email:       userInfo.Email,
			DisplayName: userInfo.Name,
			AvatarURL:   userInfo.Picture,
			Settings:    model.DefaultSettings(),
		}
		if err := h.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user: %v", err)
			c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=create_user_failed")
			return
		}
		h.initializeUserData(user.ID)
	} else if result.Error != nil {
		log.Printf("Failed to find user: %v", result.Error)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=db_error")
		return
	} else {
		h.db.Model(&user).Updates(map[string]interface{}{
			"email":        userInfo.Email,
			"display_name": userInfo.Name,
			"avatar_url":   userInfo.Picture,
			"updated_at":   time.Now(),
		})
	}

	accessToken, err := auth.GenerateAccessToken(&user, h.jwtSecret)
	if err != nil {
		log.Printf("Failed to generate access token: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=token_failed")
		return
	}

	refreshToken, err := auth.GenerateRefreshToken()
	if err != nil {
		log.Printf("Failed to generate refresh token: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=token_failed")
		return
	}

	refreshTokenModel := model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(auth.RefreshTokenExpiry),
		CreatedAt: time.Now(),
	}
	if err := h.db.Create(&refreshTokenModel).Error; err != nil {
		log.Printf("Failed to store refresh token: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?error=token_failed")
		return
	}

	redirectURL := h.frontendURL + "?accessToken=" + accessToken + "&refreshToken=" + refreshToken
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// RefreshToken refreshes access token using refresh token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	var refreshToken model.RefreshToken
	result := h.db.Where("token = ? AND revoked = false AND expires_at > ?", req.RefreshToken, time.Now()).First(&refreshToken)
	if result.Error != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	var user model.User
	if err := h.db.First(&user, "id = ?", refreshToken.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	accessToken, err := auth.GenerateAccessToken(&user, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": accessToken,
		"expiresIn":   int(auth.AccessTokenExpiry.Seconds()),
	})
}

// Logout invalidates refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	h.db.Model(&model.RefreshToken{}).Where("token = ?", req.RefreshToken).Update("revoked", true)

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me returns current user info
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user model.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the display name and settings blob.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		DisplayName string                 `json:"displayName"`
		Settings    map[string]interface{} `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		updates["display_name"] = name
	}
	if req.Settings != nil {
		var user model.User
		if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		merged, err := mergeSettings(user.Settings, req.Settings)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings"})
			return
		}
		updates["settings"] = merged
	}

	if err := h.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	var user model.User
	h.db.First(&user, "id = ?", userID)
	c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password before replacing it.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currentPassword and newPassword are required"})
		return
	}

	var user model.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if user.Provider != model.ProviderEmail {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password login is not enabled for this account"})
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "current password is incorrect"})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Model(&user).Updates(map[string]interface{}{
		"password_hash": hash,
		"updated_at":    time.Now(),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

// initializeUserData seeds the system library and the user's personal
// library. Best-effort: failures are logged and the signup still succeeds;
// the backfill scheduler retries later.
func (h *AuthHandler) initializeUserData(userID string) {
	if err := quotes.EnsureSystemQuotesSeeded(h.db); err != nil {
		log.Printf("Failed to seed system quotes during signup: %v", err)
	}
	if _, err := h.seeder.EnsureUserQuotesSeeded(userID); err != nil {
		log.Printf("Failed to seed quotes for new user %s: %v", userID, err)
	}
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, user *model.User) {
	accessToken, err := auth.GenerateAccessToken(user, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
		return
	}

	refreshToken, err := auth.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate refresh token"})
		return
	}

	refreshTokenModel := model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(auth.RefreshTokenExpiry),
		CreatedAt: time.Now(),
	}
	if err := h.db.Create(&refreshTokenModel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(auth.AccessTokenExpiry.Seconds()),
		User:         user,
	})
}

func generateState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
