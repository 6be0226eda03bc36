package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"luxadmin/gateway"
	"luxadmin/globals"
	"luxadmin/middleware"
	"luxadmin/models"
	"luxadmin/rdx"
	"luxadmin/utils"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 12 * time.Hour

// Session is the operator session handed to pages after login.
type Session struct {
	User models.User `json:"user"`
	JWT  string      `json:"jwt"`
}

type loginUpstreamData struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type loginUpstreamResponse struct {
	Token string            `json:"token"`
	Data  loginUpstreamData `json:"data"`
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Identifier == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Credential exchange happens upstream; this service never stores
	// passwords.
	var upstream loginUpstreamResponse
	err := API.PostJSON(r.Context(), "/login", "", map[string]string{
		"identifier": input.Identifier,
		"password":   input.Password,
	}, &upstream)
	if err != nil {
		if ue, ok := err.(*gateway.UpstreamError); ok {
			utils.RespondWithError(w, http.StatusUnauthorized, ue.Message)
			return
		}
		log.Printf("login exchange failed: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Login service unavailable")
		return
	}

	user := models.User{
		UserID: upstream.Data.ID,
		Email:  upstream.Data.Email,
		Name:   upstream.Data.Name,
		Phone:  upstream.Data.Phone,
	}

	tokenString, err := issueSessionToken(user, upstream.Token)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	if err := rdx.StoreToken(user.UserID, tokenString, sessionTTL); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	setSessionCookie(w, tokenString, sessionTTL)
	utils.SendResponse(w, http.StatusOK, Session{User: user, JWT: tokenString}, "Login successful", nil)
}

func issueSessionToken(user models.User, upstreamToken string) (string, error) {
	claims := &middleware.Claims{
		UserID:        user.UserID,
		Email:         user.Email,
		UpstreamToken: upstreamToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)
	if userID != "" {
		if err := rdx.RevokeToken(userID); err != nil {
			log.Printf("token revocation failed: %v", err)
		}
	}
	setSessionCookie(w, "", -1)
	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}

// verifyHandler re-checks the cookie token and returns the session user;
// the page gate and client-side guards both use it.
func verifyHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := ""
	if c, err := r.Cookie("token"); err == nil {
		tokenString = c.Value
	}
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil || !rdx.TokenValid(claims.UserID, tokenString) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var user models.User
	if err := API.GetJSON(r.Context(), "/profile", claims.UpstreamToken, &user); err != nil {
		// Upstream unreachable: fall back to claims so a blip does not
		// log everyone out.
		user = models.User{UserID: claims.UserID, Email: claims.Email}
	}
	utils.SendResponse(w, http.StatusOK, Session{User: user, JWT: tokenString}, "Authenticated", nil)
}
