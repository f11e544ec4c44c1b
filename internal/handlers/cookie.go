package handlers

import (
	"net/http"
	"time"
)

// RefreshTokenCookie is the name of the session cookie.
const RefreshTokenCookie = "refresh-token"

func setRefreshTokenCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func clearRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// refreshTokenFromRequest returns the cookie value, or "" if the cookie is absent.
func refreshTokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return c.Value
}
