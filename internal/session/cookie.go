package session

import (
	"net/http"
	"time"
)

// WriteSessionCookie sets the http-only "jwt" cookie carrying the signed
// credential. Secure is left off to match the deployed front-end, which
// terminates TLS upstream.
func WriteSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieJWT,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// WriteUserDataCookie sets the readable "userdata" cookie. The value is the
// URL-escaped link-state record the client sends back on the next callback.
func WriteUserDataCookie(w http.ResponseWriter, encoded string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieUserData,
		Value:    encoded,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearRobloxUserCookie expires the "roblox_user" convenience cookie after
// an unlink.
func ClearRobloxUserCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    CookieRobloxUser,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}
