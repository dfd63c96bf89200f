package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/domain/admins"
)

const (
	adminCookieName = "admin_token"
	csrfCookieName  = "csrf_access_token"
	csrfHeaderName  = "X-CSRF-TOKEN"
)

// setAuthCookies stores the token HttpOnly and the CSRF nonce readable by JS,
// so the frontend can echo it in the X-CSRF-TOKEN header.
func (app *application) setAuthCookies(w http.ResponseWriter, token, csrf string, ttl time.Duration) {
	secure := app.config.isProduction()
	domain := app.config.auth.cookie.domain

	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    token,
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    csrf,
		Path:     "/",
		Domain:   domain,
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func (app *application) clearAuthCookies(w http.ResponseWriter) {
	expire := func(name string, httpOnly bool) {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   app.config.auth.cookie.domain,
			HttpOnly: httpOnly,
			Secure:   app.config.isProduction(),
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}

	expire(adminCookieName, true)
	expire(csrfCookieName, false)
}

type LoginPayload struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

// loginHandler godoc
//
//	@Summary		Admin login
//	@Description	Verifies credentials and sets the admin_token and csrf_access_token cookies
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginPayload	true	"Credentials"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error	"Invalid credentials"
//	@Failure		429		{object}	error
//	@Router			/admin/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	admin, err := app.store.Admins.GetByUsername(r.Context(), payload.Username)
	if err != nil && !errors.Is(err, admins.ErrNotFound) {
		app.internalServerError(w, r, err)
		return
	}
	if admin == nil || admin.Password.Compare(payload.Password) != nil {
		app.logger.Warnw("failed admin login", "username", payload.Username, "ip", clientIP(r))
		writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	ttl := app.config.auth.token.sessionTokenExp
	token, csrf, err := app.authenticator.GenerateToken(admin.ID, ttl)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setAuthCookies(w, token, csrf, ttl)
	app.logger.Infow("admin logged in", "admin_id", admin.ID)

	if err := writeJSON(w, http.StatusOK, messageResponse{Message: "Login successful"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Admin logout
//	@Description	Expires the auth cookies. Issued tokens stay valid until they expire.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	messageResponse
//	@Router			/admin/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	app.clearAuthCookies(w)

	if err := writeJSON(w, http.StatusOK, messageResponse{Message: "Logout successful"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type checkAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
}

// checkAuthHandler godoc
//
//	@Summary		Current admin identity
//	@Description	Also renews the session for another access window when it is about to expire.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	checkAuthResponse
//	@Failure		401	{object}	error
//	@Security		AdminCookie
//	@Router			/admin/check-auth [get]
func (app *application) checkAuthHandler(w http.ResponseWriter, r *http.Request) {
	admin := getAdminFromContext(r)

	accessExp := app.config.auth.token.accessTokenExp
	if claims := getClaimsFromContext(r); claims != nil && time.Until(claims.ExpiresAt) < accessExp {
		token, csrf, err := app.authenticator.GenerateToken(admin.ID, accessExp)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		app.setAuthCookies(w, token, csrf, accessExp)
	}

	resp := checkAuthResponse{
		Authenticated: true,
		UserID:        strconv.FormatInt(admin.ID, 10),
		Username:      admin.Username,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
