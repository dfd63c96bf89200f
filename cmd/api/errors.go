package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/blob"
	"storefront/internal/domain/catalog"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, err.Error())
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("conflict", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusConflict, err.Error())
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	secs := int(retryAfter.Round(time.Second).Seconds())
	if secs < 1 {
		secs = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(secs))
	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after "+strconv.Itoa(secs)+"s")
}

func (app *application) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err *blob.UpstreamError) {
	app.logger.Errorw("upstream failure", "method", r.Method, "path", r.URL.Path, "provider", err.Provider,
		"status", err.Status, "error", err.Message)

	writeJSONError(w, err.HTTPStatus(), err.Message)
}

// catalogErrorResponse maps store sentinels to their status codes.
func (app *application) catalogErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrBrandNotFound),
		errors.Is(err, catalog.ErrProductNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, catalog.ErrDuplicateCategory),
		errors.Is(err, catalog.ErrDuplicateBrand),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, catalog.ErrInvalidBrand),
		errors.Is(err, catalog.ErrInvalidProduct):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, catalog.ErrCategoryHasBrands),
		errors.Is(err, catalog.ErrBrandHasProducts):
		app.conflictResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
