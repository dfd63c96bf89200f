package main

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"

	"storefront/internal/blob"

	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10MB

// allowed image types and the extension stored with each
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type uploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// sniffMIME reads the first 512 bytes and rewinds the file.
func sniffMIME(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read: %w", err)
	}
	mime := http.DetectContentType(buf[:n])

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek reset: %w", err)
	}
	return mime, nil
}

// uploadHandler godoc
//
//	@Summary		Upload a product image
//	@Description	Stores the file with the configured blob backend and returns its public URL.
//	@Tags			admin
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"JPEG, PNG, WebP or GIF, at most 10MB"
//	@Success		201		{object}	uploadResponse
//	@Failure		400		{object}	error	"No file part, no selected file or unsupported type"
//	@Failure		502		{object}	error	"Blob storage failure"
//	@Security		AdminCookie
//	@Router			/admin/upload [post]
func (app *application) uploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1024)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to parse form: %w", err))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("No file part"))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		app.badRequestResponse(w, r, errors.New("No selected file"))
		return
	}

	mime, err := sniffMIME(file)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("sniff mime: %w", err))
		return
	}
	ext, ok := imageExtensions[mime]
	if !ok {
		app.badRequestResponse(w, r, fmt.Errorf("unsupported file type: %s", mime))
		return
	}

	key := path.Join(app.config.upload.folder, uuid.NewString()+ext)

	url, err := app.uploader.Upload(r.Context(), key, mime, file)
	if err != nil {
		var upErr *blob.UpstreamError
		if errors.As(err, &upErr) {
			app.upstreamErrorResponse(w, r, upErr)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("file uploaded", "key", key, "admin_id", getAdminFromContext(r).ID)

	if err := writeJSON(w, http.StatusCreated, uploadResponse{Message: "File uploaded successfully", URL: url}); err != nil {
		app.internalServerError(w, r, err)
	}
}
