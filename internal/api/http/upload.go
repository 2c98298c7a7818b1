package http

import (
	"fmt"
	"io"
	"net/http"

	"spacebook-backend/internal/domain"
)

// maxUploadMemory bounds the multipart parse buffer; files larger than
// this spill to disk before the per-kind size limits apply.
const maxUploadMemory = 16 << 20

// readImageUpload pulls the "image" file out of a multipart form.
func readImageUpload(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return "", nil, fmt.Errorf("malformed multipart form: %w", domain.ErrValidation)
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", nil, fmt.Errorf("missing image file: %w", domain.ErrValidation)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return header.Filename, data, nil
}
