package api

import (
	"errors"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/port"
	"github.com/psastudios/content-ms-go/internal/usecase/content"
)

// multipart framing overhead on top of the file size cap
const uploadBodyLimit = content.MaxUploadSize + 1<<20

func UploadFileHandler(svc port.FileUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, uploadBodyLimit)

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "No file provided", err)
			return
		}
		defer func() { _ = file.Close() }()

		in := port.UploadFileInput{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}
		out, err := svc.UploadFile(r.Context(), in)
		if err != nil {
			if errors.Is(err, content.ErrFileTooLarge) || errors.Is(err, content.ErrUnsupportedType) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not store uploaded file", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully stored upload %q", out.Key)
	}
}
