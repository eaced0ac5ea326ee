package content

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/psastudios/content-ms-go/internal/port"
)

// MaxUploadSize caps admin uploads at 10MB, matching the blob host's policy.
const MaxUploadSize = 10 << 20

type fileUploaderSrv struct {
	strg  port.Storage
	genID port.IDGen
}

// NewFileUploader constructs a FileUploader implementation.
func NewFileUploader(strg port.Storage, genID port.IDGen) port.FileUploader {
	return &fileUploaderSrv{strg: strg, genID: genID}
}

// UploadFile stores an admin-submitted file with the blob collaborator and
// returns its public URL. Only images and videos are accepted.
func (s *fileUploaderSrv) UploadFile(ctx context.Context, in port.UploadFileInput) (port.UploadFileOutput, error) {
	folder := ""
	switch {
	case strings.HasPrefix(in.ContentType, "image/"):
		folder = "images"
	case strings.HasPrefix(in.ContentType, "video/"):
		folder = "videos"
	default:
		return port.UploadFileOutput{}, ErrUnsupportedType
	}

	if in.Size > MaxUploadSize {
		return port.UploadFileOutput{}, ErrFileTooLarge
	}

	// random suffix so repeated uploads of the same file name never collide
	suffix := s.genID()
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	name := path.Base(strings.TrimSpace(in.Name))
	ext := path.Ext(name)
	key := fmt.Sprintf("%s/%s-%s%s", folder, strings.TrimSuffix(name, ext), suffix, ext)

	url, err := s.strg.SaveFile(ctx, key, in.Body, in.Size, in.ContentType)
	if err != nil {
		return port.UploadFileOutput{}, err
	}

	return port.UploadFileOutput{URL: url, Key: key}, nil
}
