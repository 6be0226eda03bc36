package filemgr

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// Staging area for draft previews and the size cap enforced on every
// locally attached binary.
var (
	PreviewDir   = filepath.Join("static", "previews")
	MaxImageSize = int64(10 << 20)
)

var (
	AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	AllowedMIMEs      = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

func isExtensionAllowed(ext string) bool {
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string) bool {
	for _, a := range AllowedMIMEs {
		if mimeType == a {
			return true
		}
	}
	return false
}

// StageFile validates an uploaded image and writes it into dir under a fresh
// uuid name. Returns the staged path. The first 512 bytes are sniffed for the
// real content type; the declared form MIME is only a fallback for
// octet-stream uploads.
func StageFile(reader io.Reader, originalName, declaredMIME, dir string, maxSize int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !isExtensionAllowed(ext) {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}

	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	if mimeType == "application/octet-stream" && declaredMIME != "" {
		mimeType = declaredMIME
	}
	if !isMIMEAllowed(mimeType) {
		return "", fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	filename := uuid.New().String() + ext
	dest := filepath.Join(dir, filename)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	written, err := out.Write(buf[:n])
	if err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write: %w", err)
	}
	copied, err := io.Copy(out, io.LimitReader(reader, maxSize-int64(written)+1))
	if err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write: %w", err)
	}
	if int64(written)+copied > maxSize {
		os.Remove(dest)
		return "", fmt.Errorf("%w: limit %d bytes", ErrFileTooLarge, maxSize)
	}

	return dest, nil
}

// MakeThumb writes a 320px-wide preview thumbnail next to the staged file.
// Best effort: callers log and continue when the image cannot be decoded.
func MakeThumb(stagedPath string) (string, error) {
	img, err := imaging.Open(stagedPath)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", stagedPath, err)
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	thumbPath := strings.TrimSuffix(stagedPath, filepath.Ext(stagedPath)) + "_thumb.jpg"
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", fmt.Errorf("save thumb: %w", err)
	}
	return thumbPath, nil
}

// Discard removes a staged file and its thumbnail if present. Missing files
// are ignored so release stays idempotent.
func Discard(stagedPath string) {
	if stagedPath == "" {
		return
	}
	os.Remove(stagedPath)
	thumb := strings.TrimSuffix(stagedPath, filepath.Ext(stagedPath)) + "_thumb.jpg"
	os.Remove(thumb)
}
