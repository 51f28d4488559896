package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"phPortfolio/internal/storage"
	"phPortfolio/internal/validation"
)

// ObjectStore is the slice of the storage client the image handler needs;
// tests substitute a fake.
type ObjectStore interface {
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	ObjectExists(ctx context.Context, objectKey string) (bool, error)
	DeleteObject(ctx context.Context, objectKey string) error
	PublicURL(objectKey string) string
}

// Image types accepted by the upload endpoint; the tag becomes the filename
// prefix so the admin UI can tell uploads apart.
var imageTypes = []string{"hero", "profile", "project", "experience"}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// ImageHandler uploads and deletes portfolio images. Uploads are not
// transactional with any record write; the admin UI stores the returned URL
// in a second request.
type ImageHandler struct {
	Storage   ObjectStore
	Logger    *slog.Logger
	ClamdAddr string
	MaxBytes  int64
}

// NewImageHandler constructs an ImageHandler. Malware scanning is skipped
// when clamdAddr is empty.
func NewImageHandler(storageClient ObjectStore, logger *slog.Logger, clamdAddr string, maxBytes int64) *ImageHandler {
	return &ImageHandler{
		Storage:   storageClient,
		Logger:    logger,
		ClamdAddr: clamdAddr,
		MaxBytes:  maxBytes,
	}
}

// Upload validates one multipart image plus its type tag, stores it under
// the public images/ prefix, and returns the filename, URL and path.
func (h *ImageHandler) Upload(c *gin.Context) {
	errs := validation.Errors{}

	imageType := strings.TrimSpace(c.PostForm("type"))
	errs.Required("type", imageType)
	if imageType != "" {
		errs.OneOf("type", imageType, imageTypes)
	}

	file, err := c.FormFile("image")
	if err != nil {
		errs.Add("image", "The image field is required.")
		ValidationFailed(c, errs)
		return
	}

	if file.Size > h.MaxBytes {
		errs.Add("image", fmt.Sprintf("The image field must not be greater than %d kilobytes.", h.MaxBytes/1024))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedImageExts[ext] {
		errs.Add("image", "The image field must be a file of type: jpeg, png, jpg, gif, webp.")
	}

	contentType, err := h.sniffContentType(file)
	if err != nil {
		Internal(c, "failed to read uploaded file")
		return
	}
	if !allowedImageMIMEs[contentType] {
		errs.Add("image", "The image field must be a file of type: jpeg, png, jpg, gif, webp.")
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if h.ClamdAddr != "" {
		clean, err := h.scanFile(file)
		if err != nil {
			h.logger().Error("scan upload", slog.String("error", err.Error()))
			Internal(c, "failed to scan file")
			return
		}
		if !clean {
			errs.Add("image", "The image field contains a malicious file.")
			ValidationFailed(c, errs)
			return
		}
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	filename := fmt.Sprintf("%s_%d_%s.%s", imageType, time.Now().Unix(), token, ext)
	objectKey := storage.ImagePrefix + filename

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open uploaded file")
		return
	}
	defer reader.Close()

	if err := h.Storage.UploadFile(c.Request.Context(), objectKey, reader, file.Size, contentType); err != nil {
		h.logger().Error("upload image", slog.String("object_key", objectKey), slog.String("error", err.Error()))
		Internal(c, "Failed to upload image")
		return
	}

	DataWithMessage(c, http.StatusOK, "Image uploaded successfully", gin.H{
		"filename": filename,
		"url":      h.Storage.PublicURL(objectKey),
		"path":     objectKey,
	})
}

type deleteImageRequest struct {
	Filename json.RawMessage `json:"filename"`
}

// Delete removes an uploaded image by bare filename. Filenames carrying path
// separators or dot-dot segments are rejected so callers cannot escape the
// images/ prefix.
func (h *ImageHandler) Delete(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	errs := validation.Errors{}
	filename, filenameOK := errs.DecodeString("filename", req.Filename)
	if filenameOK {
		errs.Required("filename", strValue(filename))
		if strings.ContainsAny(strValue(filename), `/\`) || strings.Contains(strValue(filename), "..") {
			errs.Add("filename", "The filename field is invalid.")
		}
	}
	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	ctx := c.Request.Context()
	objectKey := storage.ImagePrefix + *filename

	exists, err := h.Storage.ObjectExists(ctx, objectKey)
	if err != nil {
		h.logger().Error("stat image", slog.String("object_key", objectKey), slog.String("error", err.Error()))
		Internal(c, "Failed to delete image")
		return
	}
	if !exists {
		NotFound(c, "Image not found")
		return
	}

	if err := h.Storage.DeleteObject(ctx, objectKey); err != nil {
		h.logger().Error("delete image", slog.String("object_key", objectKey), slog.String("error", err.Error()))
		Internal(c, "Failed to delete image")
		return
	}

	Error(c, http.StatusOK, "Image deleted successfully")
}

// sniffContentType detects the MIME type from the file's leading bytes
// rather than trusting the client-supplied header.
func (h *ImageHandler) sniffContentType(file *multipart.FileHeader) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(reader, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func (h *ImageHandler) scanFile(file *multipart.FileHeader) (bool, error) {
	reader, err := file.Open()
	if err != nil {
		return false, err
	}
	defer reader.Close()

	clamdClient := clamd.NewClamd(h.ClamdAddr)
	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamdClient.ScanStream(reader, abortChan)
	if err != nil {
		return false, err
	}

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return false, nil
		}
	}
	return true, nil
}

func (h *ImageHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
