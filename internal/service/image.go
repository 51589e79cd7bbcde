package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
	"github.com/pkordes/startrek-travel/internal/storage"
)

// ErrNoSelection is returned by ImageService.Attach when the operator has
// not picked both an offering and a file.
var ErrNoSelection = fmt.Errorf("%w: select a trip and choose a file to upload", domain.ErrValidation)

// ImageUpload is one file chosen on the admin page.
type ImageUpload struct {
	OfferingID  uuid.UUID
	FileName    string
	ContentType string
	Body        io.ReadSeeker
	Size        int64
}

// ImageService uploads trip images and links them to offerings.
type ImageService struct {
	trips  repo.TripRepo
	bucket storage.Bucket
	now    func() time.Time
}

// NewImageService constructs an ImageService over the trips table and the image bucket.
func NewImageService(trips repo.TripRepo, bucket storage.Bucket) *ImageService {
	return &ImageService{trips: trips, bucket: bucket, now: time.Now}
}

// Attach uploads the file under ObjectKey, resolves its public URL and sets
// it as the offering's image. The steps run in order and the first failure
// aborts; an object uploaded before a failed update is left in the bucket.
// Returns the public URL on success.
func (s *ImageService) Attach(ctx context.Context, up ImageUpload) (string, error) {
	if up.OfferingID == uuid.Nil || up.FileName == "" || up.Body == nil || up.Size <= 0 {
		return "", ErrNoSelection
	}

	contentType := up.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension("." + extension(up.FileName))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s is not an image", domain.ErrValidation, up.FileName)
	}

	key := ObjectKey(up.OfferingID, up.FileName, s.now())
	if err := s.bucket.Upload(ctx, key, up.Body, contentType); err != nil {
		return "", fmt.Errorf("service.ImageService.Attach: upload: %w", err)
	}

	url := s.bucket.PublicURL(key)
	if err := s.trips.SetImageURL(ctx, up.OfferingID, url); err != nil {
		return "", fmt.Errorf("service.ImageService.Attach: update trip: %w", err)
	}
	return url, nil
}

// ObjectKey names an uploaded image "<offering id>-<unix millis>.<ext>".
// The extension is whatever follows the last "." of the uploaded file name, or
// the whole name when it has no dot.
func ObjectKey(offeringID uuid.UUID, fileName string, at time.Time) string {
	return fmt.Sprintf("%s-%d.%s", offeringID, at.UnixMilli(), extension(fileName))
}

func extension(fileName string) string {
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		return fileName[i+1:]
	}
	return fileName
}
