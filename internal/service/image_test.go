package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/service"
)

// fakeStore keeps image URLs in memory so a test can check what an offering
// ends up with after Attach.
type fakeStore struct {
	images    map[uuid.UUID]string
	updateErr error
	uploads   []string
}

func (f *fakeStore) trips() *mockTripRepo {
	return &mockTripRepo{
		setImageURL: func(_ context.Context, id uuid.UUID, url string) error {
			if f.updateErr != nil {
				return f.updateErr
			}
			f.images[id] = url
			return nil
		},
	}
}

func (f *fakeStore) bucket() *mockBucket {
	return &mockBucket{
		upload: func(_ context.Context, key string, body io.ReadSeeker, _ string) error {
			f.uploads = append(f.uploads, key)
			_, err := io.ReadAll(body)
			return err
		},
		publicURL: func(key string) string { return "https://cdn.example.com/trip-images/" + key },
	}
}

func jpegUpload(id uuid.UUID) service.ImageUpload {
	data := []byte("\xff\xd8\xff fake jpeg")
	return service.ImageUpload{
		OfferingID:  id,
		FileName:    "harbour.view.jpg",
		ContentType: "image/jpeg",
		Body:        bytes.NewReader(data),
		Size:        int64(len(data)),
	}
}

func TestImageService_Attach_Success(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{images: map[uuid.UUID]string{}}
	svc := service.NewImageService(store.trips(), store.bucket())

	url, err := svc.Attach(context.Background(), jpegUpload(id))

	require.NoError(t, err)
	require.Len(t, store.uploads, 1)
	assert.Regexp(t, regexp.MustCompile(`^`+id.String()+`-\d+\.jpg$`), store.uploads[0])
	assert.Equal(t, "https://cdn.example.com/trip-images/"+store.uploads[0], url)
	assert.Equal(t, url, store.images[id])
}

// TestImageService_Attach_MissingSelection verifies no bucket or repo call is
// made when either the offering or the file is missing.
func TestImageService_Attach_MissingSelection(t *testing.T) {
	// Empty mocks: any call panics.
	svc := service.NewImageService(&mockTripRepo{}, &mockBucket{})

	noOffering := jpegUpload(uuid.Nil)

	noFile := jpegUpload(uuid.New())
	noFile.FileName = ""
	noFile.Body = nil
	noFile.Size = 0

	emptyFile := jpegUpload(uuid.New())
	emptyFile.Size = 0

	for name, up := range map[string]service.ImageUpload{
		"no offering": noOffering,
		"no file":     noFile,
		"empty file":  emptyFile,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Attach(context.Background(), up)

			assert.ErrorIs(t, err, service.ErrNoSelection)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestImageService_Attach_RejectsNonImage(t *testing.T) {
	svc := service.NewImageService(&mockTripRepo{}, &mockBucket{})

	up := jpegUpload(uuid.New())
	up.FileName = "notes.txt"
	up.ContentType = "text/plain"

	_, err := svc.Attach(context.Background(), up)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, service.ErrNoSelection)
}

func TestImageService_Attach_GuessesTypeFromExtension(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{images: map[uuid.UUID]string{}}
	svc := service.NewImageService(store.trips(), store.bucket())

	up := jpegUpload(id)
	up.FileName = "harbour.png"
	up.ContentType = "application/octet-stream"

	_, err := svc.Attach(context.Background(), up)

	require.NoError(t, err)
	assert.Contains(t, store.images[id], ".png")
}

func TestImageService_Attach_UploadFailureSkipsUpdate(t *testing.T) {
	uploadErr := errors.New("bucket unavailable")
	svc := service.NewImageService(&mockTripRepo{}, &mockBucket{
		upload: func(context.Context, string, io.ReadSeeker, string) error { return uploadErr },
	})

	_, err := svc.Attach(context.Background(), jpegUpload(uuid.New()))

	assert.ErrorIs(t, err, uploadErr)
}

// TestImageService_Attach_UpdateFailureKeepsImage uploads successfully, fails
// the update, and checks the offering keeps its previous image URL.
func TestImageService_Attach_UpdateFailureKeepsImage(t *testing.T) {
	id := uuid.New()
	store := &fakeStore{
		images:    map[uuid.UUID]string{id: "https://cdn.example.com/trip-images/old.jpg"},
		updateErr: errors.New("update rejected"),
	}
	svc := service.NewImageService(store.trips(), store.bucket())

	_, err := svc.Attach(context.Background(), jpegUpload(id))

	require.Error(t, err)
	assert.ErrorIs(t, err, store.updateErr)
	assert.Len(t, store.uploads, 1, "the file was uploaded before the update failed")
	assert.Equal(t, "https://cdn.example.com/trip-images/old.jpg", store.images[id])
}

func TestObjectKey(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "11111111-2222-3333-4444-555555555555-1700000000123.jpeg", service.ObjectKey(id, "beach.photo.jpeg", at))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555-1700000000123.photo", service.ObjectKey(id, "photo", at))
}
