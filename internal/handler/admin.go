package handler

import (
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/service"
)

// multipartMemory is how much of an upload ParseMultipartForm keeps in
// memory before spilling to a temp file.
const multipartMemory = 8 << 20

var (
	uploadedNotice     = notice{Title: "Success!", Body: "Image uploaded and trip updated successfully."}
	noSelectionNotice  = notice{Title: "Error", Body: "Please select a trip and choose a file to upload.", Error: true}
	uploadFailedNotice = notice{Title: "Error", Body: "Failed to upload image. Please try again.", Error: true}
	tooLargeNotice     = notice{Title: "Error", Body: "The selected file is too large.", Error: true}
)

// adminPage is the view model of admin.html.
type adminPage struct {
	Offerings  []domain.Offering
	SelectedID string
	Notice     *notice
}

func (s *Server) adminPage(r *http.Request) adminPage {
	offerings, err := s.trips.List(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "fetch trips for admin", "error", err)
		offerings = nil
	}
	return adminPage{Offerings: offerings}
}

// getAdmin handles GET /admin.
func (s *Server) getAdmin(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "admin.html", s.adminPage(r))
}

// postAdminImage handles POST /admin/images (multipart: trip_id, image).
// On success the selection is reset and the refreshed list is shown.
func (s *Server) postAdminImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.metrics.ImageUploaded(outcomeInvalid.label())
			page := s.adminPage(r)
			page.Notice = &tooLargeNotice
			s.render(w, r, http.StatusRequestEntityTooLarge, "admin.html", page)
			return
		}
		s.log.WarnContext(r.Context(), "parse upload form", "error", err)
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	selected := r.FormValue("trip_id")
	up := service.ImageUpload{}
	if id, err := uuid.Parse(selected); err == nil {
		up.OfferingID = id
	}

	if f, hdr, err := r.FormFile("image"); err == nil {
		defer f.Close()
		up.FileName = hdr.Filename
		up.ContentType = hdr.Header.Get("Content-Type")
		up.Size = hdr.Size
		up.Body = f
	}

	_, err := s.images.Attach(r.Context(), up)
	o := classify(err)
	s.metrics.ImageUploaded(o.label())

	page := s.adminPage(r)
	switch {
	case err == nil:
		page.Notice = &uploadedNotice
	case errors.Is(err, service.ErrNoSelection):
		page.Notice = &noSelectionNotice
		page.SelectedID = selected
	case o == outcomeInvalid:
		page.Notice = &notice{Title: "Error", Body: sentence(unwrapMessage(err)), Error: true}
		page.SelectedID = selected
	default:
		s.log.ErrorContext(r.Context(), "upload trip image",
			"trip_id", selected,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		page.Notice = &uploadFailedNotice
		page.SelectedID = selected
	}
	s.render(w, r, o.adminStatus(), "admin.html", page)
}

// adminStatus differs from status only in demo mode: the admin page has
// nothing to pretend, so an unconfigured bucket is a failure.
func (o outcome) adminStatus() int {
	if o == outcomeDemo {
		return http.StatusInternalServerError
	}
	return o.status()
}
