package gateway

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
	"github.com/pkordes/startrek-travel/internal/storage"
)

// NotConfigured returns the stub client. Every operation returns
// domain.ErrNotConfigured without touching the network; PublicURL returns "".
func NotConfigured() Client { return stub{} }

type stub struct{}

func (stub) Trips() repo.TripRepo       { return stubTrips{} }
func (stub) Signups() repo.SignupRepo   { return stubSignups{} }
func (stub) Surveys() repo.SurveyRepo   { return stubSurveys{} }
func (stub) Messages() repo.MessageRepo { return stubMessages{} }
func (stub) Images() storage.Bucket     { return stubBucket{} }
func (stub) Configured() bool           { return false }
func (stub) Ping(context.Context) error { return domain.ErrNotConfigured }
func (stub) Close()                     {}

type stubTrips struct{}

func (stubTrips) Create(context.Context, domain.Offering) (domain.Offering, error) {
	return domain.Offering{}, domain.ErrNotConfigured
}

func (stubTrips) List(context.Context) ([]domain.Offering, error) {
	return nil, domain.ErrNotConfigured
}

func (stubTrips) SetImageURL(context.Context, uuid.UUID, string) error {
	return domain.ErrNotConfigured
}

type stubSignups struct{}

func (stubSignups) Create(context.Context, domain.Signup) (domain.Signup, error) {
	return domain.Signup{}, domain.ErrNotConfigured
}

type stubSurveys struct{}

func (stubSurveys) Create(context.Context, domain.SurveyResponse) (domain.SurveyResponse, error) {
	return domain.SurveyResponse{}, domain.ErrNotConfigured
}

type stubMessages struct{}

func (stubMessages) Create(context.Context, domain.ContactMessage) (domain.ContactMessage, error) {
	return domain.ContactMessage{}, domain.ErrNotConfigured
}

type stubBucket struct{}

func (stubBucket) Upload(context.Context, string, io.ReadSeeker, string) error {
	return domain.ErrNotConfigured
}

func (stubBucket) PublicURL(string) string { return "" }
