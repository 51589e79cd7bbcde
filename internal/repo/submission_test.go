package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/internal/repo"
	"github.com/pkordes/startrek-travel/testutil"
)

func TestSignupRepo_Create(t *testing.T) {
	r := repo.NewSignupRepo(testutil.NewTx(t))

	got, err := r.Create(context.Background(), domain.Signup{Email: "ada@example.com"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMessageRepo_Create(t *testing.T) {
	r := repo.NewMessageRepo(testutil.NewTx(t))

	got, err := r.Create(context.Background(), domain.ContactMessage{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "Do you offer airport transfers?",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Grace", got.Name)
	assert.Equal(t, "Do you offer airport transfers?", got.Message)
}

// TestSurveyRepo_Create stores a flattened response and reads back the joined
// text verbatim.
func TestSurveyRepo_Create(t *testing.T) {
	r := repo.NewSurveyRepo(testutil.NewTx(t))

	in := domain.SurveyAnswers{
		Email:        "ada@example.com",
		Destinations: []string{"Mediterranean Cruise", "Japan Cultural Tour"},
		BudgetRange:  "$2,000 - $3,500 per person",
	}.Flatten()

	got, err := r.Create(context.Background(), in)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Mediterranean Cruise, Japan Cultural Tour", got.Destinations)
	assert.Equal(t, "$2,000 - $3,500 per person", got.BudgetRange)
	assert.Equal(t, "", got.TravelStyle)
}
