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

func offeringFixture() domain.Offering {
	return domain.Offering{
		Title:       "Alaska Scenic Route",
		Description: "Glaciers from the comfort of a dome car.",
		Itinerary:   "Day 1-2: Anchorage • Day 3-4: Denali",
		Price:       3799,
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := repo.NewTripRepo(testutil.NewTx(t))
	ctx := context.Background()

	got, err := r.Create(ctx, offeringFixture())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, "Alaska Scenic Route", got.Title)
	assert.Equal(t, 3799, got.Price)
	assert.Empty(t, got.ImageURL, "no image should be stored as NULL and read back empty")
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTripRepo_List_OrderedByCreation(t *testing.T) {
	tx := testutil.NewTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	// now() is fixed for the whole transaction, so set created_at explicitly.
	first, err := r.Create(ctx, offeringFixture())
	require.NoError(t, err)
	second := offeringFixture()
	second.Title = "Japan Cultural Tour"
	created, err := r.Create(ctx, second)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `UPDATE trips SET created_at = created_at + interval '1 second' WHERE id = $1`, created.ID)
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	idx := map[uuid.UUID]int{}
	for i, o := range got {
		idx[o.ID] = i
	}
	require.Contains(t, idx, first.ID)
	require.Contains(t, idx, created.ID)
	assert.Less(t, idx[first.ID], idx[created.ID])
}

func TestTripRepo_SetImageURL(t *testing.T) {
	r := repo.NewTripRepo(testutil.NewTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, offeringFixture())
	require.NoError(t, err)

	err = r.SetImageURL(ctx, created.ID, "https://cdn.example.com/trip-images/a.jpg")
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	for _, o := range list {
		if o.ID == created.ID {
			assert.Equal(t, "https://cdn.example.com/trip-images/a.jpg", o.ImageURL)
			return
		}
	}
	t.Fatal("created offering missing from list")
}

func TestTripRepo_SetImageURL_NotFound(t *testing.T) {
	r := repo.NewTripRepo(testutil.NewTx(t))

	err := r.SetImageURL(context.Background(), uuid.New(), "https://cdn.example.com/x.jpg")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
