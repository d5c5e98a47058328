package repository

import (
	"testing"

	"pathiram/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMemoryStorePartyRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	p := &models.Party{ID: "p1", Name: "ராமன்", Mobile: "9876543210", Relationship: "son"}
	require.NoError(t, store.SaveParty(p))

	got, err := store.GetParty("p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ராமன்", got.Name)

	// Overwrite with the same id
	p.Name = "கண்ணன்"
	require.NoError(t, store.SaveParty(p))
	got, err = store.GetParty("p1")
	require.NoError(t, err)
	assert.Equal(t, "கண்ணன்", got.Name)

	require.NoError(t, store.DeleteParty("p1"))
	got, err = store.GetParty("p1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreGetAllPartiesSorted(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveParty(&models.Party{ID: "a", Name: "Zed"}))
	require.NoError(t, store.SaveParty(&models.Party{ID: "b", Name: "Anand"}))

	list, err := store.GetAllParties()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Anand", list[0].Name)
	assert.Equal(t, "Zed", list[1].Name)
}

func TestMemoryStoreMissingRecordsAreNil(t *testing.T) {
	store := NewMemoryStore()

	p, err := store.GetParty("none")
	require.NoError(t, err)
	assert.Nil(t, p)

	l, err := store.GetLocation("none")
	require.NoError(t, err)
	assert.Nil(t, l)

	d, err := store.GetDraft("none")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestMemoryStoreDraftTimestamps(t *testing.T) {
	store := NewMemoryStore()

	draft := &models.DeedDraft{ID: "d1", DeedType: models.DeedTypeSale, FormData: "{}"}
	require.NoError(t, store.SaveDraft(draft))
	assert.False(t, draft.CreatedAt.IsZero())
	assert.False(t, draft.UpdatedAt.IsZero())

	created := draft.CreatedAt
	require.NoError(t, store.SaveDraft(draft))
	assert.Equal(t, created, draft.CreatedAt)
	assert.False(t, draft.UpdatedAt.Before(created))
}

func TestMemoryStoreDraftsOrderedByUpdate(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveDraft(&models.DeedDraft{ID: "old", DeedType: models.DeedTypeSale, FormData: "{}"}))
	require.NoError(t, store.SaveDraft(&models.DeedDraft{ID: "new", DeedType: models.DeedTypeAgreement, FormData: "{}"}))

	// Touch the first draft so it becomes the most recent
	first, err := store.GetDraft("old")
	require.NoError(t, err)
	require.NoError(t, store.SaveDraft(first))

	list, err := store.GetAllDrafts()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "old", list[0].ID)
}

func TestMemoryStoreUserSignupAndLookup(t *testing.T) {
	store := NewMemoryStore()

	u := &models.AppUser{Name: "Admin", Email: "admin@example.com", Role: "admin", Password: "secret"}
	require.NoError(t, store.CreateUser(u))
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "secret", u.Password)

	got, err := store.GetUserByEmail("admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("secret")))

	// Duplicate email rejected
	dup := &models.AppUser{Name: "Other", Email: "admin@example.com", Role: "staff", Password: "pw"}
	assert.Error(t, store.CreateUser(dup))

	// Empty password rejected
	bad := &models.AppUser{Name: "NoPw", Email: "nopw@example.com", Role: "staff"}
	assert.Error(t, store.CreateUser(bad))

	missing, err := store.GetUserByEmail("ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
