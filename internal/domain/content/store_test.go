package content_test

import (
	"context"
	"errors"
	"testing"

	"artist-site/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertGetList(t *testing.T) {
	ctx := context.Background()
	store := content.NewStore[content.VideoLink](openTestDB(t))

	first := content.VideoLink{Title: "Live in Vienna", URL: "https://example.com/v1"}
	second := content.VideoLink{Title: "Masterclass", URL: "https://example.com/v2"}
	require.NoError(t, store.Insert(ctx, &first))
	require.NoError(t, store.Insert(ctx, &second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	got, err := store.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Masterclass", got.Title)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestStoreGetMissing(t *testing.T) {
	store := content.NewStore[content.PhotoLink](openTestDB(t))

	_, err := store.Get(context.Background(), 42)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := content.NewStore[content.Contact](openTestDB(t))

	rec := content.Contact{ContactPerson: "Agent", Phone: "+111", WhatsappOptional: strPtr("+222")}
	require.NoError(t, store.Insert(ctx, &rec))

	updated, err := store.Update(ctx, rec.ID, map[string]any{
		"phone":             "+333",
		"whatsapp_optional": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "+333", updated.Phone)
	assert.Equal(t, "Agent", updated.ContactPerson)
	assert.Nil(t, updated.WhatsappOptional)
}

func TestStoreUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	store := content.NewStore[content.Contact](openTestDB(t))

	rec := content.Contact{ContactPerson: "Agent", Phone: "+111"}
	require.NoError(t, store.Insert(ctx, &rec))

	_, err := store.Update(ctx, rec.ID+100, map[string]any{"phone": "+999"})
	assert.ErrorIs(t, err, content.ErrNotFound)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "+111", all[0].Phone)
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := content.NewStore[content.PhotoLink](openTestDB(t))

	rec := content.PhotoLink{Title: "Portrait", URL: "https://example.com/p.jpg"}
	require.NoError(t, store.Insert(ctx, &rec))

	require.NoError(t, store.Delete(ctx, rec.ID))
	assert.ErrorIs(t, store.Delete(ctx, rec.ID), content.ErrNotFound)

	_, err := store.Get(ctx, rec.ID)
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestStoreScopesIsolateCategories(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	solo := content.NewStore[content.RepertoireEntry](db, content.InCategory(content.CategorySolo))
	chamber := content.NewStore[content.RepertoireEntry](db, content.InCategory(content.CategoryChamber))

	piece := content.RepertoireEntry{Category: content.CategorySolo, Composer: "Ysaÿe", Title: "Sonata No. 3"}
	require.NoError(t, solo.Insert(ctx, &piece))

	_, err := chamber.Get(ctx, piece.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)
	_, err = chamber.Update(ctx, piece.ID, map[string]any{"title": "changed"})
	assert.ErrorIs(t, err, content.ErrNotFound)
	assert.ErrorIs(t, chamber.Delete(ctx, piece.ID), content.ErrNotFound)

	got, err := solo.Get(ctx, piece.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sonata No. 3", got.Title)
}

func TestStoreRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	store := content.NewStore[content.Biography](openTestDB(t))

	require.NoError(t, store.Insert(ctx, &content.Biography{Title: "English", LanguageSlug: "en"}))
	err := store.Insert(ctx, &content.Biography{Title: "Again", LanguageSlug: "en"})
	assert.Error(t, err)
}
