package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testContent() *blog.Content {
	c := &blog.Content{
		Title:           "Houten lampen in huis",
		MetaDescription: "Sfeer met hout.",
		Sections:        []blog.Section{{Heading: "Intro", Content: "Tekst."}},
	}
	c.Normalize()
	return c
}

func TestDraftRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	draft := &Draft{Keywords: "houten lamp", Content: testContent(), HTML: "<p>Tekst.</p>"}
	require.NoError(t, s.SaveDraft(ctx, draft))
	assert.NotEmpty(t, draft.ID, "save should assign an id")
	assert.Equal(t, "Houten lampen in huis", draft.Title, "title should default to the content title")
	assert.False(t, draft.CreatedAt.IsZero())

	loaded, err := s.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.Equal(t, "houten lamp", loaded.Keywords)
	assert.Equal(t, "<p>Tekst.</p>", loaded.HTML)
	require.NotNil(t, loaded.Content)
	assert.Equal(t, "Houten lampen in huis", loaded.Content.Title)
	assert.Len(t, loaded.Content.Sections, 1)
}

func TestDraftUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	draft := &Draft{Content: testContent()}
	require.NoError(t, s.SaveDraft(ctx, draft))
	id := draft.ID

	draft.Content.Title = "Nieuwe titel"
	draft.Title = "Nieuwe titel"
	require.NoError(t, s.SaveDraft(ctx, draft))
	assert.Equal(t, id, draft.ID, "update must keep the id")

	loaded, err := s.GetDraft(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Nieuwe titel", loaded.Title)
	assert.False(t, loaded.UpdatedAt.Before(loaded.CreatedAt))

	summaries, err := s.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1, "update must not create a second draft")
}

func TestDraftListOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &Draft{Title: "Eerste", Content: testContent()}
	require.NoError(t, s.SaveDraft(ctx, first))
	second := &Draft{Title: "Tweede", Content: testContent()}
	require.NoError(t, s.SaveDraft(ctx, second))

	// Touch the first draft so it becomes the most recent.
	require.NoError(t, s.SaveDraft(ctx, first))

	summaries, err := s.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Eerste", summaries[0].Title)
}

func TestDraftDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	draft := &Draft{Content: testContent()}
	require.NoError(t, s.SaveDraft(ctx, draft))

	require.NoError(t, s.DeleteDraft(ctx, draft.ID))

	_, err := s.GetDraft(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteDraft(ctx, draft.ID), ErrNotFound)
}

func TestDraftRequiresContent(t *testing.T) {
	s := newTestStore(t)

	err := s.SaveDraft(context.Background(), &Draft{Title: "Leeg"})
	assert.Error(t, err)
}
