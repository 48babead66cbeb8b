package naisite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "site.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testArticle(slug, date string) content.Article {
	return content.Article{
		Slug:      slug,
		Title:     "Title " + slug,
		Date:      date,
		Author:    "Nurse Assist",
		Category:  "NCLEX",
		Excerpt:   "Excerpt",
		Tags:      []string{"nclex", "exam"},
		Keywords:  []string{"ngn"},
		ReadTime:  "3 min read",
		Body:      "## Heading\n\nBody text.",
		Published: true,
	}
}

func TestNewStoreCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "site.db")
	s, err := NewStore(path)
	require.NoError(t, err)
	defer s.Close()
	assert.FileExists(t, path)
}

func TestSaveAndGetArticle(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := testArticle("nclex-gateway", "2025-03-01")
	a.Aliases = []string{"old-gateway"}
	a.Featured = true
	a.Views = 12
	require.NoError(t, s.SaveArticle(ctx, a))

	got, err := s.GetArticleAny(ctx, "nclex-gateway")
	require.NoError(t, err)
	if diff := cmp.Diff(a, got); diff != "" {
		t.Errorf("article mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveArticleReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := testArticle("osce", "2025-01-01")
	require.NoError(t, s.SaveArticle(ctx, a))
	a.Title = "Updated"
	require.NoError(t, s.SaveArticle(ctx, a))

	all, err := s.ListAllArticles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Updated", all[0].Title)
}

func TestDraftsHiddenFromPublicQueries(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	draft := testArticle("draft", "2025-02-01")
	draft.Published = false
	require.NoError(t, s.SaveArticle(ctx, draft))
	require.NoError(t, s.SaveArticle(ctx, testArticle("live", "2025-01-01")))

	list, err := s.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "live", list[0].Slug)

	_, err = NewArticleCache(s, time.Hour).Get(ctx, "draft")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	got, err := s.GetArticleAny(ctx, "draft")
	require.NoError(t, err)
	assert.False(t, got.Published)

	all, err := s.ListAllArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListArticlesNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	for _, a := range []content.Article{
		testArticle("b", "2024-06-01"),
		testArticle("c", "2025-01-10"),
		testArticle("a", "2024-06-01"),
	} {
		require.NoError(t, s.SaveArticle(ctx, a))
	}

	list, err := s.ListArticles(ctx)
	require.NoError(t, err)
	var slugs []string
	for _, a := range list {
		slugs = append(slugs, a.Slug)
	}
	assert.Equal(t, []string{"c", "a", "b"}, slugs)
}

func TestResolveAlias(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := testArticle("decoding-nclex-cat", "2025-01-01")
	a.Aliases = []string{"nclex-cat", "cat-explained"}
	require.NoError(t, s.SaveArticle(ctx, a))

	slug, err := s.ResolveAlias(ctx, "cat-explained")
	require.NoError(t, err)
	assert.Equal(t, "decoding-nclex-cat", slug)

	// Partial matches must not resolve.
	_, err = s.ResolveAlias(ctx, "cat")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	a.Published = false
	require.NoError(t, s.SaveArticle(ctx, a))
	_, err = s.ResolveAlias(ctx, "nclex-cat")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSeedArticlesKeepsExisting(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	edited := testArticle("first", "2025-01-01")
	edited.Title = "Edited in admin"
	require.NoError(t, s.SaveArticle(ctx, edited))

	added, err := s.SeedArticles(ctx, []content.Article{
		testArticle("first", "2025-01-01"),
		testArticle("second", "2025-01-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	got, err := s.GetArticleAny(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, "Edited in admin", got.Title)

	added, err = s.SeedArticles(ctx, []content.Article{testArticle("second", "2025-01-02")})
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestSeedArticlesOncePerSlug(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	catalog := []content.Article{testArticle("kept", "2025-01-01"), testArticle("removed", "2025-01-02")}

	added, err := s.SeedArticles(ctx, catalog)
	require.NoError(t, err)
	require.Equal(t, 2, added)

	require.NoError(t, s.DeleteArticle(ctx, "removed"))
	added, err = s.SeedArticles(ctx, catalog)
	require.NoError(t, err)
	assert.Zero(t, added)

	_, err = s.GetArticleAny(ctx, "removed")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSeedArticlesSkipsAliasedSlugs(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// A database that predates seed tracking, holding an article renamed
	// away from a catalog slug.
	renamed := testArticle("new-name", "2025-01-01")
	renamed.Aliases = []string{"old-name"}
	require.NoError(t, s.SaveArticle(ctx, renamed))

	added, err := s.SeedArticles(ctx, []content.Article{testArticle("old-name", "2025-01-01")})
	require.NoError(t, err)
	assert.Zero(t, added)

	_, err = s.GetArticleAny(ctx, "old-name")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	slug, err := s.ResolveAlias(ctx, "old-name")
	require.NoError(t, err)
	assert.Equal(t, "new-name", slug)
}

func TestRenameArticle(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveArticle(ctx, testArticle("before", "2025-01-01")))

	a := testArticle("after", "2025-01-01")
	a.Aliases = []string{"before"}
	require.NoError(t, s.RenameArticle(ctx, "before", a))

	_, err := s.GetArticleAny(ctx, "before")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	got, err := s.GetArticleAny(ctx, "after")
	require.NoError(t, err)
	assert.Equal(t, []string{"before"}, got.Aliases)

	err = s.RenameArticle(ctx, "missing", testArticle("elsewhere", "2025-01-01"))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetArticleAny(ctx, "elsewhere")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRenameArticleRejectsTakenSlug(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveArticle(ctx, testArticle("source", "2025-01-01")))
	owner := testArticle("owner", "2025-01-02")
	owner.Title = "Owner keeps its title"
	require.NoError(t, s.SaveArticle(ctx, owner))

	err := s.RenameArticle(ctx, "source", testArticle("owner", "2025-01-01"))
	assert.ErrorIs(t, err, ErrSlugTaken)

	all, err := s.ListAllArticles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	got, err := s.GetArticleAny(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, "Owner keeps its title", got.Title)
}

func TestDeleteArticle(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveArticle(ctx, testArticle("gone", "2025-01-01")))
	require.NoError(t, s.DeleteArticle(ctx, "gone"))

	_, err := s.GetArticleAny(ctx, "gone")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLeads(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	older := leads.Lead{
		ID: "1", Kind: leads.KindContact, Name: "Ana", Email: "ana@example.com",
		Message: "Hello", CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	newer := leads.Lead{
		ID: "2", Kind: leads.KindReferral, Name: "Ben", Email: "ben@example.com",
		FriendName: "Cal", FriendEmail: "cal@example.com", IPHash: "abc",
		CreatedAt: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveLead(ctx, older))
	require.NoError(t, s.SaveLead(ctx, newer))

	got, err := s.ListLeads(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer, got[0])
	assert.Equal(t, older, got[1])

	got, err = s.ListLeads(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestImages(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	img := assets.Image{
		Bucket: "blog-images", Filename: "hero.jpg", OriginalName: "Hero.PNG",
		Width: 800, Height: 600, Size: 1024, UploadedAt: "2025-01-01T00:00:00Z",
	}
	require.NoError(t, s.SaveImage(ctx, img))

	ok, err := s.ImageExists(ctx, "blog-images", "hero.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ImageExists(ctx, "team-images", "hero.jpg")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := s.ListImages(ctx, "blog-images")
	require.NoError(t, err)
	assert.Equal(t, []assets.Image{img}, list)

	require.NoError(t, s.DeleteImage(ctx, "blog-images", "hero.jpg"))
	list, err = s.ListImages(ctx, "blog-images")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestJoinAndParseList(t *testing.T) {
	assert.Equal(t, "", JoinList(nil))
	assert.Equal(t, "", JoinList([]string{" ", ""}))
	assert.Equal(t, ",OSCE,NCLEX,", JoinList([]string{"OSCE", "", "NCLEX"}))

	assert.Nil(t, ParseList(""))
	assert.Nil(t, ParseList(",,"))
	assert.Equal(t, []string{"OSCE", "NCLEX"}, ParseList(",OSCE,NCLEX,"))
	assert.Equal(t, []string{"a", "b"}, ParseList("a, b"))
}
