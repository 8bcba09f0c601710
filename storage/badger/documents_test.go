package badger

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/poiesic/warebot/core"
	"github.com/poiesic/warebot/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(id, text string, vector []float32) *core.Document {
	return &core.Document{
		ID:     id,
		Text:   text,
		Vector: vector,
		Metadata: core.DocMetadata{
			ProductID: id,
			Category:  "General",
			Warehouse: "Main",
		},
	}
}

func TestCount_Empty(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAddDocuments(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	docs := []*core.Document{
		testDocument("0", "Product ID: 0. Product Name: Pump.", []float32{1, 0, 0}),
		testDocument("1", "Product ID: 1. Product Name: Valve.", []float32{0, 1, 0}),
		testDocument("2", "Product ID: 2. Product Name: Bearing.", []float32{0, 0, 1}),
	}

	require.NoError(t, repo.AddDocuments(ctx, docs...))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	got, err := repo.GetDocument(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, docs[1], got)
}

func TestAddDocuments_DuplicateID(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, repo.AddDocuments(ctx, testDocument("0", "first", []float32{1})))

	t.Run("existing id fails the batch", func(t *testing.T) {
		err := repo.AddDocuments(ctx,
			testDocument("1", "new", []float32{1}),
			testDocument("0", "collides", []float32{1}),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrDuplicateID)

		// Nothing from the failed batch is committed
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("id repeated within batch fails the batch", func(t *testing.T) {
		err := repo.AddDocuments(ctx,
			testDocument("5", "a", []float32{1}),
			testDocument("5", "b", []float32{1}),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrDuplicateID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestAddDocuments_InvalidDocument(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	err = repo.AddDocuments(context.Background(), &core.Document{ID: "", Text: "no id"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidDocument)
}

func TestGetDocument_NotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	_, err = repo.GetDocument(context.Background(), "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDocuments_OrderedByID(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	// Insert out of order; ids 2 and 10 also check numeric ordering
	require.NoError(t, repo.AddDocuments(ctx,
		testDocument("10", "tenth", []float32{1}),
		testDocument("2", "second", []float32{1}),
		testDocument("0", "zeroth", []float32{1}),
	))

	docs, err := repo.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "0", docs[0].ID)
	assert.Equal(t, "2", docs[1].ID)
	assert.Equal(t, "10", docs[2].ID)
}

func TestFindSimilar(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, repo.AddDocuments(ctx,
		testDocument("0", "about pumps", []float32{0.9, 0.1, 0.0}),
		testDocument("1", "about valves", []float32{0.1, 0.9, 0.0}),
		testDocument("2", "also about pumps", []float32{0.85, 0.15, 0.0}),
	))

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "0", results[0].Document.ID)
	assert.Equal(t, "2", results[1].Document.ID)
	assert.Equal(t, "1", results[2].Document.ID)
	for i := 0; i < len(results)-1; i++ {
		assert.GreaterOrEqual(t, results[i].Score, results[i+1].Score)
	}
}

func TestFindSimilar_TiesBrokenByID(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	// Identical vectors produce identical scores; order must be id ascending
	v := []float32{0.5, 0.5}
	require.NoError(t, repo.AddDocuments(ctx,
		testDocument("11", "copy", v),
		testDocument("3", "copy", v),
		testDocument("7", "copy", v),
	))

	results, err := repo.FindSimilar(ctx, []float32{0.5, 0.5}, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "3", results[0].Document.ID)
	assert.Equal(t, "7", results[1].Document.ID)
	assert.Equal(t, "11", results[2].Document.ID)
}

func TestFindSimilar_LimitAndEmpty(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	t.Run("empty store returns empty result", func(t *testing.T) {
		results, err := repo.FindSimilar(ctx, []float32{1, 0}, 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("results bounded by limit", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.AddDocuments(ctx,
				testDocument(strconv.Itoa(i), "doc", []float32{float32(i), 1})))
		}
		results, err := repo.FindSimilar(ctx, []float32{1, 1}, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestFingerprint(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	fp, err := repo.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.Fingerprint(0), fp)

	want := core.FingerprintFromContent("dataset")
	require.NoError(t, repo.SetFingerprint(ctx, want))

	fp, err = repo.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, fp)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "index")

	repo, backend, err := NewDocumentRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.AddDocuments(ctx,
		testDocument("0", "persisted", []float32{1, 0})))
	require.NoError(t, backend.Close())

	repo, backend, err = NewDocumentRepository(dir)
	require.NoError(t, err)
	defer backend.Close()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	doc, err := repo.GetDocument(ctx, "0")
	require.NoError(t, err)
	assert.Equal(t, "persisted", doc.Text)
}

func TestCompareDocumentIDs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"3", "3", 0},
		{"abc", "abd", -1},
		{"2", "abc", -1}, // mixed falls back to lexicographic
	}
	for _, tt := range tests {
		got := compareDocumentIDs(tt.a, tt.b)
		if (got < 0) != (tt.want < 0) || (got > 0) != (tt.want > 0) {
			t.Errorf("compareDocumentIDs(%q, %q) = %d, want sign of %d", tt.a, tt.b, got, tt.want)
		}
	}
}
