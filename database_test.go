package warebot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/warebot/ai/mock"
	"github.com/poiesic/warebot/chat"
	"github.com/poiesic/warebot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir, WithAIProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.Documents())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile, WithAIProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create retriever", func(t *testing.T) {
		retriever, err := db.NewRetriever()
		require.NoError(t, err)
		require.NotNil(t, retriever)
	})

	t.Run("can create assistant", func(t *testing.T) {
		assistant, err := db.NewAssistant(chat.WithMode(core.ModeShipment))
		require.NoError(t, err)
		require.NotNil(t, assistant)
		assert.Equal(t, core.ModeShipment, assistant.Mode())
	})
}

func TestDatabase_IngestAndAnswer(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer db.Close()

	source := filepath.Join(t.TempDir(), "inventory.csv")
	csv := "ProductID,ProductName,Quantity\n" +
		"P-1,Hex Bolt M8,420\n" +
		"P-2,Pallet Jack,6\n"
	require.NoError(t, os.WriteFile(source, []byte(csv), 0644))

	ctx := context.Background()
	require.NoError(t, db.Ingest(ctx, source))

	count, err := db.Documents().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	session := chat.NewSession()
	reply, err := db.Answer(ctx, session, "how many hex bolts are in stock?", core.ModeInventory)
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.Equal(t, 2, session.Len())
}
