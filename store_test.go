package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	db, err := openDB(filepath.Join(t.TempDir(), "messages.db"))
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	first, err := saveMessage(ctx, db, "Ada", "ada@example.com", "first")
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)

	time.Sleep(time.Millisecond)
	second, err := saveMessage(ctx, db, "Grace", "grace@example.com", "second")
	require.NoError(t, err)

	messages, err := listMessages(ctx, db, 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID, "newest first")
	assert.Equal(t, "first", messages[1].Body)
	assert.WithinDuration(t, first.CreatedAt, messages[1].CreatedAt, time.Millisecond)

	limited, err := listMessages(ctx, db, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	found, err := deleteMessage(ctx, db, first.ID)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = deleteMessage(ctx, db, first.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpenDB_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	db, err := openDB(path)
	require.NoError(t, err)
	_, err = saveMessage(context.Background(), db, "Ada", "ada@example.com", "kept")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = openDB(path)
	require.NoError(t, err)
	defer db.Close()
	messages, err := listMessages(context.Background(), db, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "kept", messages[0].Body)
}
