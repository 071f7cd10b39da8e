package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-web/internal/infrastructure/cache"
	"bookstore-web/internal/shared/session"
)

func TestStore_LoadUnknownIsNew(t *testing.T) {
	store := session.NewStore(cache.NewMemoryCache(), time.Hour)

	sess, err := store.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, sess.IsNew())
	assert.False(t, sess.Modified())
	assert.Empty(t, sess.Bag)
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(cache.NewMemoryCache(), time.Hour)

	sess := session.New("abc")
	sess.SetQuantity(7, 2)
	sess.SetQuantity(3, 1)
	sess.AddMessage(session.LevelSuccess, "hello")
	sess.Set("save_info", "on")
	require.True(t, sess.Modified())

	require.NoError(t, store.Save(ctx, sess))
	assert.False(t, sess.Modified())

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, loaded.IsNew())
	assert.Equal(t, 2, loaded.Quantity(7))
	assert.Equal(t, []int64{3, 7}, loaded.BagBookIDs())
	assert.Equal(t, 3, loaded.ItemCount())
	assert.Equal(t, "on", loaded.Get("save_info"))

	msgs := loaded.PopMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.Nil(t, loaded.PopMessages())
}

func TestStore_Destroy(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(cache.NewMemoryCache(), time.Hour)

	sess := session.New("abc")
	sess.SetQuantity(1, 1)
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Destroy(ctx, "abc"))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, loaded.IsNew())
	assert.Zero(t, loaded.ItemCount())
}

func TestSession_SetQuantityZeroRemoves(t *testing.T) {
	sess := session.New("abc")
	sess.SetQuantity(1, 4)
	sess.SetQuantity(1, 0)

	assert.Zero(t, sess.Quantity(1))
	assert.False(t, sess.RemoveItem(1))
}
