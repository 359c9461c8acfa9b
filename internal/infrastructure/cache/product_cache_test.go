package cache

import (
	"context"
	"testing"
	"time"

	"expediente-admin/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *productCache) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return srv, NewProductCache(client, ttl).(*productCache)
}

func cachedProduct() *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     "Widget One",
		Slug:     "widget-one",
		SKU:      "WID-001",
		Price:    decimal.RequireFromString("12.50"),
		Quantity: 3,
		Type:     entity.ProductTypeDownloadable,
		Image:    "products/widget.png",
	}
}

func TestProductCache_Miss(t *testing.T) {
	_, c := newTestCache(t, time.Minute)

	product, err := c.Get(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductCache_SetGet(t *testing.T) {
	srv, c := newTestCache(t, 10*time.Minute)
	ctx := context.Background()
	product := cachedProduct()

	require.NoError(t, c.Set(ctx, product))

	assert.True(t, srv.Exists("product:"+product.ID.String()))
	assert.Equal(t, 10*time.Minute, srv.TTL("product:"+product.ID.String()))

	got, err := c.Get(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, product.Slug, got.Slug)
	assert.True(t, product.Price.Equal(got.Price))
}

func TestProductCache_Expires(t *testing.T) {
	srv, c := newTestCache(t, time.Minute)
	ctx := context.Background()
	product := cachedProduct()

	require.NoError(t, c.Set(ctx, product))
	srv.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductCache_DeleteEvictsEveryID(t *testing.T) {
	srv, c := newTestCache(t, time.Minute)
	ctx := context.Background()
	a, b, kept := cachedProduct(), cachedProduct(), cachedProduct()
	for _, p := range []*entity.Product{a, b, kept} {
		require.NoError(t, c.Set(ctx, p))
	}

	require.NoError(t, c.Delete(ctx, a.ID, b.ID))

	assert.False(t, srv.Exists("product:"+a.ID.String()))
	assert.False(t, srv.Exists("product:"+b.ID.String()))
	assert.True(t, srv.Exists("product:"+kept.ID.String()))
}

func TestProductCache_DeleteNothing(t *testing.T) {
	_, c := newTestCache(t, time.Minute)

	assert.NoError(t, c.Delete(context.Background()))
}

func TestProductCache_CorruptEntry(t *testing.T) {
	srv, c := newTestCache(t, time.Minute)
	id := uuid.New()
	require.NoError(t, srv.Set("product:"+id.String(), "{not json"))

	_, err := c.Get(context.Background(), id)

	assert.Error(t, err)
}

func TestProductCache_ServerDown(t *testing.T) {
	srv, c := newTestCache(t, time.Minute)
	srv.Close()

	_, err := c.Get(context.Background(), uuid.New())

	assert.Error(t, err)
}
