package prefs

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return NewStore(queries)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestLoadEmptyStoreReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	got := store.Load(context.Background())
	assert.Equal(t, Defaults(), got)

	// Defaults are usable placeholders, never blank.
	assert.NotEmpty(t, got.Brand.Name)
	assert.NotEmpty(t, got.Brand.Hotline)
	assert.NotEmpty(t, got.Media.Banner)
	assert.Equal(t, 0.8, got.Media.LogoOpacity)
}

func TestSavePartialMergesOverDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	name := gofakeit.Company()
	store.Save(ctx, Update{
		BrandName:   strPtr(name),
		LogoOpacity: floatPtr(0.5),
	})

	got := store.Load(ctx)
	assert.Equal(t, name, got.Brand.Name)
	assert.Equal(t, 0.5, got.Media.LogoOpacity)

	// Untouched fields keep their defaults.
	assert.Equal(t, Defaults().Brand.Hotline, got.Brand.Hotline)
	assert.Equal(t, Defaults().Media.Banner, got.Media.Banner)
	assert.Equal(t, Defaults().Theme, got.Theme)
}

func TestSaveFullRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, Update{
		BrandName:    strPtr("Quán Lẩu 88"),
		BrandHotline: strPtr("0909.888.888"),
		BrandAddress: strPtr("Quận 5, TP. Hồ Chí Minh"),
		Banner:       strPtr("data:image/png;base64,AAAA"),
		BannerHeight: intPtr(240),
		Logo:         strPtr("data:image/png;base64,BBBB"),
		LogoOpacity:  floatPtr(0.65),
		Theme:        strPtr("dark"),
	})

	got := store.Load(ctx)
	assert.Equal(t, "Quán Lẩu 88", got.Brand.Name)
	assert.Equal(t, "0909.888.888", got.Brand.Hotline)
	assert.Equal(t, "Quận 5, TP. Hồ Chí Minh", got.Brand.Address)
	assert.Equal(t, "data:image/png;base64,AAAA", got.Media.Banner)
	assert.Equal(t, 240, got.Media.BannerHeight)
	assert.Equal(t, "data:image/png;base64,BBBB", got.Media.Logo)
	assert.Equal(t, 0.65, got.Media.LogoOpacity)
	assert.Equal(t, "dark", got.Theme)
}

func TestSaveIsLastWriterWinsPerField(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, Update{BrandName: strPtr("Cũ")})
	store.Save(ctx, Update{BrandName: strPtr("Mới")})
	store.Save(ctx, Update{BrandHotline: strPtr("0911.000.000")})

	got := store.Load(ctx)
	assert.Equal(t, "Mới", got.Brand.Name)
	assert.Equal(t, "0911.000.000", got.Brand.Hotline)
}

func TestOpacityIsClamped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, Update{LogoOpacity: floatPtr(3.7)})
	assert.Equal(t, 1.0, store.Load(ctx).Media.LogoOpacity)

	store.Save(ctx, Update{LogoOpacity: floatPtr(-0.3)})
	assert.Equal(t, 0.0, store.Load(ctx).Media.LogoOpacity)
}

func TestCorruptStoredValuesFallBackFieldByField(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Write garbage underneath the typed layer.
	require.NoError(t, store.queries.UpsertPreference(ctx, keyLogoOpacity, "not-a-number"))
	require.NoError(t, store.queries.UpsertPreference(ctx, keyBannerHeight, "banana"))
	require.NoError(t, store.queries.UpsertPreference(ctx, keyBrandName, "Còn Dùng Được"))

	got := store.Load(ctx)
	assert.Equal(t, Defaults().Media.LogoOpacity, got.Media.LogoOpacity)
	assert.Equal(t, Defaults().Media.BannerHeight, got.Media.BannerHeight)
	assert.Equal(t, "Còn Dùng Được", got.Brand.Name)
}

func TestClearingLogoIsValid(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, Update{Logo: strPtr("data:image/png;base64,BBBB")})
	store.Save(ctx, Update{Logo: strPtr("")})

	assert.Empty(t, store.Load(ctx).Media.Logo)
}
