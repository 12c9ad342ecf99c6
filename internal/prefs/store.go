// Package prefs persists the operator's brand profile, media assets and
// theme. Loading never fails the caller: anything missing or unreadable
// falls back to a built-in default, field by field.
package prefs

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/storage/db"
)

const (
	keyBrandName    = "brand.name"
	keyBrandHotline = "brand.hotline"
	keyBrandAddress = "brand.address"
	keyBanner       = "media.banner"
	keyBannerHeight = "media.banner_height"
	keyLogo         = "media.logo"
	keyLogoOpacity  = "media.logo_opacity"
	keyTheme        = "theme"
)

const defaultBanner = "https://images.unsplash.com/photo-1611162617474-5b21e879e113?q=80&w=1000&auto=format&fit=crop"

type Preferences struct {
	Brand ads.BrandProfile `json:"brand"`
	Media ads.MediaAssets  `json:"media"`
	Theme string           `json:"theme"`
}

// Update is a typed partial write; nil fields are left untouched.
type Update struct {
	BrandName    *string  `json:"brand_name,omitempty"`
	BrandHotline *string  `json:"brand_hotline,omitempty"`
	BrandAddress *string  `json:"brand_address,omitempty"`
	Banner       *string  `json:"banner,omitempty"`
	BannerHeight *int     `json:"banner_height,omitempty"`
	Logo         *string  `json:"logo,omitempty"`
	LogoOpacity  *float64 `json:"logo_opacity,omitempty"`
	Theme        *string  `json:"theme,omitempty"`
}

type Store struct {
	queries *db.Queries
}

func NewStore(queries *db.Queries) *Store {
	return &Store{queries: queries}
}

// Defaults is the record a fresh install sees.
func Defaults() Preferences {
	return Preferences{
		Brand: ads.BrandProfile{
			Name:    "Thương hiệu của bạn",
			Hotline: "0900.000.000",
			Address: "Việt Nam",
		},
		Media: ads.MediaAssets{
			Banner:       defaultBanner,
			BannerHeight: 288,
			LogoOpacity:  0.8,
		},
		Theme: "light",
	}
}

// Load merges whatever is stored over the defaults. It never returns an
// error; failures degrade to defaults and get logged.
func (s *Store) Load(ctx context.Context) Preferences {
	prefs := Defaults()

	stored, err := s.queries.ListPreferences(ctx)
	if err != nil {
		slog.Warn("failed to load preferences, using defaults", "error", err)
		return prefs
	}

	if v, ok := stored[keyBrandName]; ok && v != "" {
		prefs.Brand.Name = v
	}
	if v, ok := stored[keyBrandHotline]; ok && v != "" {
		prefs.Brand.Hotline = v
	}
	if v, ok := stored[keyBrandAddress]; ok && v != "" {
		prefs.Brand.Address = v
	}
	if v, ok := stored[keyBanner]; ok && v != "" {
		prefs.Media.Banner = v
	}
	if v, ok := stored[keyBannerHeight]; ok {
		if height, err := strconv.Atoi(v); err == nil && height > 0 {
			prefs.Media.BannerHeight = height
		}
	}
	if v, ok := stored[keyLogo]; ok {
		prefs.Media.Logo = v
	}
	if v, ok := stored[keyLogoOpacity]; ok {
		if opacity, err := strconv.ParseFloat(v, 64); err == nil {
			prefs.Media.LogoOpacity = clampOpacity(opacity)
		}
	}
	if v, ok := stored[keyTheme]; ok && v != "" {
		prefs.Theme = v
	}

	return prefs
}

// Save upserts only the fields present in the update. Last writer wins per
// field; persistence failures are logged, never surfaced to the UI.
func (s *Store) Save(ctx context.Context, update Update) {
	set := func(key, value string) {
		if err := s.queries.UpsertPreference(ctx, key, value); err != nil {
			slog.Error("failed to save preference", "key", key, "error", err)
		}
	}

	if update.BrandName != nil {
		set(keyBrandName, *update.BrandName)
	}
	if update.BrandHotline != nil {
		set(keyBrandHotline, *update.BrandHotline)
	}
	if update.BrandAddress != nil {
		set(keyBrandAddress, *update.BrandAddress)
	}
	if update.Banner != nil {
		set(keyBanner, *update.Banner)
	}
	if update.BannerHeight != nil {
		set(keyBannerHeight, strconv.Itoa(*update.BannerHeight))
	}
	if update.Logo != nil {
		set(keyLogo, *update.Logo)
	}
	if update.LogoOpacity != nil {
		set(keyLogoOpacity, strconv.FormatFloat(clampOpacity(*update.LogoOpacity), 'f', -1, 64))
	}
	if update.Theme != nil {
		set(keyTheme, *update.Theme)
	}
}

func clampOpacity(opacity float64) float64 {
	if opacity < 0 {
		return 0
	}
	if opacity > 1 {
		return 1
	}
	return opacity
}
