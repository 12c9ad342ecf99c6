// Package ads holds the domain types shared by the generation pipeline,
// the preference store and the history log.
package ads

// BrandProfile is the operator-edited company identity stamped onto every
// generated ad.
type BrandProfile struct {
	Name    string `json:"name"`
	Hotline string `json:"hotline"`
	Address string `json:"address"`
}

// AdContent is the copy produced by one successful generation. Immutable
// once created.
type AdContent struct {
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
}

// MediaAssets are the branding images. Images are stored as base64 data URIs.
type MediaAssets struct {
	Banner       string  `json:"banner"`
	BannerHeight int     `json:"banner_height"`
	Logo         string  `json:"logo,omitempty"`
	LogoOpacity  float64 `json:"logo_opacity"`
}

// HistoryItem is one durably recorded past generation.
type HistoryItem struct {
	ID           string    `json:"id"`
	CreatedAtMs  int64     `json:"created_at_ms"`
	ProductImage string    `json:"product_image"`
	CompanyName  string    `json:"company_name"`
	Content      AdContent `json:"content"`
}
