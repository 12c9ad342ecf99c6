package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
)

var sampleContent = ads.AdContent{
	Headline: "Lẩu ngon xỉu ngang",
	Body:     "● Nước dùng đậm đà\n● Giao tận nơi",
	Hashtags: []string{"lau", "#anvat", "hcm"},
}

func TestClipboardText(t *testing.T) {
	got := ClipboardText(sampleContent)
	assert.Equal(t, "Lẩu ngon xỉu ngang\n\n● Nước dùng đậm đà\n● Giao tận nơi\n\n#lau #anvat #hcm", got)
}

func TestHashtagLineNormalizesPrefix(t *testing.T) {
	assert.Equal(t, "#lau #anvat #hcm", HashtagLine(sampleContent))
	assert.Equal(t, "", HashtagLine(ads.AdContent{}))
}

func TestShareURLEscapesText(t *testing.T) {
	url := ShareURL(PlatformFacebook, "http://localhost:8000", "", "tiêu đề & nội dung")
	assert.Contains(t, url, "https://www.facebook.com/sharer/sharer.php?u=")
	assert.NotContains(t, url, " ")
	assert.NotContains(t, url, "&quote=tiêu đề")
}

func TestShareURLPerPlatform(t *testing.T) {
	assert.Contains(t, ShareURL(PlatformTwitter, "http://x", "", "text"), "twitter.com/intent/tweet")
	assert.Contains(t, ShareURL(PlatformPinterest, "http://x", "http://img", "text"), "pinterest.com/pin/create/button")
	assert.Equal(t, "", ShareURL(Platform("zalo"), "http://x", "", "text"))
}

func TestShareLinksCoverEveryPlatform(t *testing.T) {
	links := ShareLinks(sampleContent, "http://localhost:8000", "http://localhost:8000/img.png")
	assert.Len(t, links, len(AllPlatforms))
	for _, link := range links {
		assert.NotEmpty(t, link.ShareURL, "platform %s", link.Platform)
	}
}
