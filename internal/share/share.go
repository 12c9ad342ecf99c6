// Package share turns a generated ad into post-ready text and per-platform
// share links.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
)

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformPinterest Platform = "pinterest"
)

var AllPlatforms = []Platform{
	PlatformFacebook,
	PlatformTwitter,
	PlatformPinterest,
}

// ClipboardText is the full post as the copy button delivers it:
// headline, blank line, body, blank line, hashtags.
func ClipboardText(content ads.AdContent) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s", content.Headline, content.Body, HashtagLine(content))
}

// HashtagLine renders the hashtag list as "#a #b #c".
func HashtagLine(content ads.AdContent) string {
	tags := make([]string, 0, len(content.Hashtags))
	for _, tag := range content.Hashtags {
		tags = append(tags, "#"+strings.TrimPrefix(tag, "#"))
	}
	return strings.Join(tags, " ")
}

type GeneratedShare struct {
	Platform Platform `json:"platform"`
	ShareURL string   `json:"share_url"`
}

// ShareLinks builds one share URL per platform for a finished ad.
func ShareLinks(content ads.AdContent, pageURL, imageURL string) []GeneratedShare {
	postText := ClipboardText(content)

	links := make([]GeneratedShare, 0, len(AllPlatforms))
	for _, platform := range AllPlatforms {
		links = append(links, GeneratedShare{
			Platform: platform,
			ShareURL: ShareURL(platform, pageURL, imageURL, postText),
		})
	}
	return links
}

func ShareURL(platform Platform, pageURL, imageURL, postText string) string {
	switch platform {
	case PlatformFacebook:
		return fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s&quote=%s",
			url.QueryEscape(pageURL),
			url.QueryEscape(postText),
		)
	case PlatformTwitter:
		tweetText := fmt.Sprintf("%s\n\n%s", postText, pageURL)
		return fmt.Sprintf("https://twitter.com/intent/tweet?text=%s",
			url.QueryEscape(tweetText),
		)
	case PlatformPinterest:
		return fmt.Sprintf("https://pinterest.com/pin/create/button/?url=%s&media=%s&description=%s",
			url.QueryEscape(pageURL),
			url.QueryEscape(imageURL),
			url.QueryEscape(postText),
		)
	}
	return ""
}
