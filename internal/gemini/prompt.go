package gemini

import (
	"fmt"
	"strings"

	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
)

// funnyStyleMarker selects the Gen-Z voice. Style tags are free-form in the
// UI but the salty ones all carry this phrase.
const funnyStyleMarker = "Mặn mòi"

const funnySystemInstruction = `Bạn là một "Thánh Content" mặn mòi, lầy lội, chuyên sử dụng ngôn ngữ Gen Z (ét ô ét, flex, mãi mận, keo lỳ, tâm linh, người chơi hệ...).
Cách viết: Dùng thơ chế, so sánh sản phẩm với những thứ khó đỡ (người yêu cũ, bữa lẩu, sổ hộ nghèo...), thả thính cực dính.
Mục tiêu: Đọc xong khách phải cười xỉu và chốt đơn vì sự duyên dáng.`

const professionalSystemInstruction = `Bạn là chuyên gia Content Marketing chuyên nghiệp, lịch sự, tập trung vào giá trị và niềm tin.`

func systemInstructionFor(style string) string {
	if strings.Contains(style, funnyStyleMarker) {
		return funnySystemInstruction
	}
	return professionalSystemInstruction
}

func buildContentPrompt(brand ads.BrandProfile, style, userPrompt string) string {
	return fmt.Sprintf(`Hãy viết bài quảng cáo cho: %s
Thương hiệu: %s | Hotline: %s | Địa chỉ: %s
Phong cách yêu cầu: %s.

Yêu cầu trình bày:
- Tiêu đề (headline) phải cực kỳ gây sốc và thu hút.
- Nội dung (body) ngắt dòng hợp lý, sử dụng icon phù hợp.
- Sử dụng dấu ● ở đầu các dòng đặc điểm nổi bật.

TRẢ VỀ ĐỊNH DẠNG JSON CHÍNH XÁC:
{
  "headline": "Tiêu đề ấn tượng",
  "body": "Nội dung bài viết",
  "hashtags": ["tag1", "tag2", "tag3"]
}`,
		userPrompt,
		brand.Name,
		brand.Hotline,
		brand.Address,
		style,
	)
}
