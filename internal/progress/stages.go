package progress

import "math/rand/v2"

const stageDone = "Hoàn tất!"

// stages maps percent buckets to the status line shown under the bar.
// Thresholds must stay ascending so the label never moves backwards.
var stages = []struct {
	threshold float64
	label     string
}{
	{0, "Đang khởi động trợ lý AI..."},
	{12, "Đang phân tích ảnh sản phẩm..."},
	{30, "Đang nghiên cứu thương hiệu..."},
	{50, "Đang viết nội dung quảng cáo..."},
	{72, "Đang chọn hashtag xu hướng..."},
	{88, "Đang hoàn thiện bài viết..."},
}

func stageFor(percent float64) string {
	label := stages[0].label
	for _, stage := range stages {
		if percent >= stage.threshold {
			label = stage.label
		}
	}
	return label
}

// logLines is the pool of synthetic activity lines sprinkled into the
// overlay while the real call is pending.
var logLines = []string{
	"Nhận diện sản phẩm trong ảnh...",
	"Tính toán bố cục nội dung...",
	"Đối chiếu phong cách đã chọn...",
	"Chấm điểm mức độ thu hút của tiêu đề...",
	"Tối ưu ngắt dòng và icon...",
	"Rà soát chính tả tiếng Việt...",
	"Xếp hạng hashtag theo độ viral...",
	"Đồng bộ thông tin thương hiệu...",
}

func randomLogLine() string {
	return logLines[rand.IntN(len(logLines))]
}
