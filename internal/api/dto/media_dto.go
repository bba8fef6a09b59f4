package dto

// MediaTempMetadata 未被引用的上传记录，超时后由清理任务删除
type MediaTempMetadata struct {
	Object    string `json:"object"`
	MimeType  string `json:"mime_type"`
	Kind      string `json:"kind"`
	Size      int64  `json:"size"`
	CreatedAt int64  `json:"created_at"`
}

type MediaDTO struct {
	URL      string `json:"url"`
	Object   string `json:"object"`
	Mime     string `json:"mime"`
	Kind     string `json:"kind"`
	Size     int64  `json:"size"`
	Original string `json:"original"`
}
