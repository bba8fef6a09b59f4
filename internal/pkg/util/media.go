package util

import (
	"Kajoogram/internal/pkg/consts"
	"net/http"
	"path/filepath"
	"strings"
)

// SniffMedia 根据文件头判断类型，只接受图片与视频
func SniffMedia(head []byte, filename string) (contentType string, kind string, ok bool) {
	contentType = http.DetectContentType(head)
	if ct, _, found := strings.Cut(contentType, ";"); found {
		contentType = ct
	}
	switch {
	case strings.HasPrefix(contentType, consts.MimePrefixImage+"/"):
		return contentType, consts.MimePrefixImage, true
	case strings.HasPrefix(contentType, consts.MimePrefixVideo+"/"):
		return contentType, consts.MimePrefixVideo, true
	}
	// mp4/mov 等容器 DetectContentType 可能识别为 octet-stream
	if contentType == "application/octet-stream" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".mp4", ".m4v":
			return "video/mp4", consts.MimePrefixVideo, true
		case ".mov":
			return "video/quicktime", consts.MimePrefixVideo, true
		}
	}
	return contentType, "", false
}
