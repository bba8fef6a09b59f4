package util

import (
	"encoding/base64"
	"errors"
	"hash/crc32"

	"github.com/goccy/go-json"
)

// FeedCursor 发现流分页游标：同一会话内翻页使用同一随机种子
type FeedCursor struct {
	Session string `json:"s"`
	Page    int    `json:"p"`
}

var ErrBadCursor = errors.New("invalid cursor")

// EncodeCursor 编码为 URL 安全的 Base64
func EncodeCursor(c FeedCursor) string {
	b, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeCursor 空串返回零值
func DecodeCursor(s string) (FeedCursor, error) {
	var c FeedCursor
	if s == "" {
		return c, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return c, ErrBadCursor
	}
	if err = json.Unmarshal(b, &c); err != nil || c.Page < 1 {
		return FeedCursor{}, ErrBadCursor
	}
	return c, nil
}

// HashSessionID 将会话 ID 转为随机种子
func HashSessionID(sessionID string) uint64 {
	if sessionID == "" {
		return 0
	}
	return uint64(crc32.ChecksumIEEE([]byte(sessionID)))
}
