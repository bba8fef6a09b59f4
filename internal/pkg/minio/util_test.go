package minio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	name := ObjectName("PNG", now)
	assert.True(t, strings.HasPrefix(name, "2024/03/09/"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotEqual(t, name, ObjectName(".png", now))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/media/2024/a.jpg", PublicURL("cdn.example.com", true, "media", "2024/a.jpg"))
	assert.Equal(t, "http://localhost:9000/media/a.mp4", PublicURL("localhost:9000", false, "media", "a.mp4"))
}
