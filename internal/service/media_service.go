package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/minio"
	"Kajoogram/internal/pkg/util"
	"context"
	"io"
	log "log/slog"
	"mime/multipart"
	"path"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

// MediaTempTTL 上传后未被引用的保留时间
const MediaTempTTL = 24 * time.Hour

// ObjectStorage 对象存储，由 minio.Storage 实现
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}

type MediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*dto.MediaDTO, error)
	// Claim 媒体被内容引用后移出临时登记表
	Claim(ctx context.Context, urls ...string)
	CleanupExpired(ctx context.Context) (int, error)
}

type mediaServiceImpl struct {
	storage ObjectStorage
	temp    HashStore
	now     func() time.Time
}

func NewMediaService(storage ObjectStorage, temp HashStore) MediaService {
	return &mediaServiceImpl{storage: storage, temp: temp, now: time.Now}
}

func (s *mediaServiceImpl) Upload(ctx context.Context, file *multipart.FileHeader) (*dto.MediaDTO, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, ErrParamInvalid
	}
	defer func() { _ = reader.Close() }()

	head := make([]byte, 512)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, ErrParamInvalid
	}
	contentType, kind, ok := util.SniffMedia(head[:n], file.Filename)
	if !ok {
		log.InfoContext(ctx, "media type rejected", "content_type", contentType, "filename", file.Filename)
		return nil, ErrFileNotSupported
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	now := s.now()
	objectName := minio.ObjectName(path.Ext(file.Filename), now)
	url, err := s.storage.Upload(ctx, objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		return nil, UnExpectedError
	}

	meta, _ := json.Marshal(dto.MediaTempMetadata{
		Object:    objectName,
		MimeType:  contentType,
		Kind:      kind,
		Size:      file.Size,
		CreatedAt: now.Unix(),
	})
	if err = s.temp.HSet(ctx, consts.MediaTempKey, url, string(meta)); err != nil {
		log.WarnContext(ctx, "failed to register temp media", "url", url, "err", err)
	}

	log.InfoContext(ctx, "media upload success", "object", objectName, "type", contentType)
	return &dto.MediaDTO{
		URL:      url,
		Object:   objectName,
		Mime:     contentType,
		Kind:     kind,
		Size:     file.Size,
		Original: file.Filename,
	}, nil
}

func (s *mediaServiceImpl) Claim(ctx context.Context, urls ...string) {
	urls = lo.Compact(urls)
	if len(urls) == 0 {
		return
	}
	if err := s.temp.HDel(ctx, consts.MediaTempKey, urls...); err != nil {
		log.WarnContext(ctx, "failed to claim media", "count", len(urls), "err", err)
	}
}

// CleanupExpired 删除超过 MediaTempTTL 仍未被引用的对象
func (s *mediaServiceImpl) CleanupExpired(ctx context.Context) (int, error) {
	all, err := s.temp.HGetAll(ctx, consts.MediaTempKey)
	if err != nil {
		return 0, err
	}
	deadline := s.now().Add(-MediaTempTTL).Unix()
	count := 0
	for url, val := range all {
		var meta dto.MediaTempMetadata
		if err = json.Unmarshal([]byte(val), &meta); err != nil || meta.Object == "" {
			log.WarnContext(ctx, "invalid media meta format", "url", url)
			_ = s.temp.HDel(ctx, consts.MediaTempKey, url)
			continue
		}
		if meta.CreatedAt > deadline {
			continue
		}
		if err = s.storage.Delete(ctx, meta.Object); err != nil {
			log.ErrorContext(ctx, "failed to delete expired file from minio", "object", meta.Object, "err", err)
			continue
		}
		if err = s.temp.HDel(ctx, consts.MediaTempKey, url); err != nil {
			log.ErrorContext(ctx, "failed to remove temp media entry", "url", url, "err", err)
		}
		count++
	}
	return count, nil
}
