package service

import (
	"Verity/config"
	"Verity/pkg/response"
	"Verity/types"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadResponse, error)
}

type OssService struct {
	Client *oss.Client
	Config *config.Config
}

func NewOssService(client *oss.Client, conf *config.Config) *OssService {
	return &OssService{Client: client, Config: conf}
}

// UploadImage 帖子配图上传
// 未配置 OSS 时降级返回 503，不算致命错误
func (s *OssService) UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadResponse, error) {
	if s.Client == nil || !s.Config.Oss.Enabled() {
		return nil, response.NewError(http.StatusServiceUnavailable, "image upload is not configured")
	}
	if header == nil {
		return nil, response.NewError(http.StatusBadRequest, "missing image")
	}
	const maxSize = 10 << 20
	if header.Size > maxSize {
		return nil, response.NewError(http.StatusBadRequest, "image size exceeds 10MB")
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		width  int
		height int
	)
	if seeker, ok := file.(io.Seeker); ok {
		cfg, format, err := image.DecodeConfig(file)
		if err == nil {
			width = cfg.Width
			height = cfg.Height
		}
		allowed := map[string]bool{
			"jpeg": true,
			"png":  true,
			"webp": true,
			"gif":  true,
		}
		if !allowed[strings.ToLower(format)] {
			return nil, response.NewError(http.StatusBadRequest, "unsupported image format")
		}
		seeker.Seek(0, 0) // 重置指针
	}

	objectKey := fmt.Sprintf("post/%s/%s%s", time.Now().Format("2006/01/02"), uuid.NewString(),
		path.Ext(header.Filename),
	)
	_, err = s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Config.Oss.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   file,
	})
	if err != nil {
		return nil, err
	}

	return &types.UploadResponse{
		Key: fmt.Sprintf("https://%s.%s/%s",
			s.Config.Oss.Bucket, s.Config.Oss.Endpoint,
			objectKey),
		Width:  width,
		Height: height,
	}, nil
}
