package assetstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	appconfig "capstone-showcase/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Backend struct {
	cfg    appconfig.S3
	client *s3.Client
}

func newS3Backend(cfg appconfig.S3) *s3Backend {
	return &s3Backend{cfg: cfg}
}

func (b *s3Backend) init(ctx context.Context) error {
	if b.client != nil {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(b.cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(b.cfg.AccessKey, b.cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	b.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if b.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(b.cfg.Endpoint)
		}
		o.UsePathStyle = b.cfg.UsePathStyle
	})
	return nil
}

func (b *s3Backend) key(name string) string {
	key := path.Join(strings.Trim(b.cfg.Prefix, "/"), name)
	return strings.TrimLeft(key, "/")
}

// upload 服务端直传 S3，返回访问 URL
func (b *s3Backend) upload(name string, body io.Reader) (string, error) {
	ctx := context.Background()
	if err := b.init(ctx); err != nil {
		return "", err
	}

	key := b.key(name)
	uploader := manager.NewUploader(b.client)
	if _, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.cfg.Bucket),
		Key:    aws.String(key),
		Body:   body,
	}); err != nil {
		return "", err
	}

	return strings.TrimRight(b.cfg.BaseURL, "/") + "/" + key, nil
}

// PresignedUploadRequest 预签名上传请求参数
type PresignedUploadRequest struct {
	Filename    string // 原始文件名
	ContentType string // 文件 MIME 类型
	ExpiresIn   int64  // 过期时间（秒），默认 15 分钟
}

// PresignedUploadResponse 预签名上传响应
type PresignedUploadResponse struct {
	UploadURL string    `json:"upload_url"` // 预签名上传 URL
	FileKey   string    `json:"file_key"`   // 对象存储中的文件 key
	FileURL   string    `json:"file_url"`   // 上传成功后的访问 URL
	ExpiresAt time.Time `json:"expires_at"` // 过期时间
	Method    string    `json:"method"`     // HTTP 方法（通常是 PUT）
}

// PresignedUpload 生成预签名上传 URL
// 允许前端直接上传文件到 S3，无需经过后端中转；未配置 S3 时返回错误
func (s *Store) PresignedUpload(ctx context.Context, req PresignedUploadRequest) (*PresignedUploadResponse, error) {
	if s.s3 == nil {
		return nil, fmt.Errorf("S3 未配置")
	}
	if req.Filename == "" {
		return nil, fmt.Errorf("文件名不能为空")
	}
	if err := s.s3.init(ctx); err != nil {
		return nil, err
	}

	if req.ExpiresIn <= 0 {
		req.ExpiresIn = 900 // 15 分钟
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := s.s3.key(uniqueName(req.Filename))

	presignClient := s3.NewPresignClient(s.s3.client)
	presignedReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(req.ExpiresIn) * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("生成预签名 URL 失败: %w", err)
	}

	return &PresignedUploadResponse{
		UploadURL: presignedReq.URL,
		FileKey:   key,
		FileURL:   strings.TrimRight(s.s3.cfg.BaseURL, "/") + "/" + key,
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		Method:    presignedReq.Method,
	}, nil
}
