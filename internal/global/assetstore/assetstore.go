// Package assetstore 负责上传素材的落盘与引用解析
// 本地模式返回 /uploads/<name> 形式的稳定相对引用；配置了 S3 时直传对象存储
package assetstore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"capstone-showcase/config"
)

type Store struct {
	SaveDir string // 本地保存目录
	BaseURL string // 引用前缀，默认 /uploads

	s3 *s3Backend // 可选，配置了 bucket 时启用
}

var ins *Store

// Init 根据配置构建全局素材仓库
func Init() {
	cfg := config.Get()
	ins = &Store{
		SaveDir: cfg.Storage.UploadDir,
		BaseURL: strings.TrimRight(cfg.Storage.BaseURL, "/"),
	}
	if cfg.S3.Bucket != "" {
		ins.s3 = newS3Backend(cfg.S3)
	}
}

func Get() *Store {
	if ins == nil {
		Init()
	}
	return ins
}

// uniqueName 由上传文件名派生存储文件名：纳秒时间戳 + 清洗后的原名
// 同一文件多次上传各自生成新引用，不去重
func uniqueName(original string) string {
	base := filepath.Base(original)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		base = "file"
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), base)
}

// SaveFile 保存上传文件并返回可访问引用
func (s *Store) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	name := uniqueName(fileHeader.Filename)

	if s.s3 != nil {
		return s.s3.upload(name, file)
	}

	// 确保保存目录存在
	if err := os.MkdirAll(s.SaveDir, os.ModePerm); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.SaveDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return s.BaseURL + "/" + name, nil
}
