package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type UploadFileRequest struct {
	File        []byte
	Filename    string
	ContentType string
}

type S3 struct {
	cli    *minio.Client
	bucket string
	base   string
}

func New(conf config.S3Config) *S3 {
	cli, err := minio.New(
		conf.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
			Secure: conf.UseSSL,
		},
	)
	if err != nil {
		zap.L().Fatal("Failed to create S3 client", zap.String("endpoint", conf.Endpoint), zap.Error(err))
	}

	ctx := context.Background()
	exists, err := cli.BucketExists(ctx, conf.Bucket)
	if err != nil {
		zap.L().Fatal("Failed to check S3 bucket", zap.String("bucket", conf.Bucket), zap.Error(err))
	}

	if !exists {
		if err = cli.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			zap.L().Fatal("Failed to create S3 bucket", zap.String("bucket", conf.Bucket), zap.Error(err))
		}
		zap.L().Info("S3 bucket has been created", zap.String("bucket", conf.Bucket))
	}

	return &S3{
		cli:    cli,
		bucket: conf.Bucket,
		base:   objectBase(conf),
	}
}

func objectBase(conf config.S3Config) string {
	scheme := "http"
	if conf.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, conf.Endpoint, conf.Bucket)
}

// UploadFile stores the object under req.Filename and returns its public URL.
func (s *S3) UploadFile(ctx context.Context, req *UploadFileRequest) (string, error) {
	const op = "s3.UploadFile.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := s.cli.PutObject(
		ctx,
		s.bucket,
		req.Filename,
		bytes.NewReader(req.File),
		int64(len(req.File)),
		minio.PutObjectOptions{ContentType: req.ContentType},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"Failed to upload file",
			zap.String("op", op),
			zap.String("filename", req.Filename),
			zap.Error(err),
		)
		return "", err
	}

	return s.base + "/" + req.Filename, nil
}
