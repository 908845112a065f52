package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/newsroom/internal/common"
	sc "github.com/dmitrijs2005/newsroom/internal/server/config"
	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoDownloadPath is the API route prefix that redirects to a presigned
// download of a stored photo.
const PhotoDownloadPath = "/api/photos/"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// PhotoService hands out presigned S3 (MinIO) URLs so clients upload and
// download photos directly against object storage.
type PhotoService struct {
	config *sc.Config
}

func NewPhotoService(config *sc.Config) *PhotoService {
	return &PhotoService{config: config}
}

// GetRandomStorageKey returns a new date-partitioned object key.
func GetRandomStorageKey(d time.Time) string {
	return fmt.Sprintf("photos/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *PhotoService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *PhotoService) expiry() time.Duration {
	if s.config.PresignExpiry > 0 {
		return s.config.PresignExpiry
	}
	return 15 * time.Minute
}

// PresignUpload allocates a storage key and returns a presigned PUT for it.
// contentType, when set, must be an image type and is bound into the
// signature.
func (s *PhotoService) PresignUpload(ctx context.Context, contentType string) (*models.PhotoUpload, error) {
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: only image uploads are accepted", common.ErrValidation)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(time.Now().UTC())

	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(s.expiry()))
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	return &models.PhotoUpload{
		Key:         key,
		UploadURL:   req.URL,
		DownloadURL: PhotoDownloadPath + key,
	}, nil
}

// PresignDownload returns a short-lived GET URL for a stored photo.
func (s *PhotoService) PresignDownload(ctx context.Context, key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if !strings.HasPrefix(key, "photos/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: unknown photo key", common.ErrorNotFound)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("error creating s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expiry()))
	if err != nil {
		return "", fmt.Errorf("error presigning download: %w", err)
	}

	return req.URL, nil
}
