package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/newsroom/internal/common"
	sc "github.com/dmitrijs2005/newsroom/internal/server/config"
)

func newPhotoSvc() *PhotoService {
	return NewPhotoService(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "photos",
		PresignExpiry:  15 * time.Minute,
	})
}

// stubS3 replaces the AWS constructors with offline fakes for the duration
// of the test.
func stubS3(t *testing.T) {
	t.Helper()
	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
}

func Test_getPresignClient_SuccessAndError(t *testing.T) {
	svc := newPhotoSvc()
	stubS3(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		if len(optFns) == 0 {
			t.Fatalf("expected config options")
		}
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	pc, err := svc.getPresignClient(context.Background())
	if err != nil {
		t.Fatalf("getPresignClient err: %v", err)
	}
	if pc == nil {
		t.Fatalf("nil presign client")
	}
	if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %v", opts.BaseEndpoint)
	}
	if !opts.UsePathStyle {
		t.Fatalf("path-style addressing expected for MinIO")
	}

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	pc, err = svc.getPresignClient(context.Background())
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("expected load-fail, got %v (pc=%v)", err, pc)
	}
}

func TestPresignUpload_Success(t *testing.T) {
	svc := newPhotoSvc()
	stubS3(t)

	var gotIn *s3.PutObjectInput
	var gotOpts s3.PresignOptions
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotIn = in
		for _, fn := range optFns {
			fn(&gotOpts)
		}
		return &v4.PresignedHTTPRequest{URL: "http://minio/put?sig=1"}, nil
	}

	up, err := svc.PresignUpload(context.Background(), "image/png")
	if err != nil {
		t.Fatalf("PresignUpload error: %v", err)
	}
	if !regexp.MustCompile(`^photos/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}$`).MatchString(up.Key) {
		t.Fatalf("unexpected key: %q", up.Key)
	}
	if up.UploadURL != "http://minio/put?sig=1" {
		t.Fatalf("unexpected upload url: %q", up.UploadURL)
	}
	if up.DownloadURL != PhotoDownloadPath+up.Key {
		t.Fatalf("unexpected download url: %q", up.DownloadURL)
	}
	if *gotIn.Bucket != "photos" || *gotIn.Key != up.Key || aws.ToString(gotIn.ContentType) != "image/png" {
		t.Fatalf("unexpected put input: %+v", gotIn)
	}
	if gotOpts.Expires != 15*time.Minute {
		t.Fatalf("unexpected expiry: %v", gotOpts.Expires)
	}
}

func TestPresignUpload_RejectsNonImages(t *testing.T) {
	svc := newPhotoSvc()

	_, err := svc.PresignUpload(context.Background(), "application/pdf")
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestPresignUpload_ErrorFromPresign(t *testing.T) {
	svc := newPhotoSvc()
	stubS3(t)

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-put-fail")
	}

	_, err := svc.PresignUpload(context.Background(), "")
	if err == nil || !strings.Contains(err.Error(), "presign-put-fail") {
		t.Fatalf("want presign-put-fail, got %v", err)
	}
}

func TestPresignUpload_ErrorFromClientFactory(t *testing.T) {
	svc := newPhotoSvc()
	stubS3(t)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := svc.PresignUpload(context.Background(), "")
	if err == nil || !strings.Contains(err.Error(), "load-fail") {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestPresignDownload(t *testing.T) {
	svc := newPhotoSvc()
	stubS3(t)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://minio/get/" + *in.Key}, nil
	}

	url, err := svc.PresignDownload(context.Background(), "/photos/2025/01/02/abc")
	if err != nil {
		t.Fatalf("PresignDownload error: %v", err)
	}
	if url != "http://minio/get/photos/2025/01/02/abc" {
		t.Fatalf("unexpected url: %q", url)
	}

	for _, bad := range []string{"secrets/key", "photos/../secrets"} {
		if _, err := svc.PresignDownload(context.Background(), bad); !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("key %q: want ErrorNotFound, got %v", bad, err)
		}
	}
}

func TestGetRandomStorageKey_IsUnique(t *testing.T) {
	d := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	a, b := GetRandomStorageKey(d), GetRandomStorageKey(d)
	if a == b || !strings.HasPrefix(a, "photos/2025/01/02/") {
		t.Fatalf("unexpected keys: %q %q", a, b)
	}
}
