package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores images directly in an S3 bucket, for shops running their
// own relay instead of the shared asset host.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
	Region string
}

// NewS3Uploader reads bucket/region from the environment. An empty bucket
// yields a disabled uploader rather than an error so callers can probe with
// Enabled().
func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	bucket := os.Getenv("ASSET_S3_BUCKET")
	if bucket == "" {
		return &S3Uploader{}, nil
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Uploader{Client: s3.NewFromConfig(cfg), Bucket: bucket, Region: region}, nil
}

func (u *S3Uploader) Enabled() bool { return u != nil && u.Client != nil && u.Bucket != "" }

func (u *S3Uploader) Upload(ctx context.Context, name, data string) (string, error) {
	if !u.Enabled() {
		return "", fmt.Errorf("s3 uploader not configured")
	}
	raw, err := base64.StdEncoding.DecodeString(StripDataURI(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	contentType := http.DetectContentType(raw)
	key := objectKey(name)
	_, err = u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(raw),
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, u.Region, key), nil
}

func objectKey(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if name == "" {
		name = "imagen"
	}
	return fmt.Sprintf("cotizaciones/%s_%s", time.Now().UTC().Format("20060102T150405Z"), name)
}
