package s3

import (
	"context"
	"fmt"
	"time"

	"delivery-ops-api-server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Signer issues presigned upload and download URLs for the proofs bucket.
// Files never pass through this server; clients PUT/GET against S3 directly.
type Signer struct {
	Presign *s3.PresignClient
	Bucket  string
}

func NewSigner(cfg config.S3Config) (*Signer, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(sdkConfig)

	return &Signer{
		Presign: s3.NewPresignClient(client),
		Bucket:  cfg.Bucket,
	}, nil
}

// SignUpload returns a presigned PUT URL for objectKey. The client must send
// the same Content-Type it was signed with.
func (s *Signer) SignUpload(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	req, err := s.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}

// SignDownload returns a presigned GET URL for objectKey.
func (s *Signer) SignDownload(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	req, err := s.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}
