package output

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"
)

// S3Config holds the connection settings for an S3 compatible object store
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Empty selects the AWS endpoint for Region
	AccessKey string // Empty falls back to the default credential chain
	SecretKey string
	Prefix    string // Prepended to every object key
}

// S3Sink uploads the encoded frame to a bucket
type S3Sink struct {
	client s3iface.S3API
	bucket string
	key    string
	format imaging.Format
}

// NewS3Sink creates an uploader storing the frame under cfg.Prefix/key.
// The key extension selects the encoding.
func NewS3Sink(cfg S3Config, key string) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}
	format, err := formatFor(key)
	if err != nil {
		return nil, err
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("output: creating S3 session: %w", err)
	}

	return newS3Sink(s3.New(sess), cfg.Bucket, path.Join(cfg.Prefix, key), format), nil
}

func newS3Sink(client s3iface.S3API, bucket, key string, format imaging.Format) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, key: key, format: format}
}

// Key returns the full object key
func (s *S3Sink) Key() string {
	return s.key
}

func (s *S3Sink) Write(ctx context.Context, width, height int, pix []byte) error {
	img, err := ToImage(width, height, pix)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, s.format, imaging.JPEGQuality(DefaultJPEGQuality)); err != nil {
		return fmt.Errorf("output: encoding %s: %w", s.key, err)
	}

	size := int64(buf.Len())
	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType(s.format)),
	})
	if err != nil {
		return fmt.Errorf("output: uploading s3://%s/%s: %w", s.bucket, s.key, err)
	}

	logger.Infof("uploaded s3://%s/%s (%d bytes)", s.bucket, s.key, size)
	return nil
}

func contentType(format imaging.Format) string {
	switch format {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	}
	return "application/octet-stream"
}
