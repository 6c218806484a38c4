// Package avatar issues presigned S3 PUT URLs so browsers upload profile
// pictures directly to object storage.
package avatar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const presignExpiry = 15 * time.Minute

// Storage holds the object-storage settings a Service needs.
type Storage struct {
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	BaseEndpoint  string
	PublicBaseURL string
}

// Upload describes a presigned upload slot: where the client PUTs the bytes
// and the URL the finished object is served from.
type Upload struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

type putPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Service creates presigned upload URLs.
type Service struct {
	storage      Storage
	newPresigner func(ctx context.Context) (putPresigner, error)
	newID        func() string
}

// ServiceOption modifies the Service instance.
type ServiceOption func(*Service)

// WithIDFunc sets the object-key ID generator (primarily for testing)
func WithIDFunc(idFunc func() string) ServiceOption {
	return func(s *Service) {
		s.newID = idFunc
	}
}

func withPresignerFunc(fn func(ctx context.Context) (putPresigner, error)) ServiceOption {
	return func(s *Service) {
		s.newPresigner = fn
	}
}

// NewService initializes a Service with its required dependencies.
func NewService(storage Storage, options ...ServiceOption) (*Service, error) {
	if storage.Bucket == "" {
		return nil, errors.New("[NewService] storage bucket is required")
	}

	s := &Service{
		storage: storage,
		newID:   func() string { return uuid.New().String() },
	}
	s.newPresigner = s.getPresignClient
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

func (s *Service) getPresignClient(ctx context.Context) (putPresigner, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.storage.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.storage.AccessKey,
			s.storage.SecretKey,
			"",
		)))
	if err != nil {
		return nil, errors.Wrap(err, "[getPresignClient] load aws config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.storage.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.storage.BaseEndpoint)
		}
		o.UsePathStyle = s.storage.BaseEndpoint != ""
	})

	return s3.NewPresignClient(client), nil
}

// objectKey namespaces uploads per user so stale avatars can be swept later.
func (s *Service) objectKey(userID string) string {
	return fmt.Sprintf("avatars/%s/%s", userID, s.newID())
}

// PresignUpload returns a short-lived PUT URL for a new avatar object owned
// by userID.
func (s *Service) PresignUpload(ctx context.Context, userID, contentType string) (*Upload, error) {
	if userID == "" {
		return nil, errors.New("[PresignUpload] userID is required")
	}

	presignClient, err := s.newPresigner(ctx)
	if err != nil {
		return nil, err
	}

	key := s.objectKey(userID)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.storage.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := presignClient.PresignPutObject(ctx, input, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, errors.Wrap(err, "[PresignUpload] presign put object")
	}

	return &Upload{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: s.publicURL(key),
	}, nil
}

func (s *Service) publicURL(key string) string {
	if s.storage.PublicBaseURL != "" {
		return strings.TrimSuffix(s.storage.PublicBaseURL, "/") + "/" + key
	}
	if s.storage.BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.storage.BaseEndpoint, "/"), s.storage.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.storage.Bucket, s.storage.Region, key)
}
