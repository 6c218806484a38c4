package avatar

import (
	"context"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://minio.test/upload?sig=abc", Method: "PUT"}, nil
}

func newTestService(t *testing.T, storage Storage, fake *fakePresigner) *Service {
	t.Helper()
	svc, err := NewService(storage,
		WithIDFunc(func() string { return "fixed-id" }),
		withPresignerFunc(func(context.Context) (putPresigner, error) { return fake, nil }),
	)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresBucket(t *testing.T) {
	_, err := NewService(Storage{})
	require.Error(t, err)
}

func TestPresignUpload(t *testing.T) {
	ctx := context.Background()
	storage := Storage{
		Bucket:       "jobatlas",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
	}

	t.Run("key is namespaced by user", func(t *testing.T) {
		fake := &fakePresigner{}
		svc := newTestService(t, storage, fake)

		up, err := svc.PresignUpload(ctx, "user-42", "image/png")
		require.NoError(t, err)
		require.Equal(t, "avatars/user-42/fixed-id", up.Key)
		require.Equal(t, "https://minio.test/upload?sig=abc", up.UploadURL)
		require.Equal(t, "jobatlas", *fake.lastInput.Bucket)
		require.Equal(t, "image/png", *fake.lastInput.ContentType)
	})

	t.Run("public URL uses the endpoint when no CDN base is set", func(t *testing.T) {
		svc := newTestService(t, storage, &fakePresigner{})

		up, err := svc.PresignUpload(ctx, "user-42", "")
		require.NoError(t, err)
		require.Equal(t, "http://127.0.0.1:9000/jobatlas/avatars/user-42/fixed-id", up.PublicURL)
	})

	t.Run("public URL prefers the configured CDN base", func(t *testing.T) {
		withCDN := storage
		withCDN.PublicBaseURL = "https://cdn.jobatlas.example/"
		svc := newTestService(t, withCDN, &fakePresigner{})

		up, err := svc.PresignUpload(ctx, "user-42", "")
		require.NoError(t, err)
		require.Equal(t, "https://cdn.jobatlas.example/avatars/user-42/fixed-id", up.PublicURL)
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		svc := newTestService(t, storage, &fakePresigner{})
		_, err := svc.PresignUpload(ctx, "", "")
		require.Error(t, err)
	})

	t.Run("presign failure is surfaced", func(t *testing.T) {
		svc := newTestService(t, storage, &fakePresigner{err: errors.New("boom")})
		_, err := svc.PresignUpload(ctx, "user-42", "")
		require.Error(t, err)
	})
}
