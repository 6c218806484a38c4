package config

import "github.com/jobatlas/jobatlas/avatar"

type Storage struct{}

var _ StorageConfig = Storage{}

// GetStorage collects the S3 settings for avatar uploads. An empty bucket
// disables the upload endpoint.
func (Storage) GetStorage() avatar.Storage {
	return avatar.Storage{
		Bucket:        GetEnv("S3_BUCKET", ""),
		Region:        GetEnv("S3_REGION", "us-east-1"),
		AccessKey:     GetEnv("S3_ACCESS_KEY", ""),
		SecretKey:     GetEnv("S3_SECRET_KEY", ""),
		BaseEndpoint:  GetEnv("S3_ENDPOINT", ""),
		PublicBaseURL: GetEnv("S3_PUBLIC_BASE_URL", ""),
	}
}
