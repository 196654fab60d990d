package config

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testS3Config() *S3Config {
	client := s3.New(s3.Options{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDTEST", "secret", ""),
	})
	return &S3Config{Client: client, BucketName: "previews", Region: "us-east-1"}
}

func TestPresignUpload(t *testing.T) {
	s := testS3Config()

	url, err := s.PresignUpload(context.Background(), "recipes/previews/a.jpg", "image/jpeg", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "previews")
	assert.Contains(t, url, "recipes/previews/a.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://previews.s3.us-east-1.amazonaws.com/recipes/x.png", testS3Config().PublicURL("recipes/x.png"))
}
