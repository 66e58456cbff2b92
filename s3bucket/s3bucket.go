package s3bucket

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const workbookMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// S3Bucket uploads timestamped copies of the workbook after successful
// writes. The spreadsheet file stays the system of record; the bucket
// only keeps recoverable history of it.
type S3Bucket struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Bucket(region string, bucket string) (*S3Bucket, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &S3Bucket{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// BackupWorkbook uploads the workbook file under a timestamped snapshot
// key and returns the key.
func (bucket *S3Bucket) BackupWorkbook(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read workbook for backup: %w", err)
	}

	key := fmt.Sprintf("snapshots/%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	mediaType := workbookMediaType
	_, err = bucket.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket.bucket,
		Key:         &key,
		Body:        bytes.NewReader(content),
		ContentType: &mediaType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload workbook snapshot: %w", err)
	}
	return key, nil
}

// ListSnapshots returns the snapshot keys currently in the bucket.
func (bucket *S3Bucket) ListSnapshots(ctx context.Context) ([]string, error) {
	var keys []string
	prefix := "snapshots/"
	paginator := s3.NewListObjectsV2Paginator(bucket.client, &s3.ListObjectsV2Input{
		Bucket: &bucket.bucket,
		Prefix: &prefix,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
	}
	return keys, nil
}
