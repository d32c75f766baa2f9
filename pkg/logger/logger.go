package logger

import (
	"context"
	"fmt"
	"os"
	appConfig "raidbook/pkg/config"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Logger that accumulates a pipeline run log on a temporary file.
// The file is uploaded to the bucket at the end of the run.
type RunLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
	echo     bool
}

// Create the log instance with a temporary file.
// If echo is true, every line is also written to stdout.
func CreateLogger(echo bool) (*RunLogger, error) {
	f, err := os.CreateTemp("", "raidbook-*.log")
	if err != nil {
		return nil, err
	}

	return &RunLogger{
		logFile:  f,
		filePath: f.Name(),
		echo:     echo,
	}, nil
}

// Log a simple info.
func (l *RunLogger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Log a error.
func (l *RunLogger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// Write a empty line.
func (l *RunLogger) EmptyLine() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logFile.WriteString("\n")
}

// Write something to the logger.
func (l *RunLogger) write(infoType string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
	if l.echo {
		os.Stdout.WriteString(line)
	}
}

// Clean the file contents.
func (l *RunLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)
	l.logFile.Seek(0, 0)
}

// Upload the run log to the configured bucket and clean the file.
func (l *RunLogger) UploadToS3Bucket(objectKey string) error {
	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	s3Client := NewBucketClient()

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(appConfig.Bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	// Clean the file after sending.
	l.CleanFile()

	return nil
}

// NewBucketClient creates a S3 client from the bucket configuration.
// Shared with the snapshot publisher.
func NewBucketClient() *s3.Client {
	cfg := aws.Config{
		Region: appConfig.Bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				appConfig.Bucket.AccessKey,
				appConfig.Bucket.AccessSecret,
				"",
			),
		),
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(appConfig.Bucket.Endpoint)
	})
}
