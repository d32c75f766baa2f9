// Package snapshot writes the published JSON files consumed by the
// rendering layer: the champion catalog array and the slug to guides map.
// The files are read only static data at serve time.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"raidbook/pkg/config"
	"raidbook/pkg/logger"
	"raidbook/pkg/models/champion"
	"raidbook/pkg/models/guide"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	ChampionsFile = "champions.json"
	GuidesFile    = "guides.json"
)

// Writer persists the snapshot files locally and optionally publishes them
// to the snapshot bucket.
type Writer struct {
	outDir string
}

// NewWriter creates a writer targeting the given directory.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir}
}

// WriteChampions writes the catalog array.
func (w *Writer) WriteChampions(catalog []*champion.Champion) error {
	return w.writeJSON(ChampionsFile, catalog)
}

// WriteGuides writes the slug to guides mapping.
func (w *Writer) WriteGuides(guides map[string][]guide.ChampionGuide) error {
	return w.writeJSON(GuidesFile, guides)
}

// writeJSON writes through a temporary file and renames, so a crashed run
// never leaves a half written snapshot behind.
func (w *Writer) writeJSON(name string, payload any) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("couldn't create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't encode %s: %w", name, err)
	}

	target := filepath.Join(w.outDir, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("couldn't write %s: %w", tmp, err)
	}

	return os.Rename(tmp, target)
}

// Publish uploads both snapshot files to the configured bucket.
func (w *Writer) Publish(ctx context.Context) error {
	client := logger.NewBucketClient()

	for _, name := range []string{ChampionsFile, GuidesFile} {
		data, err := os.ReadFile(filepath.Join(w.outDir, name))
		if err != nil {
			return fmt.Errorf("couldn't read %s for upload: %w", name, err)
		}

		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(config.Bucket.SnapshotBucket),
			Key:         aws.String(name),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return fmt.Errorf("failed to upload %s to S3 bucket: %w", name, err)
		}
	}

	return nil
}
