package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"hermes/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	FormatJSON = "json"
	FormatBSON = "bson"
)

// Source loads a dataset as documents. *csv.Catalog satisfies it.
type Source interface {
	Documents(dataset models.Dataset) ([]interface{}, error)
}

type Service struct {
	source Source
	now    func() time.Time
}

func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// Export writes one dataset to outputDir as JSON lines or concatenated BSON
// documents, validates the result and returns the file path and document
// count. A failed export leaves no file behind.
func (s *Service) Export(dataset models.Dataset, outputDir, format string) (string, int, error) {
	if format != FormatJSON && format != FormatBSON {
		return "", 0, fmt.Errorf("invalid format: %s. Use 'bson' or 'json'", format)
	}

	docs, err := s.source.Documents(dataset)
	if err != nil {
		return "", 0, fmt.Errorf("failed to load %s: %w", dataset, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := s.now().Format("20060102_150405")
	filename := fmt.Sprintf("snapshot_%s_%s.%s", dataset, timestamp, format)
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create snapshot file: %w", err)
	}

	if err := writeDocuments(file, docs, format); err != nil {
		file.Close()
		os.Remove(path)
		return "", 0, fmt.Errorf("snapshot failed: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("snapshot failed: %w", err)
	}

	// An empty dataset legitimately produces an empty file.
	if len(docs) > 0 {
		if err := Validate(path, format); err != nil {
			os.Remove(path)
			return "", 0, fmt.Errorf("snapshot validation failed: %w", err)
		}
	}

	return path, len(docs), nil
}

// ExportAll exports every dataset, stopping at the first failure.
func (s *Service) ExportAll(outputDir, format string) ([]string, error) {
	var files []string
	for _, dataset := range models.Datasets() {
		path, _, err := s.Export(dataset, outputDir, format)
		if err != nil {
			return files, fmt.Errorf("failed to snapshot %s: %w", dataset, err)
		}
		files = append(files, path)
	}
	return files, nil
}

func writeDocuments(w io.Writer, docs []interface{}, format string) error {
	for _, doc := range docs {
		var (
			data []byte
			err  error
		)
		if format == FormatJSON {
			data, err = json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal to JSON: %w", err)
			}
			data = append(data, '\n')
		} else {
			data, err = bson.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal to BSON: %w", err)
			}
		}

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write snapshot data: %w", err)
		}
	}
	return nil
}

// Validate checks that a snapshot file exists, is not empty and carries the
// extension of expectedFormat.
func Validate(filename, expectedFormat string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("cannot open snapshot file: %w", err)
	}

	if info.Size() == 0 {
		return fmt.Errorf("snapshot file is empty")
	}

	extension := filepath.Ext(filename)
	if expectedFormat == FormatJSON && extension != ".json" {
		return fmt.Errorf("expected JSON file but got %s", extension)
	}
	if expectedFormat == FormatBSON && extension != ".bson" {
		return fmt.Errorf("expected BSON file but got %s", extension)
	}

	return nil
}
