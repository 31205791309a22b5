package scan

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/document"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/extract"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/ocr"
)

type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	engine  ocr.Engine
	repo    Repository
	storage Storage
}

func NewService(engine ocr.Engine, repo Repository, storage Storage) *Service {
	return &Service{engine: engine, repo: repo, storage: storage}
}

// ScanReport runs the full pipeline over one uploaded document:
// normalize -> recognize -> extract. Conversion and decoding failures
// abort with no partial record; missing fields come back as unknowns
// inside the record, never as errors.
func (s *Service) ScanReport(
	ctx context.Context,
	userID string,
	data []byte,
	contentType string,
	filename string,
) (extract.Record, error) {

	prepared, err := document.Normalize(data, contentType, filename)
	if err != nil {
		return nil, err
	}

	text, err := s.engine.Recognize(prepared)
	if err != nil {
		return nil, fmt.Errorf("text recognition failed: %w", err)
	}

	rec := extract.FromText(text)

	log.Printf("SCAN_DONE user=%s text_length=%d fields_found=%d",
		userID, len(text), rec.Known())

	s.archive(ctx, userID, data, contentType, filename, rec)

	return rec, nil
}

// History returns the caller's archived scans, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]ReportScan, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListByUser(ctx, userID)
}

// archive stores the original upload and the extraction outcome.
// Best effort: a failed archive never fails the scan itself.
func (s *Service) archive(
	ctx context.Context,
	userID string,
	data []byte,
	contentType string,
	filename string,
	rec extract.Record,
) {
	if s.storage == nil || s.repo == nil {
		return
	}

	key := fmt.Sprintf(
		"reports/%s/%s%s",
		userID,
		uuid.New().String(),
		strings.ToLower(filepath.Ext(filename)),
	)

	if _, err := s.storage.Upload(ctx, key, bytes.NewReader(data), contentType); err != nil {
		log.Printf("SCAN_ARCHIVE_FAILED user=%s err=%v", userID, err)
		return
	}

	err := s.repo.Save(ctx, &ReportScan{
		UserID:    userID,
		ObjectKey: key,
		Filename:  filename,
		Extracted: rec,
	})
	if err != nil {
		log.Printf("SCAN_HISTORY_FAILED user=%s err=%v", userID, err)
	}
}
