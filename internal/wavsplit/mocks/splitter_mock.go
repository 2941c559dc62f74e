package mocks

import (
	"context"

	"github.com/shiroemons/go-wavsplit/internal/wavsplit/models"
)

// MockSplitter はSplitterのモック実装です
type MockSplitter struct {
	Result         *models.SplitResult
	Error          error
	SplitCallCount int
	PlanCallCount  int

	InputFile      string
	OutputDir      string
	SegmentSeconds float64
}

// SplitAudio はモック実装です
func (m *MockSplitter) SplitAudio(ctx context.Context, inputFile, outputDir string, segmentSeconds float64) (*models.SplitResult, error) {
	m.SplitCallCount++
	m.record(inputFile, outputDir, segmentSeconds)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Result, nil
}

// PlanFile はモック実装です
func (m *MockSplitter) PlanFile(ctx context.Context, inputFile, outputDir string, segmentSeconds float64) (*models.SplitResult, error) {
	m.PlanCallCount++
	m.record(inputFile, outputDir, segmentSeconds)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Result, nil
}

func (m *MockSplitter) record(inputFile, outputDir string, segmentSeconds float64) {
	m.InputFile = inputFile
	m.OutputDir = outputDir
	m.SegmentSeconds = segmentSeconds
}
