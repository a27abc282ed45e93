package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/mock"
	unslog "github.com/danespinosa/unsublink/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs stage link and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &unsublink.ExtractionResult{
			Link:    "https://example.com/u",
			Anchors: []string{"https://example.com/u", "https://example.com/home"},
			Stage:   unsublink.StageHeuristic,
			Valid:   true,
		}
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, body string) *unsublink.ExtractionResult {
				return want
			},
		}

		got := unslog.NewLoggingExtractor(inner, logger).Extract(context.Background(), "<p>hi</p>")

		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "stage=heuristic")
		assert.Contains(t, output, "link=https://example.com/u")
		assert.Contains(t, output, "valid=true")
		assert.Contains(t, output, "anchors=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs none stage when nothing found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, body string) *unsublink.ExtractionResult {
				return &unsublink.ExtractionResult{}
			},
		}

		unslog.NewLoggingExtractor(inner, logger).Extract(context.Background(), "")

		output := buf.String()
		assert.Contains(t, output, "stage=(none)")
		assert.Contains(t, output, "valid=false")
	})

	t.Run("tolerates nil result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, body string) *unsublink.ExtractionResult {
				return nil
			},
		}

		var got *unsublink.ExtractionResult
		assert.NotPanics(t, func() {
			got = unslog.NewLoggingExtractor(inner, logger).Extract(context.Background(), "body")
		})

		assert.Nil(t, got)
		assert.Contains(t, buf.String(), "extract returned no result")
	})
}
