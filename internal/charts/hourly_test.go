package charts

import (
	"bytes"
	"testing"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderHourly(t *testing.T) {
	report, err := analytics.AnalyzeHourly([]analytics.HourlyBucket{
		{Hour: 8, TransactionCount: 12, PercentageOfTotal: 20},
		{Hour: 12, TransactionCount: 40, PercentageOfTotal: 66.67},
		{Hour: 18, TransactionCount: 8, PercentageOfTotal: 13.33},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := RenderHourly(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("expected PNG output, got prefix % x", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestRenderHourlyEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHourly(&buf, analytics.HourlyReport{}); err == nil {
		t.Error("expected error for empty report, got nil")
	}
}
