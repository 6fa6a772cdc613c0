package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

type ReportExporter interface {
	ContentType() string
	Export(report domain.WeeklyReport) ([]byte, error)
}

type ReportService struct {
	analytics *AnalyticsService
	exporters map[string]ReportExporter
}

// NewReportService registers exporters under their format name, e.g. "csv".
func NewReportService(analytics *AnalyticsService, exporters map[string]ReportExporter) *ReportService {
	return &ReportService{
		analytics: analytics,
		exporters: exporters,
	}
}

type ExportedReport struct {
	Filename    string
	ContentType string
	Body        []byte
}

func (s *ReportService) ExportWeekly(ctx context.Context, day domain.Date, format string) (*ExportedReport, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = domain.FormatCSV
	}
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	report, err := s.analytics.Weekly(ctx, day)
	if err != nil {
		return nil, err
	}

	body, err := exporter.Export(*report)
	if err != nil {
		return nil, fmt.Errorf("report service: failed to export %s: %w", format, err)
	}

	return &ExportedReport{
		Filename:    fmt.Sprintf("kanso-weekly-%s.%s", report.EndDate, format),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}
