package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

type stubExporter struct {
	got domain.WeeklyReport
	err error
}

func (e *stubExporter) ContentType() string { return "text/plain" }

func (e *stubExporter) Export(report domain.WeeklyReport) ([]byte, error) {
	e.got = report
	if e.err != nil {
		return nil, e.err
	}
	return []byte("ok"), nil
}

func TestReportService_ExportWeekly(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	seedAnalytics(t, repo)
	analytics := services.NewAnalyticsService(analyticsRepos(repo), testClock(), nil)

	t.Run("Success: Defaults to csv", func(t *testing.T) {
		csv := &stubExporter{}
		svc := services.NewReportService(analytics, map[string]services.ReportExporter{domain.FormatCSV: csv})

		out, err := svc.ExportWeekly(ctx, domain.Date{}, "")
		require.NoError(t, err)
		assert.Equal(t, "kanso-weekly-2026-03-09.csv", out.Filename)
		assert.Equal(t, "text/plain", out.ContentType)
		assert.Equal(t, []byte("ok"), out.Body)
		assert.Equal(t, 3, csv.got.HabitsCompleted)
	})

	t.Run("Error: Unknown format", func(t *testing.T) {
		svc := services.NewReportService(analytics, map[string]services.ReportExporter{})
		_, err := svc.ExportWeekly(ctx, domain.Date{}, "XLSX")
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("Error: Exporter failure is wrapped", func(t *testing.T) {
		boom := errors.New("font missing")
		svc := services.NewReportService(analytics, map[string]services.ReportExporter{domain.FormatPDF: &stubExporter{err: boom}})
		_, err := svc.ExportWeekly(ctx, today(), " PDF ")
		assert.ErrorIs(t, err, boom)
	})
}
