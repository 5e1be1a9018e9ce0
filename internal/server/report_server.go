package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"ahoy_market/internal/infrastructure/report"
	"ahoy_market/pkg/httpx/reply"
	"ahoy_market/pkg/httpx/req"
	"ahoy_market/pkg/rest"
)

type reportWriter interface {
	WriteReport(ctx context.Context, kind report.Kind) (string, error)
}

type ReportServer struct {
	reports reportWriter
}

func NewReportServer(reports reportWriter) ReportServer {
	return ReportServer{
		reports: reports,
	}
}

// postV1Reports writes a report synchronously and returns its file name.
func (s ReportServer) postV1Reports(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ReportRequest
	if err := req.Read(r, &request); err != nil {
		return err
	}

	file, err := s.reports.WriteReport(ctx, report.Kind(request.Kind))
	if err != nil {
		return fmt.Errorf("reports.WriteReport: %w", err)
	}

	logger(ctx).Info("report requested", slog.String("kind", request.Kind), slog.String("file", file))

	reply.JSON(ctx, w, http.StatusCreated, rest.Report{
		Kind: request.Kind,
		File: file,
	})

	return nil
}
