package server

// Server groups the HTTP handlers of the status API.
type Server struct {
	StatusServer
	ReportServer
}

func NewServer(
	statusServer StatusServer,
	reportServer ReportServer,
) Server {
	return Server{
		StatusServer: statusServer,
		ReportServer: reportServer,
	}
}
