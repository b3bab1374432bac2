// Package httpapi exposes the portal's REST surface with gin: registration,
// login and token refresh, the practitioner roster, and the medical file
// workflows (listing, upload intake, sharing, integrity verification,
// downloads).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/healophile/internal/logging"
	"github.com/dmitrijs2005/healophile/internal/server/services"
	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	address   string
	users     *services.UserService
	records   *services.RecordService
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, rs *services.RecordService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		records:   rs,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router builds the gin engine with all routes attached.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)
	api.POST("/token/refresh", s.handleRefreshToken)

	authed := api.Group("")
	authed.Use(s.accessTokenMiddleware())
	authed.GET("/doctors", s.handleRoster)
	authed.GET("/files", s.handleListFiles)
	authed.POST("/files", s.requireRole(patientOnly), s.handleUpload)
	authed.POST("/files/:id/share", s.requireRole(patientOnly), s.handleShare)
	authed.POST("/files/verify", s.handleVerify)
	authed.GET("/files/:id/url", s.handleDownloadURL)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
