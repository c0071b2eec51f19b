package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/feedscope/internal/config"
	"github.com/smallbiznis/feedscope/internal/observability"
	obsmiddleware "github.com/smallbiznis/feedscope/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/feedscope/internal/observability/metrics"

	auditdomain "github.com/smallbiznis/feedscope/internal/audit/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	log      *zap.Logger
	auditSvc auditdomain.Service
}

type ServerParams struct {
	fx.In

	Gin      *gin.Engine
	Cfg      config.Config
	Log      *zap.Logger
	AuditSvc auditdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:   p.Gin,
		cfg:      p.Cfg,
		log:      p.Log.Named("server"),
		auditSvc: p.AuditSvc,
	}
}

func (s *Server) RegisterAPIRoutes() {
	v1 := s.engine.Group("/v1")
	{
		v1.POST("/audits", s.CreateAudit)
		v1.GET("/audits", s.ListAudits)
		v1.GET("/audits/:id", s.GetAudit)
	}
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
