package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/feedscope/internal/audit/domain"
	"github.com/smallbiznis/feedscope/internal/audit/engine"
	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/config"
	"github.com/smallbiznis/feedscope/internal/feed"
	"github.com/smallbiznis/feedscope/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Defaults *config.AuditDefaultsHolder
	Metrics  *metrics.AuditMetrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	genID    *snowflake.Node
	defaults *config.AuditDefaultsHolder
	metrics  *metrics.AuditMetrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("audit.service"),
		repo:     p.Repo,
		genID:    p.GenID,
		defaults: p.Defaults,
		metrics:  p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	start := time.Now()

	language := strings.ToLower(strings.TrimSpace(req.Language))
	if language != "" && !config.IsSupportedLanguage(language) {
		return nil, domain.ErrInvalidLanguage
	}

	products, err := feed.ParseProducts(req.Products.Data, req.Products.Name)
	if err != nil {
		s.observeRun("invalid_feed", start, 0)
		return nil, fmt.Errorf("%w: products: %v", domain.ErrInvalidFeed, err)
	}

	var categories []catalogdomain.CategoryRecord
	categoryFileName := ""
	if req.Categories != nil {
		categories, err = feed.ParseCategories(req.Categories.Data, req.Categories.Name)
		if err != nil {
			s.observeRun("invalid_feed", start, 0)
			return nil, fmt.Errorf("%w: categories: %v", domain.ErrInvalidFeed, err)
		}
		categoryFileName = req.Categories.Name
	}

	defaults := s.defaults.Get()
	if language == "" {
		language = defaults.ExpectedLanguage
	}
	minDescription := req.MinDescriptionLength
	if minDescription <= 0 {
		minDescription = defaults.MinDescriptionLength
	}

	report := engine.Analyze(products, categories, engine.Options{
		ExpectedLanguage:     language,
		MinDescriptionLength: minDescription,
		NearDuplicateLimit:   defaults.NearDuplicateLimit,
	})

	run := &domain.AuditRun{
		ID:               s.genID.Generate().Int64(),
		ProductFileName:  req.Products.Name,
		CategoryFileName: categoryFileName,
		Language:         language,
		ProductCount:     report.ProductCount,
		CategoryCount:    len(categories),
		ErrorCount:       report.Stats.TotalErrors,
		WarningCount:     report.Stats.TotalWarnings,
		OverallScore:     report.Scores.Overall,
		CreatedAt:        report.GeneratedAt,
	}

	if req.Persist {
		payload, err := json.Marshal(report)
		if err != nil {
			return nil, err
		}
		run.Report = datatypes.JSON(payload)
		if err := s.repo.Create(ctx, s.db, run); err != nil {
			return nil, err
		}
	}

	s.observeRun("ok", start, report.ProductCount)
	for area, list := range report.Issues.All() {
		errs, warns := 0, 0
		for _, is := range list {
			if is.Severity == catalogdomain.SeverityError {
				errs++
			} else {
				warns++
			}
		}
		s.metrics.AddIssues(area, string(catalogdomain.SeverityError), errs)
		s.metrics.AddIssues(area, string(catalogdomain.SeverityWarning), warns)
	}

	s.log.Info("audit completed",
		zap.String("product_file", run.ProductFileName),
		zap.Int("products", run.ProductCount),
		zap.Int("categories", run.CategoryCount),
		zap.Int("errors", run.ErrorCount),
		zap.Int("warnings", run.WarningCount),
		zap.Int("score", run.OverallScore),
		zap.Bool("persisted", req.Persist),
		zap.Duration("took", time.Since(start)),
	)

	return &domain.Response{
		Summary: toSummary(run),
		Report:  report,
	}, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Summary, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	} else if limit > 250 {
		limit = 250
	}
	items, err := s.repo.List(ctx, s.db, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.Summary, 0, len(items))
	for i := range items {
		resp = append(resp, toSummary(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	runID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	run, err := s.repo.FindByID(ctx, s.db, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}

	var report catalogdomain.Report
	if len(run.Report) > 0 {
		if err := json.Unmarshal(run.Report, &report); err != nil {
			return nil, err
		}
	}
	return &domain.Response{
		Summary: toSummary(run),
		Report:  &report,
	}, nil
}

func (s *Service) observeRun(status string, start time.Time, productCount int) {
	s.metrics.ObserveRun(status, time.Since(start), productCount)
}

func toSummary(run *domain.AuditRun) domain.Summary {
	return domain.Summary{
		ID:               strconv.FormatInt(run.ID, 10),
		ProductFileName:  run.ProductFileName,
		CategoryFileName: run.CategoryFileName,
		Language:         run.Language,
		ProductCount:     run.ProductCount,
		CategoryCount:    run.CategoryCount,
		ErrorCount:       run.ErrorCount,
		WarningCount:     run.WarningCount,
		OverallScore:     run.OverallScore,
		CreatedAt:        run.CreatedAt,
	}
}
