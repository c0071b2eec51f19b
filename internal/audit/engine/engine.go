// Package engine runs the full audit: duplicate detection plus the rule
// analyzers over canonical records, then scoring and report assembly.
// Analyze is a pure function of its inputs (timestamp excepted): it
// never mutates the records, performs no I/O and keeps no state between
// calls.
package engine

import (
	"sync"
	"time"

	"github.com/smallbiznis/feedscope/internal/analyzer"
	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/duplicate"
	"github.com/smallbiznis/feedscope/internal/scoring"
	"github.com/smallbiznis/feedscope/internal/textutil"
	"go.uber.org/zap"
)

// Options control an audit run. Zero values fall back to defaults.
type Options struct {
	ExpectedLanguage     string
	MinDescriptionLength int
	NearDuplicateLimit   int
	Now                  time.Time
}

const DefaultMinDescriptionLength = 100

func (o Options) withDefaults() Options {
	if o.MinDescriptionLength <= 0 {
		o.MinDescriptionLength = DefaultMinDescriptionLength
	}
	if o.NearDuplicateLimit <= 0 {
		o.NearDuplicateLimit = duplicate.DefaultNearLimit
	}
	if o.Now.IsZero() {
		o.Now = time.Now().UTC()
	}
	return o
}

// Analyze audits the catalog and assembles the immutable report. The
// duplicate engine and the analyzers have no mutual data dependency and
// run one task each; a panic in one pass is contained at its slot so the
// remaining findings still assemble into a partial report.
func Analyze(products []catalogdomain.ProductRecord, categories []catalogdomain.CategoryRecord, opts Options) *catalogdomain.Report {
	opts = opts.withDefaults()
	ctx := analyzer.Context{
		ExpectedLanguage:     opts.ExpectedLanguage,
		MinDescriptionLength: opts.MinDescriptionLength,
		Now:                  opts.Now,
	}

	var (
		issues catalogdomain.Issues
		dup    duplicate.Result
		wg     sync.WaitGroup
	)

	run := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					zap.L().Error("analyzer failed",
						zap.String("analyzer", name),
						zap.Any("panic", r),
					)
				}
			}()
			fn()
		}()
	}

	run("duplicates", func() { dup = duplicate.Detect(products, opts.NearDuplicateLimit) })
	run("completeness", func() { issues.Completeness = analyzer.Completeness(products, ctx) })
	run("quality", func() { issues.Quality = analyzer.Quality(products, ctx) })
	run("variants", func() { issues.Variants = analyzer.Variants(products) })
	run("stock", func() { issues.Stock = analyzer.Stock(products, ctx) })
	run("business", func() { issues.Business = analyzer.Business(products, ctx) })
	run("seo", func() { issues.SEO = analyzer.SEO(products) })
	run("categories", func() {
		structure := analyzer.Categories(products, categories)
		placement := analyzer.Categorization(products, categories)
		issues.Categories = append(structure, placement...)
	})
	wg.Wait()

	issues.Duplicates = dup.Issues

	report := &catalogdomain.Report{
		ProductCount:    len(products),
		GeneratedAt:     opts.Now,
		Issues:          issues,
		DuplicateGroups: dup.Groups,
		Scores:          scoring.Compute(issues, len(products)),
		Stats:           buildStats(products, categories, issues, dup),
	}
	return report
}

func buildStats(products []catalogdomain.ProductRecord, categories []catalogdomain.CategoryRecord, issues catalogdomain.Issues, dup duplicate.Result) catalogdomain.Stats {
	stats := catalogdomain.Stats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		DuplicateGroups: len(dup.Groups),
		IssuesByArea:    make(map[string]int),
		Languages:       make(map[string]int),
	}

	for _, p := range products {
		if p.IsVariant() {
			stats.TotalVariants++
		}
		if p.Description != "" {
			stats.Languages[textutil.DetectLanguage(p.Description)]++
		}
	}

	for area, list := range issues.All() {
		stats.IssuesByArea[area] = len(list)
		for _, is := range list {
			if is.Severity == catalogdomain.SeverityError {
				stats.TotalErrors++
			} else {
				stats.TotalWarnings++
			}
		}
	}
	return stats
}
