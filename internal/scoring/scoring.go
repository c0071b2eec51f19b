// Package scoring turns issue counts into the eight 0-100 sub-scores and
// the weighted overall score.
package scoring

import (
	"math"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

type penalty struct {
	err  int
	warn int
}

// Fixed per-issue penalties per dimension.
var fixedPenalties = map[string]penalty{
	catalogdomain.DimensionCompleteness: {err: 5, warn: 2},
	catalogdomain.DimensionBusiness:     {err: 10, warn: 3},
	catalogdomain.DimensionStock:        {err: 10, warn: 3},
	catalogdomain.DimensionCategories:   {err: 5, warn: 2},
	catalogdomain.DimensionSEO:          {err: 8, warn: 2},
	catalogdomain.DimensionVariants:     {err: 5, warn: 2},
}

// Weights of the overall score; they sum to 1.0.
var weights = map[string]float64{
	catalogdomain.DimensionCompleteness: 0.20,
	catalogdomain.DimensionQuality:      0.15,
	catalogdomain.DimensionDuplicates:   0.15,
	catalogdomain.DimensionVariants:     0.05,
	catalogdomain.DimensionStock:        0.10,
	catalogdomain.DimensionCategories:   0.10,
	catalogdomain.DimensionBusiness:     0.15,
	catalogdomain.DimensionSEO:          0.10,
}

// Compute derives the sub-scores from the per-dimension issue lists.
// Quality and uniqueness scale with catalog size: their issue volume
// grows with product count, so a defect rate drives the score; the
// other dimensions charge a fixed penalty per issue. Everything is
// floored at 0 and capped at 100.
func Compute(issues catalogdomain.Issues, productCount int) catalogdomain.Scores {
	scores := catalogdomain.Scores{
		Completeness: fixedScore(catalogdomain.DimensionCompleteness, issues.Completeness),
		Quality:      scaledScore(issues.Quality, productCount),
		Uniqueness:   scaledScore(issues.Duplicates, productCount),
		Variants:     fixedScore(catalogdomain.DimensionVariants, issues.Variants),
		Stock:        fixedScore(catalogdomain.DimensionStock, issues.Stock),
		Categories:   fixedScore(catalogdomain.DimensionCategories, issues.Categories),
		Business:     fixedScore(catalogdomain.DimensionBusiness, issues.Business),
		SEO:          fixedScore(catalogdomain.DimensionSEO, issues.SEO),
	}

	overall := float64(scores.Completeness)*weights[catalogdomain.DimensionCompleteness] +
		float64(scores.Quality)*weights[catalogdomain.DimensionQuality] +
		float64(scores.Uniqueness)*weights[catalogdomain.DimensionDuplicates] +
		float64(scores.Variants)*weights[catalogdomain.DimensionVariants] +
		float64(scores.Stock)*weights[catalogdomain.DimensionStock] +
		float64(scores.Categories)*weights[catalogdomain.DimensionCategories] +
		float64(scores.Business)*weights[catalogdomain.DimensionBusiness] +
		float64(scores.SEO)*weights[catalogdomain.DimensionSEO]
	scores.Overall = clamp(int(math.Round(overall)))

	return scores
}

func fixedScore(dimension string, issues []catalogdomain.Issue) int {
	p := fixedPenalties[dimension]
	errors, warnings := countBySeverity(issues)
	return clamp(100 - errors*p.err - warnings*p.warn)
}

// scaledScore charges by defect rate: two points of rate per error, one
// per warning, mapped onto the 0-100 range.
func scaledScore(issues []catalogdomain.Issue, productCount int) int {
	if productCount == 0 {
		return 100
	}
	errors, warnings := countBySeverity(issues)
	rate := (float64(errors)*2 + float64(warnings)) / float64(productCount) * 100
	return clamp(int(math.Round(100 - rate)))
}

func countBySeverity(issues []catalogdomain.Issue) (errors, warnings int) {
	for _, is := range issues {
		if is.Severity == catalogdomain.SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
