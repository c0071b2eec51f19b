package scoring

import (
	"testing"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
)

func issues(t catalogdomain.IssueType, sev catalogdomain.Severity, n int) []catalogdomain.Issue {
	out := make([]catalogdomain.Issue, n)
	for i := range out {
		out[i] = catalogdomain.Issue{Type: t, Severity: sev}
	}
	return out
}

func TestComputePerfectCatalog(t *testing.T) {
	scores := Compute(catalogdomain.Issues{}, 100)
	assert.Equal(t, 100, scores.Completeness)
	assert.Equal(t, 100, scores.Quality)
	assert.Equal(t, 100, scores.Uniqueness)
	assert.Equal(t, 100, scores.Overall)
}

func TestComputeFixedPenalties(t *testing.T) {
	in := catalogdomain.Issues{
		Completeness: issues(catalogdomain.IssueMissingPrice, catalogdomain.SeverityError, 2),
		Business:     issues(catalogdomain.IssueZeroPrice, catalogdomain.SeverityError, 1),
		Stock:        issues(catalogdomain.IssueMissingAvailability, catalogdomain.SeverityWarning, 3),
	}
	scores := Compute(in, 50)

	assert.Equal(t, 90, scores.Completeness) // 2 errors x 5
	assert.Equal(t, 90, scores.Business)     // 1 error x 10
	assert.Equal(t, 91, scores.Stock)        // 3 warnings x 3
}

func TestComputeScaledByCatalogSize(t *testing.T) {
	quality := issues(catalogdomain.IssueDuplicateCode, catalogdomain.SeverityError, 10)

	small := Compute(catalogdomain.Issues{Quality: quality}, 100)
	large := Compute(catalogdomain.Issues{Quality: quality}, 1000)

	// 10 errors: rate 20% of 100 products, 2% of 1000.
	assert.Equal(t, 80, small.Quality)
	assert.Equal(t, 98, large.Quality)
}

func TestComputeFloorsAtZero(t *testing.T) {
	in := catalogdomain.Issues{
		Business: issues(catalogdomain.IssueNegativePrice, catalogdomain.SeverityError, 50),
	}
	scores := Compute(in, 10)
	assert.Equal(t, 0, scores.Business)
	assert.GreaterOrEqual(t, scores.Overall, 0)
	assert.LessOrEqual(t, scores.Overall, 100)
}

func TestComputeZeroProducts(t *testing.T) {
	scores := Compute(catalogdomain.Issues{}, 0)
	assert.Equal(t, 100, scores.Quality)
	assert.Equal(t, 100, scores.Uniqueness)
}
