package analyzer

import (
	"testing"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompletenessCleanProduct(t *testing.T) {
	issues := Completeness([]catalogdomain.ProductRecord{completeProduct("A1")}, testCtx())
	assert.Empty(t, issues)
}

func TestCompletenessMissingFields(t *testing.T) {
	p := completeProduct("A1")
	p.Price = nil
	p.EAN = ""
	p.Image = ""
	p.ImageCount = 0
	p.Description = ""
	p.Manufacturer = ""
	p.Brand = ""

	issues := Completeness([]catalogdomain.ProductRecord{p}, testCtx())

	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingPrice, "A1"))
	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingEAN, "A1"))
	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingImage, "A1"))
	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingDescription, "A1"))
	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingManufacturer, "A1"))
}

func TestCompletenessZeroPriceIsMissing(t *testing.T) {
	p := completeProduct("A1")
	p.Price = fptr(0)
	issues := Completeness([]catalogdomain.ProductRecord{p}, testCtx())
	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingPrice, "A1"))
}

func TestCompletenessShortDescription(t *testing.T) {
	p := completeProduct("A1")
	p.Description = "<p>Krátký popis.</p>"
	issues := Completeness([]catalogdomain.ProductRecord{p}, testCtx())

	found := findIssue(issues, catalogdomain.IssueShortDescription, "A1")
	assert.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityWarning, found.Severity)
}

func TestCompletenessSingleImage(t *testing.T) {
	p := completeProduct("A1")
	p.ImageCount = 1
	issues := Completeness([]catalogdomain.ProductRecord{p}, testCtx())
	assert.True(t, hasIssue(issues, catalogdomain.IssueSingleImage, "A1"))
}

func TestCompletenessVariantExemptions(t *testing.T) {
	v := catalogdomain.ProductRecord{
		Code:       "A1-RED",
		Name:       "Nůž červený",
		ParentCode: "A1",
		Price:      fptr(499),
		EAN:        "8594049123457",
	}

	issues := Completeness([]catalogdomain.ProductRecord{v}, testCtx())

	// Variants inherit content from the parent; price and EAN stay checked.
	assert.Empty(t, issues)

	v.Price = nil
	issues = Completeness([]catalogdomain.ProductRecord{v}, testCtx())
	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingPrice, "A1-RED"))
	assert.False(t, hasIssue(issues, catalogdomain.IssueMissingImage, "A1-RED"))
	assert.False(t, hasIssue(issues, catalogdomain.IssueMissingCategory, "A1-RED"))
}
