package analyzer

import (
	"testing"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityDuplicateCode(t *testing.T) {
	a := completeProduct("A1")
	b := completeProduct("B1")
	b.Code = "A1"
	b.EAN = "8594049999999"
	b.Name = "Úplně jiný výrobek"

	issues := Quality([]catalogdomain.ProductRecord{a, b}, testCtx())

	found := findIssue(issues, catalogdomain.IssueDuplicateCode, "A1")
	require.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityError, found.Severity)
	assert.Equal(t, []string{"A1"}, found.RelatedProducts)
}

func TestQualityDuplicateNameVariantExempt(t *testing.T) {
	a := completeProduct("A1-S")
	b := completeProduct("A1-M")
	a.Name = "Tričko bavlněné"
	b.Name = "Tričko bavlněné"
	a.ParentCode = "A1"
	b.ParentCode = "A1"
	b.EAN = "8594049999999"

	issues := Quality([]catalogdomain.ProductRecord{a, b}, testCtx())
	assert.Zero(t, countIssues(issues, catalogdomain.IssueDuplicateName))

	// The same pair without a family link is a finding.
	a.ParentCode = ""
	b.ParentCode = ""
	a.Code = "X9"
	b.Code = "Y7"
	issues = Quality([]catalogdomain.ProductRecord{a, b}, testCtx())
	assert.Equal(t, 1, countIssues(issues, catalogdomain.IssueDuplicateName))
}

func TestQualityMarkupChecks(t *testing.T) {
	p := completeProduct("A1")
	p.Description = `<div style="color:red"><p>Tento kuchyňský nůž je vyroben z kvalitní nerezové oceli a je vhodný pro každodenní krájení masa i zeleniny v domácnosti.</div>`

	issues := Quality([]catalogdomain.ProductRecord{p}, testCtx())

	assert.True(t, hasIssue(issues, catalogdomain.IssueHTMLErrors, "A1"))
	assert.True(t, hasIssue(issues, catalogdomain.IssueInlineStyles, "A1"))
}

func TestQualityPlaceholderContent(t *testing.T) {
	p := completeProduct("A1")
	p.Description = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

	issues := Quality([]catalogdomain.ProductRecord{p}, testCtx())
	assert.True(t, hasIssue(issues, catalogdomain.IssueLoremIpsum, "A1"))
}

func TestQualityWrongLanguage(t *testing.T) {
	p := completeProduct("A1")
	p.Description = "This product is designed for everyday use in the kitchen and comes with the best warranty you will find on the market."

	issues := Quality([]catalogdomain.ProductRecord{p}, testCtx())

	found := findIssue(issues, catalogdomain.IssueWrongLanguage, "A1")
	require.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityWarning, found.Severity)
}

func TestQualityLanguageSkipsShortText(t *testing.T) {
	p := completeProduct("A1")
	p.Description = "Short english text here."

	issues := Quality([]catalogdomain.ProductRecord{p}, testCtx())
	assert.Zero(t, countIssues(issues, catalogdomain.IssueWrongLanguage))
}
