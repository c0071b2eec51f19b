package analyzer

import (
	"testing"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsOrphanedVariant(t *testing.T) {
	v := completeProduct("A1-RED")
	v.ParentCode = "MISSING"

	issues := Variants([]catalogdomain.ProductRecord{v})

	found := findIssue(issues, catalogdomain.IssueOrphanedVariant, "A1-RED")
	require.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityError, found.Severity)
}

func TestVariantsMissingDifferentiator(t *testing.T) {
	parent := completeProduct("A1")
	v := completeProduct("A1-X")
	v.ParentCode = "A1"
	v.Name = parent.Name
	v.Parameters = nil

	issues := Variants([]catalogdomain.ProductRecord{parent, v})
	assert.True(t, hasIssue(issues, catalogdomain.IssueMissingDifferentiator, "A1-X"))

	// A parameter distinguishing the variant clears the finding.
	v.Parameters = map[string]string{"Velikost": "XL"}
	issues = Variants([]catalogdomain.ProductRecord{parent, v})
	assert.False(t, hasIssue(issues, catalogdomain.IssueMissingDifferentiator, "A1-X"))
}

func TestVariantsMissingImage(t *testing.T) {
	parent := completeProduct("A1")
	v := completeProduct("A1-X")
	v.ParentCode = "A1"
	v.Image = ""
	v.ImageCount = 0

	issues := Variants([]catalogdomain.ProductRecord{parent, v})
	assert.True(t, hasIssue(issues, catalogdomain.IssueVariantMissingImage, "A1-X"))
}

func TestVariantsIdenticalSiblingNames(t *testing.T) {
	parent := completeProduct("A1")
	s1 := completeProduct("A1-S")
	s2 := completeProduct("A1-M")
	s1.ParentCode = "A1"
	s2.ParentCode = "A1"
	s1.Name = "Tričko"
	s2.Name = "Tričko"

	issues := Variants([]catalogdomain.ProductRecord{parent, s1, s2})
	assert.Equal(t, 1, countIssues(issues, catalogdomain.IssueIdenticalVariantNames))
}

func TestVariantsIdenticalNamesStableOrder(t *testing.T) {
	build := func() []catalogdomain.ProductRecord {
		records := []catalogdomain.ProductRecord{completeProduct("V0")}
		specs := []struct{ code, name string }{
			{"V1", "Alpha"},
			{"V2", "Alpha"},
			{"V3", "Beta"},
			{"V4", "Beta"},
		}
		for _, s := range specs {
			v := completeProduct(s.code)
			v.ParentCode = "V0"
			v.Name = s.name
			records = append(records, v)
		}
		return records
	}

	first := Variants(build())
	require.Equal(t, 2, countIssues(first, catalogdomain.IssueIdenticalVariantNames))
	assert.Equal(t, "V1", first[0].Code)
	assert.Equal(t, "V3", first[1].Code)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Variants(build()))
	}
}

func TestVariantsInconsistentNaming(t *testing.T) {
	parent := completeProduct("A1")
	records := []catalogdomain.ProductRecord{parent}
	names := []string{"Tričko - S", "Tričko / M", "Tričko - L"}
	for _, name := range names {
		v := completeProduct("A1-" + name[len(name)-1:])
		v.ParentCode = "A1"
		v.Name = name
		records = append(records, v)
	}

	issues := Variants(records)
	assert.Equal(t, 1, countIssues(issues, catalogdomain.IssueInconsistentVariantNames))
}
