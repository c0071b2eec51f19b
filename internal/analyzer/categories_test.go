package analyzer

import (
	"testing"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func category(code, name, parent string) catalogdomain.CategoryRecord {
	return catalogdomain.CategoryRecord{
		Code:        code,
		Name:        name,
		ParentCode:  parent,
		Description: "Popis kategorie " + name,
		IsActive:    true,
	}
}

func TestCategoriesOrphanParent(t *testing.T) {
	cats := []catalogdomain.CategoryRecord{
		category("c1", "Kuchyně", ""),
		category("c2", "Nože", "missing"),
	}
	cats[0].ProductCount = iptr(3)
	cats[1].ProductCount = iptr(2)

	issues := Categories(nil, cats)

	found := findIssue(issues, catalogdomain.IssueOrphanCategory, "c2")
	require.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityError, found.Severity)
}

func TestCategoriesParentCycle(t *testing.T) {
	cats := []catalogdomain.CategoryRecord{
		category("c1", "A", "c2"),
		category("c2", "B", "c1"),
	}
	cats[0].ProductCount = iptr(2)
	cats[1].ProductCount = iptr(2)

	issues := Categories(nil, cats)

	// A cycle in the parent chain degrades to orphan findings, not a hang.
	assert.Equal(t, 2, countIssues(issues, catalogdomain.IssueOrphanCategory))
}

func TestCategoriesDeepNesting(t *testing.T) {
	cats := []catalogdomain.CategoryRecord{
		category("c1", "L1", ""),
		category("c2", "L2", "c1"),
		category("c3", "L3", "c2"),
		category("c4", "L4", "c3"),
		category("c5", "L5", "c4"),
	}
	for i := range cats {
		cats[i].ProductCount = iptr(2)
	}

	issues := Categories(nil, cats)
	assert.True(t, hasIssue(issues, catalogdomain.IssueDeepCategoryNesting, "c5"))
	assert.False(t, hasIssue(issues, catalogdomain.IssueDeepCategoryNesting, "c4"))
}

func TestCategoriesHiddenWithProductsAndEmpty(t *testing.T) {
	hidden := category("c1", "Skrytá", "")
	hidden.IsActive = false
	hidden.ProductCount = iptr(4)

	empty := category("c2", "Prázdná", "")
	empty.ProductCount = iptr(0)

	hiddenEmpty := category("c3", "Archiv", "")
	hiddenEmpty.IsActive = false
	hiddenEmpty.ProductCount = iptr(0)

	single := category("c4", "Jediný", "")
	single.ProductCount = iptr(1)

	issues := Categories(nil, []catalogdomain.CategoryRecord{hidden, empty, hiddenEmpty, single})

	found := findIssue(issues, catalogdomain.IssueHiddenCategoryWithProducts, "c1")
	require.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityError, found.Severity)

	assert.True(t, hasIssue(issues, catalogdomain.IssueEmptyCategory, "c2"))

	// Hidden and empty is a deliberate organizational node.
	assert.False(t, hasIssue(issues, catalogdomain.IssueEmptyCategory, "c3"))
	assert.False(t, hasIssue(issues, catalogdomain.IssueHiddenCategoryWithProducts, "c3"))

	assert.True(t, hasIssue(issues, catalogdomain.IssueSingleProductCategory, "c4"))
}

func TestCategoriesDuplicateNames(t *testing.T) {
	cats := []catalogdomain.CategoryRecord{
		category("c1", "Doplňky", ""),
		category("c2", "Doplňky", ""),
	}
	cats[0].ProductCount = iptr(2)
	cats[1].ProductCount = iptr(2)

	issues := Categories(nil, cats)
	assert.Equal(t, 1, countIssues(issues, catalogdomain.IssueDuplicateCategoryName))
}

func TestCategoriesInferredFromBreadcrumbs(t *testing.T) {
	products := []catalogdomain.ProductRecord{
		{Code: "P1", Name: "A", CategoryText: "Dům > Kuchyně > Nože > Sady > Dárkové > Luxusní"},
		{Code: "P2", Name: "B", CategoryText: "Dům > Kuchyně"},
		{Code: "P3", Name: "C", CategoryText: "Dům > Kuchyně"},
	}

	issues := Categories(products, nil)

	assert.Positive(t, countIssues(issues, catalogdomain.IssueDeepCategoryNesting))
	// The leaf of P1's path holds a single product.
	assert.Positive(t, countIssues(issues, catalogdomain.IssueSingleProductCategory))
}

func TestCategorizationMissingDefaultCategory(t *testing.T) {
	p := completeProduct("A1")
	p.DefaultCategory = ""
	p.CategoryText = ""

	issues := Categorization([]catalogdomain.ProductRecord{p}, nil)

	found := findIssue(issues, catalogdomain.IssueMissingDefaultCategory, "A1")
	require.NotNil(t, found)
	assert.Equal(t, catalogdomain.SeverityError, found.Severity)
}

func TestCategorizationVariantsExempt(t *testing.T) {
	v := completeProduct("A1-X")
	v.ParentCode = "A1"
	v.DefaultCategory = ""
	v.CategoryText = ""

	issues := Categorization([]catalogdomain.ProductRecord{v}, nil)
	assert.Empty(t, issues)
}

func TestCategorizationMultipleTopCategories(t *testing.T) {
	p := completeProduct("A1")
	p.CategoryText = "Kuchyně > Nože"
	p.AdditionalCategories = []string{"Zahrada > Nářadí"}

	issues := Categorization([]catalogdomain.ProductRecord{p}, nil)
	assert.True(t, hasIssue(issues, catalogdomain.IssueMultipleTopCategories, "A1"))
}
