package analyzer

import (
	"time"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func testCtx() Context {
	return Context{
		ExpectedLanguage:     "cs",
		MinDescriptionLength: 100,
		Now:                  testNow,
	}
}

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func tptr(v time.Time) *time.Time { return &v }

func hasIssue(issues []catalogdomain.Issue, t catalogdomain.IssueType, code string) bool {
	for _, is := range issues {
		if is.Type == t && is.Code == code {
			return true
		}
	}
	return false
}

func countIssues(issues []catalogdomain.Issue, t catalogdomain.IssueType) int {
	n := 0
	for _, is := range issues {
		if is.Type == t {
			n++
		}
	}
	return n
}

func findIssue(issues []catalogdomain.Issue, t catalogdomain.IssueType, code string) *catalogdomain.Issue {
	for i, is := range issues {
		if is.Type == t && is.Code == code {
			return &issues[i]
		}
	}
	return nil
}

// completeProduct builds a record that trips no analyzer, to be broken
// per test.
func completeProduct(code string) catalogdomain.ProductRecord {
	return catalogdomain.ProductRecord{
		Code:             code,
		Name:             "Kuchyňský nůž " + code,
		ShortDescription: "Ostrý nůž z nerezové oceli.",
		Description:      "Tento kuchyňský nůž je vyroben z kvalitní nerezové oceli a je vhodný pro každodenní krájení masa, zeleniny i pečiva. Ergonomická rukojeť padne dobře do ruky.",
		MetaTitle:        "Kuchyňský nůž " + code + " z nerezové oceli",
		MetaDescription:  "Kvalitní kuchyňský nůž " + code + " z nerezové oceli s ergonomickou rukojetí, vhodný pro každodenní použití v domácnosti i profesionální kuchyni.",
		DefaultCategory:  "Kuchyně > Nože",
		Price:            fptr(499),
		EAN:              "859404912345" + code,
		Manufacturer:     "NožeCZ",
		Image:            "https://img.example.com/" + code + ".jpg",
		ImageCount:       3,
		Availability:     "skladem",
		Stock:            fptr(12),
		Parameters:       map[string]string{"Barva": "černá"},
		IsVisible:        true,
	}
}
