package analyzer

import (
	"fmt"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

// Categorization checks how products are placed into the taxonomy.
// Variants inherit placement from their parent and are exempt.
func Categorization(products []catalogdomain.ProductRecord, categories []catalogdomain.CategoryRecord) []catalogdomain.Issue {
	roots := rootResolver(categories)

	var issues []catalogdomain.Issue
	for _, p := range products {
		if p.IsVariant() {
			continue
		}

		if p.DefaultCategory == "" && p.CategoryText == "" {
			issues = append(issues, issue(catalogdomain.IssueMissingDefaultCategory, catalogdomain.SeverityError, p,
				"product has no default category"))
			continue
		}

		tops := make(map[string]bool)
		for _, crumb := range productBreadcrumbs(p) {
			if top := roots(crumb); top != "" {
				tops[top] = true
			}
		}
		if len(tops) > 1 {
			issues = append(issues, issue(catalogdomain.IssueMultipleTopCategories, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("product sits under %d top-level categories at once", len(tops))))
		}
	}
	return issues
}

// rootResolver maps a category reference to its top-level ancestor.
// With an explicit feed it walks parent links (cycle-safe); otherwise
// the first breadcrumb segment is the root.
func rootResolver(categories []catalogdomain.CategoryRecord) func(ref string) string {
	if len(categories) == 0 {
		return func(ref string) string {
			segments := splitBreadcrumb(ref)
			if len(segments) == 0 {
				return ""
			}
			return segments[0]
		}
	}

	byCode := make(map[string]catalogdomain.CategoryRecord, len(categories))
	byName := make(map[string]catalogdomain.CategoryRecord, len(categories))
	for _, c := range categories {
		byCode[c.Code] = c
		byName[c.Name] = c
	}

	return func(ref string) string {
		leaf := lastSegment(ref)
		c, ok := byCode[leaf]
		if !ok {
			if c, ok = byName[leaf]; !ok {
				// Unknown reference: fall back to the breadcrumb root.
				segments := splitBreadcrumb(ref)
				if len(segments) == 0 {
					return ""
				}
				return segments[0]
			}
		}
		visited := map[string]bool{c.Code: true}
		for c.ParentCode != "" {
			parent, ok := byCode[c.ParentCode]
			if !ok || visited[parent.Code] {
				break
			}
			visited[parent.Code] = true
			c = parent
		}
		return c.Code
	}
}
