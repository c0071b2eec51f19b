package analyzer

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/textutil"
)

const maxCategoryDepth = 4

// Categories audits the taxonomy. With an explicit category feed it
// walks true parent/child links and respects the visibility flag; hidden
// categories holding zero products pass as intentional organizational
// nodes. Without a feed it infers a tree from product breadcrumb
// strings and runs the structural checks that survive inference.
func Categories(products []catalogdomain.ProductRecord, categories []catalogdomain.CategoryRecord) []catalogdomain.Issue {
	if len(categories) == 0 {
		return inferredCategories(products)
	}
	return explicitCategories(products, categories)
}

func explicitCategories(products []catalogdomain.ProductRecord, categories []catalogdomain.CategoryRecord) []catalogdomain.Issue {
	var issues []catalogdomain.Issue

	byCode := make(map[string]catalogdomain.CategoryRecord, len(categories))
	for _, c := range categories {
		if c.Code != "" {
			byCode[c.Code] = c
		}
	}

	counts := productCounts(products, categories)

	names := make(map[string][]catalogdomain.CategoryRecord)
	var nameOrder []string

	for _, c := range categories {
		key := textutil.NormalizeSpace(c.Name)
		if key != "" {
			if _, seen := names[key]; !seen {
				nameOrder = append(nameOrder, key)
			}
			names[key] = append(names[key], c)
		}

		if c.ParentCode != "" {
			if _, ok := byCode[c.ParentCode]; !ok {
				issues = append(issues, categoryIssue(catalogdomain.IssueOrphanCategory, catalogdomain.SeverityError, c,
					fmt.Sprintf("parent category %q does not exist", c.ParentCode)))
			}
		}

		depth, cycle := categoryDepth(c, byCode)
		if cycle != "" {
			issues = append(issues, categoryIssue(catalogdomain.IssueOrphanCategory, catalogdomain.SeverityError, c,
				fmt.Sprintf("parent chain loops back through %q", cycle)))
		} else if depth > maxCategoryDepth {
			issues = append(issues, categoryIssue(catalogdomain.IssueDeepCategoryNesting, catalogdomain.SeverityWarning, c,
				fmt.Sprintf("category is nested %d levels deep", depth)))
		}

		if c.Description == "" {
			issues = append(issues, categoryIssue(catalogdomain.IssueMissingCategoryDescription, catalogdomain.SeverityWarning, c,
				"category has no description"))
		}

		count := counts[c.Code]
		switch {
		case !c.IsActive && count > 0:
			issues = append(issues, categoryIssue(catalogdomain.IssueHiddenCategoryWithProducts, catalogdomain.SeverityError, c,
				fmt.Sprintf("hidden category still holds %d products", count)))
		case c.IsActive && count == 0:
			issues = append(issues, categoryIssue(catalogdomain.IssueEmptyCategory, catalogdomain.SeverityWarning, c,
				"visible category holds no products"))
		case count == 1:
			issues = append(issues, categoryIssue(catalogdomain.IssueSingleProductCategory, catalogdomain.SeverityWarning, c,
				"category holds a single product"))
		}
	}

	for _, key := range nameOrder {
		group := names[key]
		if len(group) < 2 {
			continue
		}
		issues = append(issues, categoryIssue(catalogdomain.IssueDuplicateCategoryName, catalogdomain.SeverityWarning, group[0],
			fmt.Sprintf("name shared by %d categories", len(group))))
	}

	return issues
}

// categoryDepth walks parent links with a visited set. A repeated code
// means the feed carries a parent cycle; the walk stops there and
// reports the repeated code.
func categoryDepth(c catalogdomain.CategoryRecord, byCode map[string]catalogdomain.CategoryRecord) (int, string) {
	depth := 1
	visited := map[string]bool{c.Code: true}
	current := c
	for current.ParentCode != "" {
		parent, ok := byCode[current.ParentCode]
		if !ok {
			break
		}
		if visited[parent.Code] {
			return depth, parent.Code
		}
		visited[parent.Code] = true
		depth++
		current = parent
	}
	return depth, ""
}

// productCounts uses the explicit productCount field when the feed
// carries it, otherwise counts products referencing the category by code
// or name.
func productCounts(products []catalogdomain.ProductRecord, categories []catalogdomain.CategoryRecord) map[string]int {
	counts := make(map[string]int, len(categories))
	explicit := false
	for _, c := range categories {
		if c.ProductCount != nil {
			counts[c.Code] = *c.ProductCount
			explicit = true
		}
	}
	if explicit {
		return counts
	}

	byRef := make(map[string]string) // code or normalized name -> category code
	for _, c := range categories {
		byRef[c.Code] = c.Code
		byRef[textutil.NormalizeSpace(c.Name)] = c.Code
	}
	for _, p := range products {
		if p.IsVariant() {
			continue
		}
		for _, ref := range productCategoryRefs(p) {
			if code, ok := byRef[ref]; ok {
				counts[code]++
			} else if code, ok := byRef[textutil.NormalizeSpace(ref)]; ok {
				counts[code]++
			}
		}
	}
	return counts
}

func productCategoryRefs(p catalogdomain.ProductRecord) []string {
	var refs []string
	if p.DefaultCategory != "" {
		refs = append(refs, lastSegment(p.DefaultCategory))
	}
	if p.CategoryText != "" {
		refs = append(refs, lastSegment(p.CategoryText))
	}
	for _, extra := range p.AdditionalCategories {
		refs = append(refs, lastSegment(extra))
	}
	return refs
}

// inferredCategories models the category-less mode: an explicit tree
// computed from breadcrumb paths, keyed by slugged path prefix, instead
// of ad-hoc substring checks per rule.
func inferredCategories(products []catalogdomain.ProductRecord) []catalogdomain.Issue {
	type node struct {
		path     string
		depth    int
		products int
	}
	tree := make(map[string]*node)
	var order []string

	for _, p := range products {
		if p.IsVariant() {
			continue
		}
		for _, raw := range productBreadcrumbs(p) {
			segments := splitBreadcrumb(raw)
			if len(segments) == 0 {
				continue
			}
			key := ""
			for i, segment := range segments {
				if key != "" {
					key += "/"
				}
				key += slug.Make(segment)
				n, ok := tree[key]
				if !ok {
					n = &node{path: strings.Join(segments[:i+1], " > "), depth: i + 1}
					tree[key] = n
					order = append(order, key)
				}
				if i == len(segments)-1 {
					n.products++
				}
			}
		}
	}

	var issues []catalogdomain.Issue
	for _, key := range order {
		n := tree[key]
		c := catalogdomain.CategoryRecord{Code: key, Name: n.path}
		if n.depth > maxCategoryDepth {
			issues = append(issues, categoryIssue(catalogdomain.IssueDeepCategoryNesting, catalogdomain.SeverityWarning, c,
				fmt.Sprintf("breadcrumb path is %d levels deep", n.depth)))
		}
		if n.products == 1 {
			issues = append(issues, categoryIssue(catalogdomain.IssueSingleProductCategory, catalogdomain.SeverityWarning, c,
				"inferred category holds a single product"))
		}
	}
	return issues
}

func productBreadcrumbs(p catalogdomain.ProductRecord) []string {
	var crumbs []string
	if p.CategoryText != "" {
		crumbs = append(crumbs, p.CategoryText)
	} else if p.DefaultCategory != "" {
		crumbs = append(crumbs, p.DefaultCategory)
	}
	crumbs = append(crumbs, p.AdditionalCategories...)
	return crumbs
}

// Breadcrumb delimiters recognized in product category strings.
var productBreadcrumbDelimiters = []string{">", "|", "/"}

func splitBreadcrumb(s string) []string {
	delim := ""
	for _, d := range productBreadcrumbDelimiters {
		if strings.Contains(s, d) {
			delim = d
			break
		}
	}
	if delim == "" {
		if s = strings.TrimSpace(s); s == "" {
			return nil
		}
		return []string{s}
	}
	var segments []string
	for _, part := range strings.Split(s, delim) {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

func lastSegment(s string) string {
	segments := splitBreadcrumb(s)
	if len(segments) == 0 {
		return strings.TrimSpace(s)
	}
	return segments[len(segments)-1]
}
