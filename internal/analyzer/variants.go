package analyzer

import (
	"fmt"
	"strings"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/textutil"
)

// Separators a variant name may use between the base name and the
// differentiator. Mixing them inside one family reads as sloppy data.
var nameSeparators = []string{" - ", " / ", ", ", " | "}

// Variants checks variant families: orphaned parent references,
// indistinguishable siblings and uneven presentation.
func Variants(products []catalogdomain.ProductRecord) []catalogdomain.Issue {
	byCode := make(map[string]catalogdomain.ProductRecord, len(products))
	for _, p := range products {
		if p.Code != "" {
			byCode[p.Code] = p
		}
	}

	families := make(map[string][]catalogdomain.ProductRecord)
	var order []string
	var issues []catalogdomain.Issue

	for _, p := range products {
		if !p.IsVariant() {
			continue
		}
		parent, ok := byCode[p.ParentCode]
		if !ok {
			issues = append(issues, issue(catalogdomain.IssueOrphanedVariant, catalogdomain.SeverityError, p,
				fmt.Sprintf("parent %q does not exist in the feed", p.ParentCode)))
		} else if textutil.NormalizeSpace(p.Name) == textutil.NormalizeSpace(parent.Name) && len(p.Parameters) == 0 {
			issues = append(issues, issue(catalogdomain.IssueMissingDifferentiator, catalogdomain.SeverityWarning, p,
				"variant is indistinguishable from its parent"))
		}
		if p.Image == "" && p.ImageCount == 0 {
			issues = append(issues, issue(catalogdomain.IssueVariantMissingImage, catalogdomain.SeverityWarning, p,
				"variant has no image of its own"))
		}
		if _, seen := families[p.ParentCode]; !seen {
			order = append(order, p.ParentCode)
		}
		families[p.ParentCode] = append(families[p.ParentCode], p)
	}

	for _, parentCode := range order {
		siblings := families[parentCode]
		if len(siblings) < 2 {
			continue
		}

		names := make(map[string][]catalogdomain.ProductRecord)
		var nameOrder []string
		for _, s := range siblings {
			key := textutil.NormalizeSpace(s.Name)
			if _, seen := names[key]; !seen {
				nameOrder = append(nameOrder, key)
			}
			names[key] = append(names[key], s)
		}
		for _, key := range nameOrder {
			group := names[key]
			if len(group) < 2 {
				continue
			}
			issues = append(issues, issue(catalogdomain.IssueIdenticalVariantNames, catalogdomain.SeverityWarning, group[0],
				fmt.Sprintf("%d sibling variants share the same name", len(group)),
				relatedCodes(group, 0)...))
		}

		if len(siblings) >= 3 {
			separators := make(map[string]bool)
			for _, s := range siblings {
				if sep := nameSeparator(s.Name); sep != "" {
					separators[sep] = true
				}
			}
			if len(separators) > 1 {
				issues = append(issues, issue(catalogdomain.IssueInconsistentVariantNames, catalogdomain.SeverityWarning, siblings[0],
					fmt.Sprintf("siblings of %q mix naming separators", parentCode),
					relatedCodes(siblings, 0)...))
			}
		}
	}
	return issues
}

func nameSeparator(name string) string {
	for _, sep := range nameSeparators {
		if strings.Contains(name, sep) {
			return sep
		}
	}
	return ""
}
