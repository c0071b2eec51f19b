package analyzer

import (
	"fmt"
	"strings"
	"time"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

const soldOutStaleAfter = 90 * 24 * time.Hour

// Stock validates availability labels against quantities. A quantity
// contradicting its label and negative stock are hard errors; the softer
// findings are labelling gaps.
func Stock(products []catalogdomain.ProductRecord, ctx Context) []catalogdomain.Issue {
	var issues []catalogdomain.Issue

	for _, p := range products {
		if p.Stock != nil && *p.Stock < 0 {
			issues = append(issues, issue(catalogdomain.IssueNegativeStock, catalogdomain.SeverityError, p,
				fmt.Sprintf("stock quantity is %g", *p.Stock)))
		}

		label := strings.TrimSpace(p.Availability)
		inLabel := strings.TrimSpace(p.AvailabilityInStock)
		outLabel := strings.TrimSpace(p.AvailabilityOutOfStock)

		if label == "" {
			if p.Stock != nil {
				issues = append(issues, issue(catalogdomain.IssueMissingAvailability, catalogdomain.SeverityWarning, p,
					"stocked product has no availability label"))
			}
			continue
		}

		matchesIn := inLabel != "" && strings.EqualFold(label, inLabel)
		matchesOut := outLabel != "" && strings.EqualFold(label, outLabel)

		if p.Stock != nil {
			switch {
			case matchesOut && *p.Stock > 0:
				issues = append(issues, issue(catalogdomain.IssueStockLabelMismatch, catalogdomain.SeverityError, p,
					fmt.Sprintf("labelled %q but %g pieces in stock", label, *p.Stock)))
			case matchesIn && *p.Stock <= 0:
				issues = append(issues, issue(catalogdomain.IssueStockLabelMismatch, catalogdomain.SeverityError, p,
					fmt.Sprintf("labelled %q with zero stock", label)))
			}
		}

		if inLabel != "" && outLabel != "" && !matchesIn && !matchesOut {
			issues = append(issues, issue(catalogdomain.IssueWrongStockLabel, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("availability %q matches neither configured label", label)))
		}

		if matchesOut && p.UpdatedAt != nil && ctx.Now.Sub(*p.UpdatedAt) > soldOutStaleAfter {
			issues = append(issues, issue(catalogdomain.IssueLongTermSoldOut, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("sold out since %s", p.UpdatedAt.Format("2006-01-02"))))
		}
	}

	issues = append(issues, inconsistentVariantStock(products)...)
	return issues
}

// inconsistentVariantStock flags sibling variants that report the same
// quantity under different availability labels. One warning per family.
func inconsistentVariantStock(products []catalogdomain.ProductRecord) []catalogdomain.Issue {
	families := make(map[string][]catalogdomain.ProductRecord)
	var order []string
	for _, p := range products {
		if !p.IsVariant() || p.Stock == nil || p.Availability == "" {
			continue
		}
		if _, seen := families[p.ParentCode]; !seen {
			order = append(order, p.ParentCode)
		}
		families[p.ParentCode] = append(families[p.ParentCode], p)
	}

	var issues []catalogdomain.Issue
	for _, parentCode := range order {
		siblings := families[parentCode]
		if len(siblings) < 2 {
			continue
		}
		labelsByQty := make(map[float64]map[string]bool)
		var qtyOrder []float64
		for _, s := range siblings {
			qty := *s.Stock
			if labelsByQty[qty] == nil {
				labelsByQty[qty] = make(map[string]bool)
				qtyOrder = append(qtyOrder, qty)
			}
			labelsByQty[qty][strings.ToLower(s.Availability)] = true
		}
		for _, qty := range qtyOrder {
			if len(labelsByQty[qty]) > 1 {
				issues = append(issues, issue(catalogdomain.IssueInconsistentVariantStock, catalogdomain.SeverityWarning, siblings[0],
					fmt.Sprintf("siblings of %q report %g pieces under different availability labels", parentCode, qty),
					relatedCodes(siblings, 0)...))
				break
			}
		}
	}
	return issues
}
