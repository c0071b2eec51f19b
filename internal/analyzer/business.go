package analyzer

import (
	"fmt"
	"math"
	"strings"
	"time"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

const (
	bigDiscountRatio   = 0.5
	slowDeliveryDays   = 3
	inquiryStaleAfter  = 30 * 24 * time.Hour
	newFlagStaleAfter  = 90 * 24 * time.Hour
	roundPriceModulus  = 1000
)

// Availability labels that mean "price/stock on request".
var inquiryLabels = []string{"na dotaz", "on request", "on inquiry", "auf anfrage"}

// Business validates commercial plausibility: price sanity, discount
// arithmetic, promotion lifecycle and delivery promises.
func Business(products []catalogdomain.ProductRecord, ctx Context) []catalogdomain.Issue {
	var issues []catalogdomain.Issue
	for _, p := range products {
		if p.Price != nil {
			price := *p.Price
			switch {
			case price < 0:
				issues = append(issues, issue(catalogdomain.IssueNegativePrice, catalogdomain.SeverityError, p,
					fmt.Sprintf("price is %g", price)))
			case price == 0:
				issues = append(issues, issue(catalogdomain.IssueZeroPrice, catalogdomain.SeverityError, p,
					"price is zero"))
			default:
				if math.Mod(price, roundPriceModulus) == 0 {
					// Documented heuristic: legitimate round pricing trips
					// this too, review is cheap.
					issues = append(issues, issue(catalogdomain.IssueRoundPrice, catalogdomain.SeverityWarning, p,
						fmt.Sprintf("suspiciously round price %g", price)))
				}
				if p.PriceBeforeDiscount != nil {
					original := *p.PriceBeforeDiscount
					switch {
					case original < price:
						issues = append(issues, issue(catalogdomain.IssueInvalidDiscount, catalogdomain.SeverityError, p,
							fmt.Sprintf("discounted price %g exceeds original %g", price, original)))
					case original > 0 && price < original*bigDiscountRatio:
						issues = append(issues, issue(catalogdomain.IssueBigDiscount, catalogdomain.SeverityWarning, p,
							fmt.Sprintf("discount of %.0f%% off %g", (1-price/original)*100, original)))
					}
				}
			}
		}

		inStock := p.Stock != nil && *p.Stock > 0
		if !inStock && p.AvailabilityInStock != "" {
			inStock = strings.EqualFold(p.Availability, p.AvailabilityInStock)
		}
		if inStock && p.DeliveryDays != nil && *p.DeliveryDays > slowDeliveryDays {
			issues = append(issues, issue(catalogdomain.IssueSlowDelivery, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("in stock yet promising delivery in %d days", *p.DeliveryDays)))
		}

		if isInquiryLabel(p.Availability) && p.UpdatedAt != nil && ctx.Now.Sub(*p.UpdatedAt) > inquiryStaleAfter {
			issues = append(issues, issue(catalogdomain.IssueLongTermInquiry, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("on inquiry without update since %s", p.UpdatedAt.Format("2006-01-02"))))
		}

		if p.IsAction {
			switch {
			case p.ActionEndDate == nil:
				issues = append(issues, issue(catalogdomain.IssuePermanentAction, catalogdomain.SeverityWarning, p,
					"promotion has no end date"))
			case p.ActionEndDate.Before(ctx.Now):
				issues = append(issues, issue(catalogdomain.IssueExpiredAction, catalogdomain.SeverityError, p,
					fmt.Sprintf("promotion expired on %s", p.ActionEndDate.Format("2006-01-02"))))
			}
		}

		if p.IsNew && p.CreatedAt != nil && ctx.Now.Sub(*p.CreatedAt) > newFlagStaleAfter {
			issues = append(issues, issue(catalogdomain.IssueOldNewFlag, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("flagged new since %s", p.CreatedAt.Format("2006-01-02"))))
		}
	}
	return issues
}

func isInquiryLabel(availability string) bool {
	lower := strings.ToLower(availability)
	for _, label := range inquiryLabels {
		if strings.Contains(lower, label) {
			return true
		}
	}
	return false
}
