package analyzer

import (
	"fmt"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/textutil"
)

// Completeness checks required content per product. Variants inherit
// imagery, descriptions, categorization and manufacturer data from their
// parent and are exempt from those checks; price and EAN stay per-record.
func Completeness(products []catalogdomain.ProductRecord, ctx Context) []catalogdomain.Issue {
	var issues []catalogdomain.Issue
	for _, p := range products {
		if p.Price == nil || *p.Price == 0 {
			issues = append(issues, issue(catalogdomain.IssueMissingPrice, catalogdomain.SeverityError, p,
				"product has no usable price"))
		}
		if p.EAN == "" {
			issues = append(issues, issue(catalogdomain.IssueMissingEAN, catalogdomain.SeverityWarning, p,
				"missing EAN barcode"))
		}

		if p.IsVariant() {
			continue
		}

		switch {
		case p.Image == "" && p.ImageCount == 0:
			issues = append(issues, issue(catalogdomain.IssueMissingImage, catalogdomain.SeverityError, p,
				"product has no image"))
		case p.ImageCount == 1:
			issues = append(issues, issue(catalogdomain.IssueSingleImage, catalogdomain.SeverityWarning, p,
				"only a single product image"))
		}

		if p.ShortDescription == "" {
			issues = append(issues, issue(catalogdomain.IssueMissingShortDescription, catalogdomain.SeverityWarning, p,
				"missing short description"))
		}

		plain := textutil.StripHTML(p.Description)
		if plain == "" {
			issues = append(issues, issue(catalogdomain.IssueMissingDescription, catalogdomain.SeverityError, p,
				"missing description"))
		} else if n := len([]rune(plain)); n < ctx.MinDescriptionLength {
			issues = append(issues, issue(catalogdomain.IssueShortDescription, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("description has %d characters, expected at least %d", n, ctx.MinDescriptionLength)))
		}

		if p.Manufacturer == "" && p.Brand == "" {
			issues = append(issues, issue(catalogdomain.IssueMissingManufacturer, catalogdomain.SeverityWarning, p,
				"missing manufacturer and brand"))
		}
		if p.DefaultCategory == "" && p.CategoryText == "" && len(p.AdditionalCategories) == 0 {
			issues = append(issues, issue(catalogdomain.IssueMissingCategory, catalogdomain.SeverityError, p,
				"product is not assigned to any category"))
		}
		if len(p.Parameters) == 0 && len(p.FilterParameters) == 0 {
			issues = append(issues, issue(catalogdomain.IssueMissingParameters, catalogdomain.SeverityWarning, p,
				"no filterable attributes"))
		}
	}
	return issues
}
