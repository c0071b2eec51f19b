package feed

import (
	"fmt"
	"strings"
	"time"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

// CanonicalizeProducts maps raw rows onto the fixed product schema. Rows
// lacking both code and name are dropped silently; per-field coercion
// failures leave the field absent rather than failing the row.
func CanonicalizeProducts(rows []RawRow) []catalogdomain.ProductRecord {
	records := make([]catalogdomain.ProductRecord, 0, len(rows))
	for _, row := range rows {
		p := canonicalizeProduct(row)
		if p.Code == "" && p.Name == "" {
			continue
		}
		records = append(records, p)
	}
	return records
}

func canonicalizeProduct(row RawRow) catalogdomain.ProductRecord {
	a := productAliases
	p := catalogdomain.ProductRecord{
		Code:             a.code.str(row),
		Name:             a.name.str(row),
		ShortDescription: a.shortDescription.str(row),
		Description:      a.description.str(row),
		MetaTitle:        a.metaTitle.str(row),
		MetaDescription:  a.metaDescription.str(row),
		DefaultCategory:  a.defaultCategory.str(row),
		CategoryText:     a.categoryText.str(row),
		Availability:     a.availability.str(row),
		EAN:              a.ean.str(row),
		Manufacturer:     a.manufacturer.str(row),
		Brand:            a.brand.str(row),
		Warranty:         a.warranty.str(row),
		Image:            a.image.str(row),
		ParentCode:       a.parentCode.str(row),

		AvailabilityInStock:    a.availabilityInStock.str(row),
		AvailabilityOutOfStock: a.availabilityOutOfStock.str(row),
	}

	p.AdditionalCategories = splitList(a.additionalCategories.str(row))
	p.FilterParameters = splitList(a.filterParameters.str(row))

	p.Price = optionalNumber(a.price.str(row))
	p.PriceBeforeDiscount = optionalNumber(a.priceBeforeDiscount.str(row))
	p.PurchasePrice = optionalNumber(a.purchasePrice.str(row))
	p.Weight = optionalNumber(a.weight.str(row))
	p.Stock = optionalNumber(a.stock.str(row))

	if days, ok := parseInt(a.deliveryDays.str(row)); ok {
		p.DeliveryDays = &days
	}

	p.IsAction = parseBool(a.isAction.str(row))
	p.IsNew = parseBool(a.isNew.str(row))
	p.IsVisible = true
	if _, ok := a.isVisible.lookup(row); ok {
		p.IsVisible = parseBool(a.isVisible.str(row))
	}

	p.ActionEndDate = optionalDate(a.actionEndDate.lookup(row))
	p.CreatedAt = optionalDate(a.createdAt.lookup(row))
	p.UpdatedAt = optionalDate(a.updatedAt.lookup(row))

	if params, ok := row[keyParams].(map[string]string); ok && len(params) > 0 {
		p.Parameters = params
	}
	p.ImageCount = imageCount(row, p.Image)

	return p
}

// imageCount prefers the count observed by the markup parser, otherwise
// probes numbered image columns and the comma-separated extra-images
// column.
func imageCount(row RawRow, image string) int {
	if n, ok := row[keyImageCount].(int); ok {
		return n
	}
	count := 0
	if image != "" {
		count = 1
	}
	for i := 2; i <= maxNumberedImages; i++ {
		for _, pattern := range numberedImagePatterns {
			key := aliasList{fmt.Sprintf(pattern, i)}
			if key.str(row) != "" {
				count++
				break
			}
		}
	}
	count += len(splitList(productAliases.additionalImages.str(row)))
	return count
}

// CanonicalizeCategories maps raw rows onto the category schema. A
// category without a direct name falls back to the last breadcrumb
// segment of its path, then to its code.
func CanonicalizeCategories(rows []RawRow) []catalogdomain.CategoryRecord {
	records := make([]catalogdomain.CategoryRecord, 0, len(rows))
	for _, row := range rows {
		a := categoryAliases
		c := catalogdomain.CategoryRecord{
			Code:        a.code.str(row),
			Name:        a.name.str(row),
			ParentCode:  a.parentCode.str(row),
			Path:        a.path.str(row),
			Description: a.description.str(row),
		}
		if c.Name == "" {
			c.Name = lastBreadcrumb(c.Path)
		}
		if c.Name == "" {
			c.Name = c.Code
		}
		c.IsActive = true
		if _, ok := a.isActive.lookup(row); ok {
			c.IsActive = parseBool(a.isActive.str(row))
		}
		if n, ok := parseInt(a.productCount.str(row)); ok {
			c.ProductCount = &n
		}
		if n, ok := parseInt(a.order.str(row)); ok {
			c.Order = &n
		}
		if c.Code == "" && c.Name == "" {
			continue
		}
		records = append(records, c)
	}
	return records
}

func lastBreadcrumb(path string) string {
	if path == "" {
		return ""
	}
	for _, delim := range breadcrumbDelimiters {
		if strings.Contains(path, delim) {
			parts := strings.Split(path, delim)
			return strings.TrimSpace(parts[len(parts)-1])
		}
	}
	return strings.TrimSpace(path)
}

func optionalNumber(s string) *float64 {
	if n, ok := parseNumber(s); ok {
		return &n
	}
	return nil
}

func optionalDate(v any, ok bool) *time.Time {
	if !ok {
		return nil
	}
	if t, parsed := parseDate(v); parsed {
		return &t
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
