package domain

import "time"

// ProductRecord is the canonical product representation every parser
// output is normalized into before analysis. Optional scalar fields are
// pointers; an unparsable source value leaves the field nil rather than
// failing the record.
type ProductRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`

	ShortDescription string `json:"short_description,omitempty"`
	Description      string `json:"description,omitempty"`
	MetaTitle        string `json:"meta_title,omitempty"`
	MetaDescription  string `json:"meta_description,omitempty"`

	DefaultCategory      string   `json:"default_category,omitempty"`
	CategoryText         string   `json:"category_text,omitempty"`
	AdditionalCategories []string `json:"additional_categories,omitempty"`

	Price               *float64 `json:"price,omitempty"`
	PriceBeforeDiscount *float64 `json:"price_before_discount,omitempty"`
	PurchasePrice       *float64 `json:"purchase_price,omitempty"`

	Availability           string   `json:"availability,omitempty"`
	AvailabilityInStock    string   `json:"availability_in_stock,omitempty"`
	AvailabilityOutOfStock string   `json:"availability_out_of_stock,omitempty"`
	DeliveryDays           *int     `json:"delivery_days,omitempty"`
	Stock                  *float64 `json:"stock,omitempty"`

	EAN          string   `json:"ean,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Warranty     string   `json:"warranty,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`

	Image      string `json:"image,omitempty"`
	ImageCount int    `json:"image_count"`

	FilterParameters []string          `json:"filter_parameters,omitempty"`
	Parameters       map[string]string `json:"parameters,omitempty"`

	IsAction      bool       `json:"is_action"`
	IsNew         bool       `json:"is_new"`
	IsVisible     bool       `json:"is_visible"`
	ActionEndDate *time.Time `json:"action_end_date,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`

	ParentCode string `json:"parent_code,omitempty"`
}

// IsVariant reports whether the record is a variant of a parent product.
// Variants inherit category, description and imagery from the parent and
// are exempt from several completeness checks.
func (p ProductRecord) IsVariant() bool {
	return p.ParentCode != ""
}

// CategoryRecord is one node of the category taxonomy. Categories form a
// forest via ParentCode; orphan references are an issue, not a parse
// failure.
type CategoryRecord struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ParentCode   string `json:"parent_code,omitempty"`
	Path         string `json:"path,omitempty"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
	ProductCount *int   `json:"product_count,omitempty"`
	Order        *int   `json:"order,omitempty"`
}

// Severity of an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single detected defect, attributed to a product or category.
type Issue struct {
	Type            IssueType `json:"type"`
	Severity        Severity  `json:"severity"`
	Code            string    `json:"code"`
	Name            string    `json:"name,omitempty"`
	Details         string    `json:"details"`
	RelatedProducts []string  `json:"related_products,omitempty"`
}

// DuplicateGroupType distinguishes byte-identical description groups from
// near-duplicate ones.
type DuplicateGroupType string

const (
	DuplicateExact DuplicateGroupType = "exact"
	DuplicateNear  DuplicateGroupType = "near"
)

// DuplicateGroup is a set of products sharing (nearly) the same
// description text.
type DuplicateGroup struct {
	Type       DuplicateGroupType `json:"type"`
	Similarity int                `json:"similarity"`
	Products   []string           `json:"products"`
	Excerpt    string             `json:"excerpt,omitempty"`
}

// Issues holds the eight per-dimension issue lists of a report.
// Categorization findings are folded into Categories.
type Issues struct {
	Completeness []Issue `json:"completeness"`
	Quality      []Issue `json:"quality"`
	Duplicates   []Issue `json:"duplicates"`
	Variants     []Issue `json:"variants"`
	Stock        []Issue `json:"stock"`
	Categories   []Issue `json:"categories"`
	Business     []Issue `json:"business"`
	SEO          []Issue `json:"seo"`
}

// Total counts issues across all dimensions.
func (i Issues) Total() int {
	return len(i.Completeness) + len(i.Quality) + len(i.Duplicates) +
		len(i.Variants) + len(i.Stock) + len(i.Categories) +
		len(i.Business) + len(i.SEO)
}

// All returns every issue list keyed by dimension name.
func (i Issues) All() map[string][]Issue {
	return map[string][]Issue{
		DimensionCompleteness: i.Completeness,
		DimensionQuality:      i.Quality,
		DimensionDuplicates:   i.Duplicates,
		DimensionVariants:     i.Variants,
		DimensionStock:        i.Stock,
		DimensionCategories:   i.Categories,
		DimensionBusiness:     i.Business,
		DimensionSEO:          i.SEO,
	}
}

// Dimension names, used for stats, scores and metrics labels.
const (
	DimensionCompleteness = "completeness"
	DimensionQuality      = "quality"
	DimensionDuplicates   = "duplicates"
	DimensionVariants     = "variants"
	DimensionStock        = "stock"
	DimensionCategories   = "categories"
	DimensionBusiness     = "business"
	DimensionSEO          = "seo"
)

// Scores holds the eight 0-100 sub-scores and the weighted overall score.
type Scores struct {
	Completeness int `json:"completeness"`
	Quality      int `json:"quality"`
	Uniqueness   int `json:"uniqueness"`
	Variants     int `json:"variants"`
	Stock        int `json:"stock"`
	Categories   int `json:"categories"`
	Business     int `json:"business"`
	SEO          int `json:"seo"`
	Overall      int `json:"overall"`
}

// Stats aggregates cheap counts the analyzers already touch.
type Stats struct {
	TotalProducts   int            `json:"total_products"`
	TotalVariants   int            `json:"total_variants"`
	TotalCategories int            `json:"total_categories"`
	TotalErrors     int            `json:"total_errors"`
	TotalWarnings   int            `json:"total_warnings"`
	DuplicateGroups int            `json:"duplicate_groups"`
	IssuesByArea    map[string]int `json:"issues_by_area"`
	Languages       map[string]int `json:"languages,omitempty"`
}

// Report is the immutable audit result: built once per call, never
// mutated afterwards.
type Report struct {
	ProductCount    int              `json:"product_count"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Issues          Issues           `json:"issues"`
	DuplicateGroups []DuplicateGroup `json:"duplicate_groups"`
	Stats           Stats            `json:"stats"`
	Scores          Scores           `json:"scores"`
}
