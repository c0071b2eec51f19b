package domain

// IssueType is the closed enumeration of defect kinds the analyzers emit.
type IssueType string

// Completeness.
const (
	IssueMissingImage            IssueType = "missing_image"
	IssueSingleImage             IssueType = "single_image"
	IssueMissingShortDescription IssueType = "missing_short_description"
	IssueMissingDescription      IssueType = "missing_description"
	IssueShortDescription        IssueType = "short_description"
	IssueMissingPrice            IssueType = "missing_price"
	IssueMissingEAN              IssueType = "missing_ean"
	IssueMissingManufacturer     IssueType = "missing_manufacturer"
	IssueMissingCategory         IssueType = "missing_category"
	IssueMissingParameters       IssueType = "missing_parameters"
)

// Data quality.
const (
	IssueDuplicateName IssueType = "duplicate_name"
	IssueDuplicateCode IssueType = "duplicate_code"
	IssueDuplicateEAN  IssueType = "duplicate_ean"
	IssueHTMLErrors    IssueType = "html_errors"
	IssueInlineStyles  IssueType = "inline_styles"
	IssueExcessiveHTML IssueType = "excessive_html"
	IssueLoremIpsum    IssueType = "lorem_ipsum"
	IssueTestContent   IssueType = "test_content"
	IssueWrongLanguage IssueType = "wrong_language"
	IssueURLInText     IssueType = "url_in_description"
	IssueEmojiSpam     IssueType = "emoji_spam"
)

// Duplicates.
const (
	IssueDuplicateDescription IssueType = "duplicate_description"
	IssueNearDuplicate        IssueType = "near_duplicate"
)

// Variant consistency.
const (
	IssueOrphanedVariant          IssueType = "orphaned_variant"
	IssueIdenticalVariantNames    IssueType = "identical_variant_names"
	IssueMissingDifferentiator    IssueType = "missing_variant_differentiator"
	IssueVariantMissingImage      IssueType = "variant_missing_image"
	IssueInconsistentVariantNames IssueType = "inconsistent_variant_naming"
)

// Stock consistency.
const (
	IssueMissingAvailability     IssueType = "missing_availability"
	IssueWrongStockLabel         IssueType = "wrong_stock_label"
	IssueStockLabelMismatch      IssueType = "stock_label_mismatch"
	IssueNegativeStock           IssueType = "negative_stock"
	IssueLongTermSoldOut         IssueType = "long_term_soldout"
	IssueInconsistentVariantStock IssueType = "inconsistent_variant_stock"
)

// Category structure and categorization.
const (
	IssueEmptyCategory              IssueType = "empty_category"
	IssueSingleProductCategory      IssueType = "single_product_category"
	IssueDeepCategoryNesting        IssueType = "deep_category_nesting"
	IssueOrphanCategory             IssueType = "orphan_category"
	IssueDuplicateCategoryName      IssueType = "duplicate_category_name"
	IssueMissingCategoryDescription IssueType = "missing_category_description"
	IssueHiddenCategoryWithProducts IssueType = "hidden_category_with_products"
	IssueMissingDefaultCategory     IssueType = "missing_default_category"
	IssueMultipleTopCategories      IssueType = "multiple_top_categories"
)

// Business logic.
const (
	IssueZeroPrice        IssueType = "zero_price"
	IssueNegativePrice    IssueType = "negative_price"
	IssueInvalidDiscount  IssueType = "invalid_discount"
	IssueBigDiscount      IssueType = "big_discount"
	IssueRoundPrice       IssueType = "round_price"
	IssueSlowDelivery     IssueType = "slow_delivery_in_stock"
	IssueLongTermInquiry  IssueType = "long_term_inquiry"
	IssueExpiredAction    IssueType = "expired_action"
	IssueOldNewFlag       IssueType = "old_new_flag"
	IssuePermanentAction  IssueType = "permanent_action"
)

// SEO.
const (
	IssueMissingMetaDescription IssueType = "missing_meta_description"
	IssueMetaTooShort           IssueType = "meta_too_short"
	IssueMetaTooLong            IssueType = "meta_too_long"
	IssueMetaSameAsTitle        IssueType = "meta_same_as_title"
	IssueMetaSimilarToTitle     IssueType = "meta_similar_to_title"
	IssueMetaSameAsShortDesc    IssueType = "meta_same_as_short_description"
	IssueTitleTooShort          IssueType = "title_too_short"
	IssueTitleTooLong           IssueType = "title_too_long"
	IssueDuplicateMeta          IssueType = "duplicate_meta"
)
