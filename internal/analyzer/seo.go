package analyzer

import (
	"fmt"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/textutil"
)

const (
	metaMinLength  = 70
	metaMaxLength  = 160
	titleMinLength = 10
	titleMaxLength = 70

	// Above this similarity a distinct meta description adds nothing
	// over the title.
	metaSimilarityCeiling = 0.9
)

// SEO checks meta descriptions and titles: presence, length windows and
// uniqueness. Duplicate metas inside one variant family are expected and
// exempt.
func SEO(products []catalogdomain.ProductRecord) []catalogdomain.Issue {
	var issues []catalogdomain.Issue

	for _, p := range products {
		title := p.MetaTitle
		if title == "" {
			title = p.Name
		}

		if n := len([]rune(title)); title != "" {
			if n < titleMinLength {
				issues = append(issues, issue(catalogdomain.IssueTitleTooShort, catalogdomain.SeverityWarning, p,
					fmt.Sprintf("title has %d characters, minimum %d", n, titleMinLength)))
			} else if n > titleMaxLength {
				issues = append(issues, issue(catalogdomain.IssueTitleTooLong, catalogdomain.SeverityWarning, p,
					fmt.Sprintf("title has %d characters, maximum %d", n, titleMaxLength)))
			}
		}

		meta := p.MetaDescription
		if meta == "" {
			issues = append(issues, issue(catalogdomain.IssueMissingMetaDescription, catalogdomain.SeverityWarning, p,
				"missing meta description"))
			continue
		}

		if n := len([]rune(meta)); n < metaMinLength {
			issues = append(issues, issue(catalogdomain.IssueMetaTooShort, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("meta description has %d characters, minimum %d", n, metaMinLength)))
		} else if n > metaMaxLength {
			issues = append(issues, issue(catalogdomain.IssueMetaTooLong, catalogdomain.SeverityWarning, p,
				fmt.Sprintf("meta description has %d characters, maximum %d", n, metaMaxLength)))
		}

		normalizedMeta := textutil.NormalizeSpace(meta)
		switch {
		case normalizedMeta == textutil.NormalizeSpace(title):
			issues = append(issues, issue(catalogdomain.IssueMetaSameAsTitle, catalogdomain.SeverityError, p,
				"meta description is identical to the title"))
		case textutil.Similarity(meta, title) > metaSimilarityCeiling:
			issues = append(issues, issue(catalogdomain.IssueMetaSimilarToTitle, catalogdomain.SeverityWarning, p,
				"meta description is nearly identical to the title"))
		}

		if p.ShortDescription != "" && normalizedMeta == textutil.NormalizeSpace(textutil.StripHTML(p.ShortDescription)) {
			issues = append(issues, issue(catalogdomain.IssueMetaSameAsShortDesc, catalogdomain.SeverityWarning, p,
				"meta description copies the short description"))
		}
	}

	issues = append(issues, duplicateField(products, catalogdomain.IssueDuplicateMeta, catalogdomain.SeverityError, true,
		func(p catalogdomain.ProductRecord) string { return textutil.NormalizeSpace(p.MetaDescription) })...)

	return issues
}
