package analyzer

import (
	"fmt"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/textutil"
)

// Descriptions shorter than this carry too little text for the language
// heuristic to be trustworthy.
const languageCheckMinLength = 40

// Quality covers data-quality defects: duplicate identity fields,
// malformed or abusive markup, placeholder content and wrong-language
// text. Duplicate names and EANs are exempt inside variant families;
// duplicate codes never are.
func Quality(products []catalogdomain.ProductRecord, ctx Context) []catalogdomain.Issue {
	var issues []catalogdomain.Issue

	issues = append(issues, duplicateField(products, catalogdomain.IssueDuplicateCode, catalogdomain.SeverityError, false,
		func(p catalogdomain.ProductRecord) string { return p.Code })...)
	issues = append(issues, duplicateField(products, catalogdomain.IssueDuplicateEAN, catalogdomain.SeverityError, true,
		func(p catalogdomain.ProductRecord) string { return p.EAN })...)
	issues = append(issues, duplicateField(products, catalogdomain.IssueDuplicateName, catalogdomain.SeverityWarning, true,
		func(p catalogdomain.ProductRecord) string { return textutil.NormalizeSpace(p.Name) })...)

	for _, p := range products {
		text := p.Description
		if text == "" {
			text = p.ShortDescription
		}
		if text == "" {
			continue
		}

		if textutil.HasHTMLErrors(text) {
			issues = append(issues, issue(catalogdomain.IssueHTMLErrors, catalogdomain.SeverityWarning, p,
				"description contains unbalanced HTML tags"))
		}
		if textutil.HasInlineStyles(text) {
			issues = append(issues, issue(catalogdomain.IssueInlineStyles, catalogdomain.SeverityWarning, p,
				"description uses inline styles"))
		}
		if textutil.HasExcessiveHTML(text) {
			issues = append(issues, issue(catalogdomain.IssueExcessiveHTML, catalogdomain.SeverityWarning, p,
				"description markup is excessively nested or padded"))
		}
		if textutil.HasLoremIpsum(text) {
			issues = append(issues, issue(catalogdomain.IssueLoremIpsum, catalogdomain.SeverityWarning, p,
				"description contains lorem ipsum filler"))
		}
		if textutil.HasTestContent(text) {
			issues = append(issues, issue(catalogdomain.IssueTestContent, catalogdomain.SeverityWarning, p,
				"description contains placeholder or test content"))
		}
		if textutil.HasURLs(text) {
			issues = append(issues, issue(catalogdomain.IssueURLInText, catalogdomain.SeverityWarning, p,
				"description contains raw URLs"))
		}
		if textutil.HasEmojiSpam(text) {
			issues = append(issues, issue(catalogdomain.IssueEmojiSpam, catalogdomain.SeverityWarning, p,
				"description contains excessive emoji"))
		}

		if ctx.ExpectedLanguage != "" {
			plain := textutil.StripHTML(text)
			if len([]rune(plain)) >= languageCheckMinLength {
				if lang := textutil.DetectLanguage(plain); lang != textutil.LanguageUnknown && lang != ctx.ExpectedLanguage {
					issues = append(issues, issue(catalogdomain.IssueWrongLanguage, catalogdomain.SeverityWarning, p,
						fmt.Sprintf("description looks like %q, expected %q", lang, ctx.ExpectedLanguage)))
				}
			}
		}
	}
	return issues
}

func duplicateField(products []catalogdomain.ProductRecord, t catalogdomain.IssueType, sev catalogdomain.Severity, variantExempt bool, key func(catalogdomain.ProductRecord) string) []catalogdomain.Issue {
	groups := make(map[string][]catalogdomain.ProductRecord)
	var order []string
	for _, p := range products {
		k := key(p)
		if k == "" {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], p)
	}

	var issues []catalogdomain.Issue
	for _, k := range order {
		group := groups[k]
		if len(group) < 2 {
			continue
		}
		if variantExempt && allSameFamily(group) {
			continue
		}
		issues = append(issues, issue(t, sev, group[0],
			fmt.Sprintf("value %q shared by %d products", k, len(group)),
			relatedCodes(group, 0)...))
	}
	return issues
}
