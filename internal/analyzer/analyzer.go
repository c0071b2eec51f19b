// Package analyzer holds the rule analyzers. Each is a pure function
// over the canonical records: no shared state, no ordering dependency
// between them, findings built independently per dimension.
package analyzer

import (
	"strings"
	"time"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

// Context carries the per-audit knobs the analyzers read. Now is
// injected so stale-content rules stay deterministic under test.
type Context struct {
	ExpectedLanguage     string
	MinDescriptionLength int
	Now                  time.Time
}

func identity(p catalogdomain.ProductRecord) string {
	if p.Code != "" {
		return p.Code
	}
	return p.Name
}

func issue(t catalogdomain.IssueType, sev catalogdomain.Severity, p catalogdomain.ProductRecord, details string, related ...string) catalogdomain.Issue {
	return catalogdomain.Issue{
		Type:            t,
		Severity:        sev,
		Code:            identity(p),
		Name:            p.Name,
		Details:         details,
		RelatedProducts: related,
	}
}

func categoryIssue(t catalogdomain.IssueType, sev catalogdomain.Severity, c catalogdomain.CategoryRecord, details string) catalogdomain.Issue {
	code := c.Code
	if code == "" {
		code = c.Name
	}
	return catalogdomain.Issue{
		Type:     t,
		Severity: sev,
		Code:     code,
		Name:     c.Name,
		Details:  details,
	}
}

const variantDelimiters = "/-_"

// variantFamily returns the shared code prefix of a variant family: the
// text before the last '/', '-' or '_'. A delimiter-free code has no
// family.
func variantFamily(code string) string {
	idx := strings.LastIndexAny(code, variantDelimiters)
	if idx <= 0 {
		return ""
	}
	return code[:idx]
}

// sameFamily reports whether two records count as variants of one
// product: shared non-empty parentCode, or identity codes sharing a
// family prefix. Such pairs are exempt from duplicate-name and
// duplicate-meta checks.
func sameFamily(a, b catalogdomain.ProductRecord) bool {
	if a.ParentCode != "" && a.ParentCode == b.ParentCode {
		return true
	}
	fa, fb := variantFamily(a.Code), variantFamily(b.Code)
	return fa != "" && fa == fb
}

// allSameFamily reports whether every pair in the group is
// variant-related; such groups are skipped entirely by uniqueness rules.
func allSameFamily(group []catalogdomain.ProductRecord) bool {
	for i := 1; i < len(group); i++ {
		if !sameFamily(group[0], group[i]) {
			return false
		}
	}
	return len(group) > 1
}

func relatedCodes(group []catalogdomain.ProductRecord, skip int) []string {
	out := make([]string, 0, len(group)-1)
	for i, p := range group {
		if i != skip {
			out = append(out, identity(p))
		}
	}
	return out
}
