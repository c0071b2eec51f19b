// Package duplicate groups products by identical or near-identical
// description text. It is one of the independent analysis passes feeding
// the report; it never mutates its input.
package duplicate

import (
	"fmt"
	"math"
	"strings"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
	"github.com/smallbiznis/feedscope/internal/textutil"
)

const (
	// MinDescriptionLength gates the passes: shorter descriptions carry
	// too little signal for similarity to mean anything.
	MinDescriptionLength = 50

	// DefaultNearLimit caps the pairwise pass at the first N unique
	// descriptions, bounding worst-case comparisons at ~N²/2.
	DefaultNearLimit = 500

	nearThreshold = 0.8
	excerptLength = 120
)

// Result carries the duplicate groups plus the issues derived from them.
type Result struct {
	Groups []catalogdomain.DuplicateGroup
	Issues []catalogdomain.Issue
}

type candidate struct {
	code string
	name string
	text string
}

// Detect runs the exact pass (literal equality of stripped, lowercased
// descriptions) and then the bounded near pass (Jaccard > 0.8 over the
// remaining unique descriptions, capped at nearLimit records).
func Detect(products []catalogdomain.ProductRecord, nearLimit int) Result {
	if nearLimit <= 0 {
		nearLimit = DefaultNearLimit
	}

	candidates := make([]candidate, 0, len(products))
	order := make([]string, 0, len(products))
	byText := make(map[string][]candidate)
	for _, p := range products {
		text := strings.ToLower(textutil.StripHTML(p.Description))
		if len([]rune(text)) <= MinDescriptionLength {
			continue
		}
		c := candidate{code: identity(p), name: p.Name, text: text}
		if _, seen := byText[text]; !seen {
			order = append(order, text)
		}
		byText[text] = append(byText[text], c)
		candidates = append(candidates, c)
	}

	var res Result

	// Exact pass.
	var unique []candidate
	for _, text := range order {
		group := byText[text]
		if len(group) < 2 {
			unique = append(unique, group[0])
			continue
		}
		codes := make([]string, len(group))
		for i, c := range group {
			codes[i] = c.code
		}
		res.Groups = append(res.Groups, catalogdomain.DuplicateGroup{
			Type:       catalogdomain.DuplicateExact,
			Similarity: 100,
			Products:   codes,
			Excerpt:    excerpt(text),
		})
		for i, c := range group {
			res.Issues = append(res.Issues, catalogdomain.Issue{
				Type:            catalogdomain.IssueDuplicateDescription,
				Severity:        catalogdomain.SeverityWarning,
				Code:            c.code,
				Name:            c.name,
				Details:         fmt.Sprintf("description identical to %d other products", len(group)-1),
				RelatedProducts: without(codes, i),
			})
		}
	}

	// Near pass, bounded.
	if len(unique) > nearLimit {
		unique = unique[:nearLimit]
	}
	groupOf := make(map[string]int) // code -> index into res.Groups
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			sim := textutil.Similarity(unique[i].text, unique[j].text)
			if sim <= nearThreshold {
				continue
			}
			pct := int(math.Round(sim * 100))
			gi, iKnown := groupOf[unique[i].code]
			gj, jKnown := groupOf[unique[j].code]
			switch {
			case iKnown && jKnown:
				// A pair bridging two existing groups merges them; a
				// product belongs to at most one group.
				if gi != gj {
					for _, code := range res.Groups[gj].Products {
						res.Groups[gi].Products = appendUnique(res.Groups[gi].Products, code)
						groupOf[code] = gi
					}
					res.Groups[gj].Products = nil
				}
			case iKnown:
				res.Groups[gi].Products = appendUnique(res.Groups[gi].Products, unique[j].code)
				groupOf[unique[j].code] = gi
			case jKnown:
				res.Groups[gj].Products = appendUnique(res.Groups[gj].Products, unique[i].code)
				groupOf[unique[i].code] = gj
			default:
				res.Groups = append(res.Groups, catalogdomain.DuplicateGroup{
					Type:       catalogdomain.DuplicateNear,
					Similarity: pct,
					Products:   []string{unique[i].code, unique[j].code},
					Excerpt:    excerpt(unique[i].text),
				})
				idx := len(res.Groups) - 1
				groupOf[unique[i].code] = idx
				groupOf[unique[j].code] = idx
			}
			res.Issues = append(res.Issues, catalogdomain.Issue{
				Type:            catalogdomain.IssueNearDuplicate,
				Severity:        catalogdomain.SeverityWarning,
				Code:            unique[i].code,
				Name:            unique[i].name,
				Details:         fmt.Sprintf("description %d%% similar to %s", pct, unique[j].code),
				RelatedProducts: []string{unique[j].code},
			})
		}
	}

	// Drop groups emptied by merging.
	kept := res.Groups[:0]
	for _, g := range res.Groups {
		if len(g.Products) > 0 {
			kept = append(kept, g)
		}
	}
	res.Groups = kept

	return res
}

func identity(p catalogdomain.ProductRecord) string {
	if p.Code != "" {
		return p.Code
	}
	return p.Name
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return string(runes[:excerptLength]) + "…"
}

func without(codes []string, skip int) []string {
	out := make([]string, 0, len(codes)-1)
	for i, c := range codes {
		if i != skip {
			out = append(out, c)
		}
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
