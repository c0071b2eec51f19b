// Package textutil holds the stateless text analysis helpers the
// analyzers and the duplicate engine share. Every function is pure; the
// literal pattern sets live in named constants/vars so each detector can
// be tested in isolation.
package textutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	collapseWS = regexp.MustCompile(`\s+`)
	tagPattern = regexp.MustCompile(`<[^>]*>`)
)

// StripHTML removes markup from s and returns plain text with entities
// decoded and runs of whitespace collapsed to a single space.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	text := s
	if strings.ContainsRune(s, '<') {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			text = doc.Text()
		} else {
			text = tagPattern.ReplaceAllString(s, " ")
		}
	}
	return strings.TrimSpace(collapseWS.ReplaceAllString(text, " "))
}

const minTokenLen = 3

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:!?()[]{}\"'")
		if len([]rune(w)) >= minTokenLen {
			set[w] = struct{}{}
		}
	}
	return set
}

// Similarity returns the Jaccard index of the word sets of a and b,
// restricted to tokens of three or more characters. Either side being
// empty yields 0.
func Similarity(a, b string) float64 {
	sa, sb := wordSet(a), wordSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	common := 0
	for w := range sa {
		if _, ok := sb[w]; ok {
			common++
		}
	}
	union := len(sa) + len(sb) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

// Language codes the detector can return.
const (
	LanguageCzech   = "cs"
	LanguageGerman  = "de"
	LanguageEnglish = "en"
	LanguageUnknown = "unknown"
)

const (
	functionWordWeight = 2
	diacriticWeight    = 10
	languageScoreFloor = 3
)

var languageFunctionWords = map[string][]string{
	LanguageCzech:   {"je", "se", "na", "do", "pro", "nebo", "jako", "tak", "ale", "pokud", "jsou", "být", "mít", "který", "které", "tento"},
	LanguageGerman:  {"der", "die", "das", "und", "ist", "mit", "für", "von", "auf", "ein", "eine", "nicht", "sich", "auch", "werden", "oder"},
	LanguageEnglish: {"the", "and", "is", "of", "to", "in", "for", "with", "that", "this", "are", "from", "your", "our", "you", "will"},
}

var languageDiacritics = map[string]string{
	LanguageCzech:  "ěščřžýáíéůúťďň",
	LanguageGerman: "äöüß",
}

// Fixed tie-break priority: Czech feeds dominate the input base.
var languagePriority = []string{LanguageCzech, LanguageGerman, LanguageEnglish}

// DetectLanguage guesses cs, de or en from function-word hits (weight 2)
// and diacritic occurrences (weight 10). Scores below an absolute floor
// return "unknown"; ties resolve by fixed priority order.
func DetectLanguage(s string) string {
	text := strings.ToLower(StripHTML(s))
	if text == "" {
		return LanguageUnknown
	}
	words := make(map[string]int)
	for _, w := range strings.Fields(text) {
		words[strings.Trim(w, ".,;:!?()")]++
	}

	scores := make(map[string]int, len(languageFunctionWords))
	for lang, fns := range languageFunctionWords {
		score := 0
		for _, fw := range fns {
			score += words[fw] * functionWordWeight
		}
		for _, r := range text {
			if strings.ContainsRune(languageDiacritics[lang], r) {
				score += diacriticWeight
			}
		}
		scores[lang] = score
	}

	best, bestScore := LanguageUnknown, 0
	for _, lang := range languagePriority {
		if scores[lang] > bestScore {
			best, bestScore = lang, scores[lang]
		}
	}
	if bestScore < languageScoreFloor {
		return LanguageUnknown
	}
	return best
}

// Placeholder pattern sets. Over-matching is accepted: a hit means the
// text needs human review, not that it is certainly broken.
var (
	loremPatterns = []string{
		"lorem ipsum", "dolor sit amet", "consectetur adipiscing",
	}
	testContentPatterns = []string{
		"test test", "testovací", "testovaci text", "zde bude popis",
		"doplnit popis", "todo", "tbd", "xxx", "asdf", "qwert", "12345",
	}
	templateBrace = regexp.MustCompile(`\{\{[^}]*\}\}|\{%[^}]*%\}|\[\[[^\]]*\]\]`)
)

// HasLoremIpsum reports whether s contains classic filler text.
func HasLoremIpsum(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range loremPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// HasTestContent reports placeholder markers, unresolved template syntax
// or keyboard-mash strings.
func HasTestContent(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range testContentPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return templateBrace.MatchString(s)
}

const (
	maxNestingDepth     = 8
	maxEmptyContainers  = 5
	maxLineBreakRuns    = 3
	lineBreakRunMinSize = 3
)

var (
	emptyContainer = regexp.MustCompile(`(?i)<(div|span|p)[^>]*>\s*</(div|span|p)>`)
	lineBreakRun   = regexp.MustCompile(`(?i)(?:<br\s*/?\s*>\s*){3,}`)
)

// HasExcessiveHTML flags markup only in clearly pathological shapes: tag
// nesting deeper than 8, more than 5 empty container tags, or more than 3
// runs of 3+ consecutive line breaks. Normal rich text stays unflagged.
func HasExcessiveHTML(s string) bool {
	if !strings.ContainsRune(s, '<') {
		return false
	}
	if len(emptyContainer.FindAllString(s, -1)) > maxEmptyContainers {
		return true
	}
	if len(lineBreakRun.FindAllString(s, -1)) > maxLineBreakRuns {
		return true
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return false
	}
	depth := 0
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			if d := elementDepth(n, 0); d > depth {
				depth = d
			}
		}
	})
	return depth > maxNestingDepth
}

func elementDepth(n *html.Node, depth int) int {
	max := depth
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if d := elementDepth(c, depth+1); d > max {
			max = d
		}
	}
	return max
}

var urlPattern = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+\.\S+`)

// HasURLs reports whether s contains a bare URL.
func HasURLs(s string) bool {
	return urlPattern.MatchString(s)
}

const emojiSpamThreshold = 5

// HasEmojiSpam reports more than five emoji code points in s.
func HasEmojiSpam(s string) bool {
	count := 0
	for _, r := range s {
		if isEmoji(r) {
			count++
			if count > emojiSpamThreshold {
				return true
			}
		}
	}
	return false
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, transport, supplemental
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r == 0x2764 || r == 0x2B50:
		return true
	}
	return false
}

var (
	htmlTag        = regexp.MustCompile(`<\s*(/?)\s*([a-zA-Z][a-zA-Z0-9]*)[^>]*?(/?)\s*>`)
	voidElements   = map[string]bool{"br": true, "img": true, "hr": true, "input": true, "meta": true, "link": true, "source": true, "wbr": true}
	inlineStyle    = regexp.MustCompile(`(?i)\sstyle\s*=\s*["']`)
)

// HasHTMLErrors runs a stack-based tag balance check over s. Self-closing
// and void tags are exempt. It reports unclosed or mismatched tags.
func HasHTMLErrors(s string) bool {
	if !strings.ContainsRune(s, '<') {
		return false
	}
	var stack []string
	for _, m := range htmlTag.FindAllStringSubmatch(s, -1) {
		closing := m[1] == "/"
		name := strings.ToLower(m[2])
		selfClosed := m[3] == "/"
		if voidElements[name] || selfClosed {
			continue
		}
		if !closing {
			stack = append(stack, name)
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != name {
			return true
		}
		stack = stack[:len(stack)-1]
	}
	return len(stack) != 0
}

// HasInlineStyles reports inline style attributes in markup.
func HasInlineStyles(s string) bool {
	return inlineStyle.MatchString(s)
}

// NormalizeSpace lowercases s and collapses whitespace, for
// case/whitespace-insensitive comparisons.
func NormalizeSpace(s string) string {
	return strings.ToLower(strings.TrimSpace(collapseWS.ReplaceAllString(s, " ")))
}
