package feed

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Tag-name aliases under which feeds wrap one product. Matched
// case-insensitively.
var productElementNames = map[string]bool{
	"shopitem": true,
	"item":     true,
	"product":  true,
	"entry":    true,
}

// parseMarkup scans a markup feed for repeating product-like elements.
// The decoder runs non-strict on purpose: real exports are full of
// unescaped ampersands and unclosed tags, and a strict parser would
// reject the whole file over one bad row. CDATA content needs no
// special casing; the tokenizer surfaces it as character data. Repeated
// PARAM blocks become name:value pairs and repeated image tags are
// counted.
func parseMarkup(data []byte) ([]RawRow, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = false
	d.CharsetReader = charset.NewReaderLabel

	var rows []RawRow
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerant scan: whatever was recovered so far stands.
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !productElementNames[strings.ToLower(se.Name.Local)] {
			continue
		}
		node := readNode(d, se)
		if row := itemRow(node); len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type markupNode struct {
	name     string
	text     strings.Builder
	children []*markupNode
}

func readNode(d *xml.Decoder, start xml.StartElement) *markupNode {
	n := &markupNode{name: start.Name.Local}
	for {
		tok, err := d.Token()
		if err != nil {
			return n
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n.children = append(n.children, readNode(d, t))
		case xml.CharData:
			n.text.Write(t)
		case xml.EndElement:
			return n
		}
	}
}

// itemRow flattens one product element into a raw row. Child element
// names become keys as-is; the canonicalizer's alias tables take it from
// there.
func itemRow(n *markupNode) RawRow {
	row := RawRow{}
	params := map[string]string{}
	imageCount := 0

	for _, child := range n.children {
		name := strings.ToUpper(child.name)
		text := strings.TrimSpace(child.text.String())
		switch name {
		case "PARAM", "PARAMETER":
			if pName, pValue := paramPair(child); pName != "" {
				params[pName] = pValue
			}
		case "IMGURL", "IMAGE", "IMGURL_ALTERNATIVE":
			if text != "" {
				imageCount++
				if name != "IMGURL_ALTERNATIVE" {
					setIfEmpty(row, "image", text)
				}
			}
		default:
			if len(child.children) > 0 && text == "" {
				// Container we do not model; keep any first-level text.
				continue
			}
			setIfEmpty(row, child.name, text)
		}
	}

	if len(params) > 0 {
		row[keyParams] = params
	}
	if imageCount > 0 {
		row[keyImageCount] = imageCount
	}
	return row
}

func paramPair(n *markupNode) (string, string) {
	var name, value string
	for _, child := range n.children {
		switch strings.ToUpper(child.name) {
		case "PARAM_NAME", "NAME":
			name = strings.TrimSpace(child.text.String())
		case "VAL", "VALUE":
			value = strings.TrimSpace(child.text.String())
		}
	}
	if name != "" {
		return name, value
	}
	// Flat form: <PARAM>name:value</PARAM>.
	if raw := strings.TrimSpace(n.text.String()); raw != "" {
		if idx := strings.IndexByte(raw, ':'); idx > 0 {
			return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:])
		}
	}
	return "", ""
}

func setIfEmpty(row RawRow, key, value string) {
	if value == "" {
		return
	}
	if existing, ok := row[key].(string); ok && existing != "" {
		return
	}
	row[key] = value
}
