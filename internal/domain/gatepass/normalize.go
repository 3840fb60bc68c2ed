package gatepass

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fencePrefix = regexp.MustCompile("(?i)^```(?:json)?")
	fenceSuffix = regexp.MustCompile("```$")

	labelledDocNo = regexp.MustCompile(`(?i)(?:Document\s*No\.?|Doc\s*No\.?|Challan\s*No\.?|Invoice\s*No\.?)\s*[:\-]?\s*([A-Z0-9\-/]+)`)
	codedDocNo    = regexp.MustCompile(`\b[A-Z]{1,5}[-/]\d{2,}[-/]\d{2,}\b`)
	anyDate       = regexp.MustCompile(`(\d{4}[/-](?:0[1-9]|1[0-2])[/-](?:0[1-9]|[12]\d|3[01]))|((?:0[1-9]|[12]\d|3[01])[/-](?:0[1-9]|1[0-2])[/-]\d{4})`)
	dayFirstDate  = regexp.MustCompile(`^\d{2}[/-]\d{2}[/-]\d{4}$`)
	dateSep       = regexp.MustCompile(`[/-]`)
)

// Key variants accepted for each item field, in precedence order
var (
	indNoKeys       = []string{"IND #", "indNo", "ind", "IND"}
	materialNoKeys  = []string{"materialNo", "Material No", "code"}
	descriptionKeys = []string{"materialDescription", "description", "Material Description"}
	quantityKeys    = []string{"quantityFromRemarks", "quantity", "qty"}

	documentNoKeys = []string{"documentNo", "DocumentNo", "Document No", "DocNo"}
	dateKeys       = []string{"date", "Date", "Challan Date", "Invoice Date"}
)

// CoerceJSON pulls a JSON object out of a model reply that may be wrapped in
// code fences or surrounded by prose. It returns nil when nothing parses.
func CoerceJSON(text string) map[string]any {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}
	t = fencePrefix.ReplaceAllString(t, "")
	t = fenceSuffix.ReplaceAllString(t, "")
	t = strings.TrimSpace(strings.ReplaceAll(t, "```", ""))

	if obj, ok := decodeObject(t); ok {
		return obj
	}

	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start != -1 && end > start {
		if obj, ok := decodeObject(t[start : end+1]); ok {
			return obj
		}
	}
	return nil
}

func decodeObject(s string) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	// reject trailing garbage the way a whole-document parse would
	if dec.More() {
		return nil, false
	}
	return obj, true
}

// CleanValue trims a scalar, strips surrounding double quotes and one
// trailing comma. Empty results and non-scalars yield nil.
func CleanValue(v any) *string {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		s = x
	case json.Number:
		s = x.String()
	case float64, int, int64, bool:
		s = fmt.Sprint(x)
	default:
		return nil
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSuffix(s, ",")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func firstClean(obj map[string]any, keys []string) *string {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if s := CleanValue(v); s != nil {
				return s
			}
		}
	}
	return nil
}

// Normalize converts a raw model reply into a Document, tolerating
// alternative key spellings and dropping rows with no data.
func Normalize(text string) Document {
	doc := Document{Items: []Item{}}
	obj := CoerceJSON(text)
	if obj == nil {
		return doc
	}

	doc.DocumentNo = CleanValue(obj["documentNo"])
	doc.Date = CleanValue(obj["date"])

	source, ok := obj["Items"].([]any)
	if !ok {
		source, _ = obj["items"].([]any)
	}
	for _, raw := range source {
		row, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		item := Item{
			IndNo:               firstClean(row, indNoKeys),
			MaterialNo:          firstClean(row, materialNoKeys),
			MaterialDescription: firstClean(row, descriptionKeys),
			QuantityFromRemarks: firstClean(row, quantityKeys),
		}
		if item.IsEmpty() {
			continue
		}
		doc.Items = append(doc.Items, item)
	}
	return doc
}

// FindDocumentNo scans free text for a document number
func FindDocumentNo(text string) *string {
	if m := labelledDocNo.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
		return &m[1]
	}
	if m := codedDocNo.FindString(text); m != "" {
		return &m
	}
	return nil
}

// FindDate scans free text for a date and returns it as YYYY-MM-DD
func FindDate(text string) *string {
	d := anyDate.FindString(text)
	if d == "" {
		return nil
	}
	if dayFirstDate.MatchString(d) {
		parts := dateSep.Split(d, 3)
		out := parts[2] + "-" + parts[1] + "-" + parts[0]
		return &out
	}
	out := strings.ReplaceAll(d, "/", "-")
	return &out
}

// Resolve merges the three sources of truth for an extraction: keys read
// straight from the parsed reply, the normalized document and regex scans
// over the raw text.
func Resolve(text string) Document {
	parsed := CoerceJSON(text)
	normalized := Normalize(text)

	out := Document{Items: normalized.Items}

	if parsed != nil {
		out.DocumentNo = firstClean(parsed, documentNoKeys)
		out.Date = firstClean(parsed, dateKeys)
	}
	if out.DocumentNo == nil {
		out.DocumentNo = normalized.DocumentNo
	}
	if out.DocumentNo == nil {
		out.DocumentNo = FindDocumentNo(text)
	}
	if out.Date == nil {
		out.Date = normalized.Date
	}
	if out.Date == nil {
		out.Date = FindDate(text)
	}
	return out
}
