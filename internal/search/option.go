package search

import "strings"

const (
	separator    = '-'
	escape       = '\\'
	headerWord   = "header"
	headerSuffix = "-" + headerWord
)

// OptionValue identifies an option. It is carried as structured data so the
// dispatcher never has to split strings; String gives the wire form.
type OptionValue struct {
	Header     bool
	SectionKey string // set for headers
	ItemType   string // set for items
	ItemID     string // set for items
}

// HeaderValue builds the value of a section header
func HeaderValue(sectionKey string) OptionValue {
	return OptionValue{Header: true, SectionKey: sectionKey}
}

// ItemValue builds the value of a selectable item
func ItemValue(itemType, itemID string) OptionValue {
	return OptionValue{ItemType: itemType, ItemID: itemID}
}

// String encodes the value as "{sectionKey}-header" or "{itemType}-{itemId}".
// Separator and escape characters inside the type are backslash-escaped, so
// the first unescaped separator always splits type from id. Inside the id
// the escape character is doubled and a trailing "header" is written as
// `\header`, so no item ever ends in the bare header suffix.
func (v OptionValue) String() string {
	if v.Header {
		return v.SectionKey + headerSuffix
	}
	return escapeType(v.ItemType) + string(separator) + escapeID(v.ItemID)
}

// ParseOptionValue decodes the wire form. Values ending in the bare "-header"
// suffix are headers; anything without an unescaped separator, or with an
// empty type or id, is malformed.
func ParseOptionValue(s string) (OptionValue, bool) {
	if strings.HasSuffix(s, headerSuffix) {
		key := strings.TrimSuffix(s, headerSuffix)
		if key == "" {
			return OptionValue{}, false
		}
		return HeaderValue(key), true
	}

	var typ strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == escape && i+1 < len(s):
			i++
			typ.WriteByte(s[i])
		case c == separator:
			id := unescape(s[i+1:])
			if typ.Len() == 0 || id == "" {
				return OptionValue{}, false
			}
			return ItemValue(typ.String(), id), true
		default:
			typ.WriteByte(c)
		}
	}
	return OptionValue{}, false
}

func escapeType(t string) string {
	if !strings.ContainsAny(t, `-\`) {
		return t
	}
	var b strings.Builder
	for i := 0; i < len(t); i++ {
		if t[i] == separator || t[i] == escape {
			b.WriteByte(escape)
		}
		b.WriteByte(t[i])
	}
	return b.String()
}

func escapeID(id string) string {
	tail := ""
	if strings.HasSuffix(id, headerWord) {
		id = strings.TrimSuffix(id, headerWord)
		tail = string(escape) + headerWord
	}
	return strings.ReplaceAll(id, string(escape), `\\`) + tail
}

func unescape(s string) string {
	if !strings.ContainsRune(s, escape) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == escape && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Option is one renderable row, either a header or a selectable item
type Option struct {
	Value OptionValue
	Label string
	Item  *Item // nil for headers
}

// Selectable reports whether the option may be dispatched
func (o Option) Selectable() bool {
	return !o.Value.Header
}
