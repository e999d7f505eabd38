package export

import (
	"fmt"
	"html/template"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/formstorm/internal/element"
)

// pixelKeys are style keys whose bare numbers are pixel lengths.
var pixelKeys = map[string]bool{
	element.StyleWidth:        true,
	element.StyleHeight:       true,
	element.StylePadding:      true,
	element.StyleMargin:       true,
	element.StyleBorderRadius: true,
	element.StyleBorderWidth:  true,
	element.StyleFontSize:     true,
}

var colorKeys = map[string]bool{
	element.StyleColor:           true,
	element.StyleBackgroundColor: true,
	element.StyleBorderColor:     true,
}

// NormalizeColor returns a hex color as lower-case "#rrggbb". Other
// values, such as named colors, are returned unchanged.
func NormalizeColor(v string) string {
	c, err := colorful.Hex(strings.TrimSpace(v))
	if err != nil {
		return v
	}
	return c.Hex()
}

// cssProperty converts a camelCase style key to a CSS property name.
func cssProperty(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cssValue renders one style value, or "" when it is not safe to emit.
func cssValue(key string, v any) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
		if colorKeys[key] {
			s = NormalizeColor(s)
		}
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
		if pixelKeys[key] {
			s += "px"
		}
	case int:
		s = strconv.Itoa(x)
		if pixelKeys[key] {
			s += "px"
		}
	default:
		s = fmt.Sprint(x)
	}
	if !safeCSS(s) {
		return ""
	}
	return s
}

// safeCSS allows the characters plain CSS values need and nothing that
// could end a declaration or open a URL.
func safeCSS(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
		case strings.ContainsRune("#%.,()- ", r):
		default:
			return false
		}
	}
	return !strings.Contains(strings.ToLower(s), "url(") && !strings.Contains(strings.ToLower(s), "expression(")
}

// InlineStyle renders styles as a CSS declaration list, keys sorted.
// Unsafe values are dropped.
func InlineStyle(styles element.Styles) template.CSS {
	var decls []string
	for _, k := range slices.Sorted(maps.Keys(styles)) {
		if v := cssValue(k, styles[k]); v != "" {
			decls = append(decls, cssProperty(k)+": "+v)
		}
	}
	return template.CSS(strings.Join(decls, "; "))
}
