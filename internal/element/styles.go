package element

import "maps"

// Well-known style keys. Any other key is carried through untouched.
const (
	StyleWidth           = "width"
	StyleHeight          = "height"
	StylePadding         = "padding"
	StyleMargin          = "margin"
	StyleBackgroundColor = "backgroundColor"
	StyleBorderRadius    = "borderRadius"
	StyleBorderWidth     = "borderWidth"
	StyleBorderColor     = "borderColor"
	StyleBorderStyle     = "borderStyle"
	StyleFontSize        = "fontSize"
	StyleFontWeight      = "fontWeight"
	StyleColor           = "color"
	StyleTextAlign       = "textAlign"
	StyleBoxShadow       = "boxShadow"
	StyleOpacity         = "opacity"
)

// Styles is a sparse map of visual style keys to string or number values.
// A missing key means unset.
type Styles map[string]any

// String returns the value of key if it is a string.
func (s Styles) String(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// Number returns the value of key as a float64 if it is numeric.
func (s Styles) Number(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Merge returns a new map with patch laid over s. Nil values in patch
// delete the key. s is not modified.
func (s Styles) Merge(patch Styles) Styles {
	out := make(Styles, len(s)+len(patch))
	maps.Copy(out, s)
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Clone returns a copy of s. A nil map clones to an empty one.
func (s Styles) Clone() Styles {
	out := make(Styles, len(s))
	maps.Copy(out, s)
	return out
}
