package extraction

import "github.com/abadojack/whatlanggo"

// DetectLanguage returns the ISO 639-1 code of text, or an empty string when unknown.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}
