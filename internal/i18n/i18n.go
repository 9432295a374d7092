// Package i18n resolves display strings from flat per-language dictionaries.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

// Localizer translates keys. Unresolved keys fall back to English and then to
// the key itself.
type Localizer struct {
	dictionaries map[string]map[string]string
	matcher      language.Matcher
	tags         []language.Tag
}

func New() *Localizer {
	return NewWithDictionaries(map[string]map[string]string{
		"en": en,
		"sv": sv,
	})
}

// NewWithDictionaries builds a Localizer over custom dictionaries keyed by
// BCP 47 base language. English is always the first fallback when present.
func NewWithDictionaries(dictionaries map[string]map[string]string) *Localizer {
	tags := []language.Tag{language.English}
	for lang := range dictionaries {
		tag, err := language.Parse(lang)
		if err != nil || tag == language.English {
			continue
		}
		tags = append(tags, tag)
	}

	return &Localizer{
		dictionaries: dictionaries,
		matcher:      language.NewMatcher(tags),
		tags:         tags,
	}
}

// Translate returns the string for key in lang.
func (l *Localizer) Translate(key, lang string) string {
	if v, ok := l.dictionaries[l.Resolve(lang)][key]; ok {
		return v
	}
	if v, ok := l.dictionaries[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// Resolve maps a requested language ("sv-SE", "en_GB") to a dictionary name.
func (l *Localizer) Resolve(lang string) string {
	if _, ok := l.dictionaries[lang]; ok {
		return lang
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return DefaultLanguage
	}

	_, index, confidence := l.matcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}

	base, _ := l.tags[index].Base()
	return base.String()
}

// Format translates key and substitutes {name} placeholders from args.
func (l *Localizer) Format(key, lang string, args map[string]string) string {
	s := l.Translate(key, lang)
	if len(args) == 0 {
		return s
	}

	oldnew := make([]string, 0, len(args)*2)
	for name, value := range args {
		oldnew = append(oldnew, "{"+name+"}", value)
	}

	return strings.NewReplacer(oldnew...).Replace(s)
}

// FormatDate renders "02 January 2006" with a translated month name.
func (l *Localizer) FormatDate(t time.Time, lang string) string {
	return t.Format("02") + " " + l.Translate(t.Month().String(), lang) + " " + t.Format("2006")
}
