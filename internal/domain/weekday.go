package domain

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// spanishWeekdays long weekday names as stored in working-hour windows (es-ES)
var spanishWeekdays = [7]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

// WeekdayName returns the lowercase Spanish name of the date's weekday
func WeekdayName(date time.Time) string {
	return spanishWeekdays[date.Weekday()]
}

// DisplayWeekday returns the capitalized Spanish weekday name, e.g. "Miércoles"
func DisplayWeekday(day time.Weekday) string {
	return cases.Title(language.Spanish).String(spanishWeekdays[day])
}

// ParseWeekday resolves a stored weekday name to time.Weekday
// Matching ignores case, surrounding spaces and diacritics ("Sabado" == "sábado")
func ParseWeekday(name string) (time.Weekday, bool) {
	key := NormalizeWeekday(name)
	for day, spanish := range spanishWeekdays {
		if NormalizeWeekday(spanish) == key {
			return time.Weekday(day), true
		}
	}
	return 0, false
}

// NormalizeWeekday folds case and strips diacritics for comparison
// Casers and transformers are stateful, so a fresh one is built per call
func NormalizeWeekday(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		stripped = strings.TrimSpace(name)
	}
	return cases.Fold().String(stripped)
}

// SameWeekday reports whether a stored weekday name refers to the given weekday
func SameWeekday(name string, day time.Weekday) bool {
	return NormalizeWeekday(name) == NormalizeWeekday(spanishWeekdays[day])
}
