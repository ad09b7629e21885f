package nlp

import (
	"regexp"
	"strings"
)

// EntityLabel categorizes an extracted span.
type EntityLabel string

const (
	LabelPerson EntityLabel = "PERSON"
	LabelTime   EntityLabel = "TIME"
	LabelDate   EntityLabel = "DATE"
	LabelOther  EntityLabel = "OTHER"
)

// Entity is a labeled substring of the input.
type Entity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
	Start int         `json:"start"`
}

var (
	// "20 feb 2026", "17 february 2026", "20 feb"
	calendarDateRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)(\s+\d{4})?\b`)

	// "today", "tomorrow", "yesterday"
	relativeDayRe = regexp.MustCompile(`\b(today|tomorrow|yesterday)\b`)

	// "monday" .. "sunday", common abbreviations
	weekdayRe = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)\b`)

	// "5 pm", "3pm", "10:30 am" - the colon is optional
	clockTimeRe = regexp.MustCompile(`\b(\d{1,2}(?::\d{2})?\s*(?:am|pm))\b`)

	// "kavita mam", "john sir"
	honorificRe = regexp.MustCompile(`\b([a-z]+)\s+(mam|ma'am|madam|sir)\b`)

	// "dr. smith", "mr patel"
	titleNameRe = regexp.MustCompile(`\b(dr|mr|mrs|ms|prof)\.?\s+([a-z]+)\b`)

	// "to alice", "with alice"
	prepositionNameRe = regexp.MustCompile(`\b(?:to|with)\s+([a-z]+)\b`)

	// "call alice", "meet bob"
	contactVerbNameRe = regexp.MustCompile(`\b(?:call|meet|email|text|tell|ask)\s+([a-z]+)\b`)

	// Capitalized token fallback for mixed-case input
	capitalizedRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
)

// timeWords are tokens that denote time and must never be returned as a
// person, even when capitalized ("Monday" is not a name).
var timeWords = map[string]bool{
	"sun": true, "mon": true, "tue": true, "tues": true, "wed": true,
	"thu": true, "thur": true, "thurs": true, "fri": true, "sat": true,
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "may": true,
	"jun": true, "jul": true, "aug": true, "sep": true, "oct": true,
	"nov": true, "dec": true,
	"january": true, "february": true, "march": true, "april": true,
	"june": true, "july": true, "august": true, "september": true,
	"october": true, "november": true, "december": true,
	"today": true, "tomorrow": true, "yesterday": true,
	"time": true, "date": true, "day": true, "week": true,
	"month": true, "year": true,
}

// nonNameWords are common words that show up after "to"/"with"/"call" without
// being names. Used only to reject person candidates.
var nonNameWords = map[string]bool{
	"the": true, "a": true, "an": true, "me": true, "my": true, "you": true,
	"your": true, "him": true, "her": true, "them": true, "us": true,
	"it": true, "this": true, "that": true, "about": true, "at": true,
	"on": true, "in": true, "by": true, "for": true, "and": true, "or": true,
	"pay": true, "send": true, "submit": true, "call": true, "finish": true,
	"prepare": true, "buy": true, "email": true, "write": true,
	"complete": true, "schedule": true, "book": true, "remind": true,
	"meet": true, "check": true, "review": true, "meeting": true,
	"appointment": true, "task": true, "reminder": true, "project": true,
	"team": true, "everyone": true, "office": true, "bill": true,
	"form": true, "report": true, "deadline": true,
}

// ExtractEntities returns all recognized spans in left-to-right order.
// It never fails; text without entities yields an empty slice.
func ExtractEntities(text string) []Entity {
	lower := strings.ToLower(text)

	var entities []Entity
	entities = append(entities, timeEntities(lower)...)
	entities = append(entities, personEntities(text, lower)...)

	// Order entities by position in the source text
	for i := 0; i < len(entities)-1; i++ {
		for j := i + 1; j < len(entities); j++ {
			if entities[i].Start > entities[j].Start {
				entities[i], entities[j] = entities[j], entities[i]
			}
		}
	}

	return entities
}

// BestTime returns the preferred TIME/DATE span, or "" if none.
// A calendar date wins over any other time expression; otherwise the
// first expression by position is returned.
func BestTime(text string) string {
	lower := strings.ToLower(text)

	// Calendar dates are the most specific expression and take priority
	// even when a weekday or relative day appears earlier in the text.
	if loc := calendarDateRe.FindStringIndex(lower); loc != nil {
		return strings.TrimSpace(lower[loc[0]:loc[1]])
	}

	ents := timeEntities(lower)
	if len(ents) == 0 {
		return ""
	}
	best := ents[0]
	for _, e := range ents[1:] {
		if e.Start < best.Start {
			best = e
		}
	}
	return best.Text
}

// BestPerson returns the preferred PERSON span, or "" if none.
// Rule order: honorific > title > preposition > contact verb > capitalized
// fallback. The first rule producing a valid candidate wins.
func BestPerson(text string) string {
	lower := strings.ToLower(text)

	if m := honorificRe.FindStringSubmatch(lower); m != nil && isNameWord(m[1]) {
		return m[1] + " " + m[2]
	}
	if m := titleNameRe.FindStringSubmatch(lower); m != nil && isNameWord(m[2]) {
		// Preserve the "dr. smith" form including the separator as written.
		return strings.TrimSpace(titleNameRe.FindString(lower))
	}
	if ms := prepositionNameRe.FindAllStringSubmatch(lower, -1); ms != nil {
		for _, m := range ms {
			if isNameWord(m[1]) {
				return m[1]
			}
		}
	}
	if ms := contactVerbNameRe.FindAllStringSubmatch(lower, -1); ms != nil {
		for _, m := range ms {
			if isNameWord(m[1]) {
				return m[1]
			}
		}
	}
	// Fallback for mixed-case input: the first capitalized token past the
	// start of the sentence that is not a time word.
	for _, loc := range capitalizedRe.FindAllStringIndex(text, -1) {
		if loc[0] == 0 {
			continue
		}
		word := text[loc[0]:loc[1]]
		if isNameWord(strings.ToLower(word)) {
			return word
		}
	}
	return ""
}

// isNameWord reports whether w can be a person name: it must not be a
// time-denoting word and not a common non-name word.
func isNameWord(w string) bool {
	if len(w) < 2 {
		return false
	}
	if timeWords[w] {
		return false
	}
	if nonNameWords[w] {
		return false
	}
	return true
}

func timeEntities(lower string) []Entity {
	var ents []Entity

	for _, loc := range calendarDateRe.FindAllStringIndex(lower, -1) {
		ents = append(ents, Entity{Text: lower[loc[0]:loc[1]], Label: LabelDate, Start: loc[0]})
	}
	for _, loc := range relativeDayRe.FindAllStringIndex(lower, -1) {
		if covered(ents, loc[0]) {
			continue
		}
		ents = append(ents, Entity{Text: lower[loc[0]:loc[1]], Label: LabelDate, Start: loc[0]})
	}
	for _, loc := range weekdayRe.FindAllStringIndex(lower, -1) {
		if covered(ents, loc[0]) {
			continue
		}
		ents = append(ents, Entity{Text: lower[loc[0]:loc[1]], Label: LabelDate, Start: loc[0]})
	}
	for _, loc := range clockTimeRe.FindAllStringIndex(lower, -1) {
		if covered(ents, loc[0]) {
			continue
		}
		ents = append(ents, Entity{Text: lower[loc[0]:loc[1]], Label: LabelTime, Start: loc[0]})
	}

	return ents
}

func personEntities(text, lower string) []Entity {
	person := BestPerson(text)
	if person == "" {
		return nil
	}
	start := strings.Index(lower, strings.ToLower(person))
	if start < 0 {
		start = 0
	}
	return []Entity{{Text: person, Label: LabelPerson, Start: start}}
}

// covered reports whether position start falls inside an already
// extracted span, so a calendar date is not re-reported through the
// shorter patterns it contains.
func covered(ents []Entity, start int) bool {
	for _, e := range ents {
		if start >= e.Start && start < e.Start+len(e.Text) {
			return true
		}
	}
	return false
}
