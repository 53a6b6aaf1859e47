package assistant

import (
	"regexp"
	"strings"

	"atelier/models"
)

// Extraction patterns. Each takes the first match only.
var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	isoDateRe  = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	usDateRe   = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`)
	clockRe    = regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s?(?:am|pm)?)\b`)
	anyDigitRe = regexp.MustCompile(`\d`)
)

// ExtractBookingFields runs deterministic keyword/regex extraction over a
// single user message. It never unsets known fields; it only reports what
// this message contained. The name fallback is best-effort: with no name
// known yet, a short message with no digits is taken as the sender's name
// once any recognized email/phone has been stripped out.
func ExtractBookingFields(message string, current *models.BookingDraft) models.BookingDraft {
	var out models.BookingDraft
	lower := strings.ToLower(message)

	for _, svc := range models.AllServiceTypes {
		if strings.Contains(lower, string(svc)) {
			out.ServiceType = svc
			break
		}
	}

	if m := emailRe.FindString(message); m != "" {
		out.Email = m
	}
	if m := phoneRe.FindString(message); m != "" {
		out.Phone = m
	}

	if m := isoDateRe.FindString(message); m != "" {
		out.PreferredDate = m
	} else if m := usDateRe.FindString(message); m != "" {
		out.PreferredDate = m
	}

	if m := clockRe.FindString(message); m != "" {
		out.PreferredTime = m
	}

	if current == nil || current.Name == "" {
		if name := guessName(message, out); name != "" {
			out.Name = name
		}
	}

	return out
}

// guessName treats the message as a name when, after removing any
// extracted email/phone, 2-4 digit-free tokens remain.
func guessName(message string, found models.BookingDraft) string {
	rest := message
	if found.Email != "" {
		rest = strings.Replace(rest, found.Email, "", 1)
	}
	if found.Phone != "" {
		rest = strings.Replace(rest, found.Phone, "", 1)
	}

	words := strings.Fields(rest)
	if len(words) < 2 || len(words) > 4 {
		return ""
	}
	for i, w := range words {
		words[i] = strings.Trim(w, ",.;:!?")
	}
	candidate := strings.TrimSpace(strings.Join(words, " "))
	if candidate == "" || anyDigitRe.MatchString(candidate) {
		return ""
	}
	return candidate
}
