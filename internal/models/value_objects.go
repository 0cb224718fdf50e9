package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValidationError reports a single field failing a validation rule.
type ValidationError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Rule)
}

func newValidationError(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule}
}

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
)

// Email is a normalized email address: trimmed and lowercased.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(normalized) {
		return Email{}, newValidationError("email", "must be a valid email address")
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

// Username is the part before the @.
func (e Email) Username() string {
	at := strings.LastIndex(e.value, "@")
	return e.value[:at]
}

// Domain is the part after the @.
func (e Email) Domain() string {
	at := strings.LastIndex(e.value, "@")
	return e.value[at+1:]
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// Phone is a phone number with its internal whitespace collapsed. Two phones
// are equal when their digits match, regardless of formatting.
type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !phonePattern.MatchString(trimmed) {
		return Phone{}, newValidationError("phone", "must be a valid phone number")
	}
	normalized := whitespacePattern.ReplaceAllString(trimmed, " ")
	if nonDigitPattern.ReplaceAllString(normalized, "") == "" {
		return Phone{}, newValidationError("phone", "must contain at least one digit")
	}
	return Phone{value: normalized}, nil
}

func (p Phone) String() string {
	return p.value
}

// DigitsOnly strips every non-digit character.
func (p Phone) DigitsOnly() string {
	return nonDigitPattern.ReplaceAllString(p.value, "")
}

func (p Phone) Equals(other Phone) bool {
	return p.DigitsOnly() == other.DigitsOnly()
}

// URL is a validated absolute URL.
type URL struct {
	value string
}

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	parsed, err := url.Parse(trimmed)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return URL{}, newValidationError("url", "must be a valid absolute URL")
	}
	return URL{value: trimmed}, nil
}

func (u URL) String() string {
	return u.value
}

func (u URL) Host() string {
	parsed, _ := url.Parse(u.value)
	return parsed.Host
}

func (u URL) Scheme() string {
	parsed, _ := url.Parse(u.value)
	return parsed.Scheme
}

// SalaryRange is an inclusive min/max salary pair with min <= max.
type SalaryRange struct {
	Min float64
	Max float64
}

func NewSalaryRange(min, max float64) (SalaryRange, error) {
	if min <= 0 {
		return SalaryRange{}, newValidationError("salaryMin", "must be a positive number")
	}
	if max <= 0 {
		return SalaryRange{}, newValidationError("salaryMax", "must be a positive number")
	}
	if min > max {
		return SalaryRange{}, ErrInvalidSalaryRange
	}
	return SalaryRange{Min: min, Max: max}, nil
}

// Contains reports whether the salary falls inside the range, inclusive.
func (r SalaryRange) Contains(salary float64) bool {
	return salary >= r.Min && salary <= r.Max
}

// Overlaps reports whether the two ranges share at least one value.
func (r SalaryRange) Overlaps(other SalaryRange) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

func (r SalaryRange) Span() float64 {
	return r.Max - r.Min
}

func (r SalaryRange) Average() float64 {
	return (r.Min + r.Max) / 2
}

// Format renders the range with the given ISO 4217 currency code, for example
// "$50,000 - $70,000". An unknown code falls back to a plain rendering.
func (r SalaryRange) Format(currencyCode string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("%.0f - %.0f %s", r.Min, r.Max, currencyCode)
	}
	printer := message.NewPrinter(language.English)
	return printer.Sprintf("%v - %v", currency.Symbol(unit.Amount(r.Min)), currency.Symbol(unit.Amount(r.Max)))
}

// Location is a country/city pair with an optional zip code.
type Location struct {
	Country string
	City    string
	ZipCode *string
}

func NewLocation(country, city string, zipCode *string) (Location, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return Location{}, newValidationError("country", "must not be empty")
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return Location{}, newValidationError("city", "must not be empty")
	}
	location := Location{Country: country, City: city}
	if zipCode != nil {
		trimmed := strings.TrimSpace(*zipCode)
		location.ZipCode = &trimmed
	}
	return location, nil
}

// FullAddress renders the location, zip code first when present.
func (l Location) FullAddress() string {
	if l.ZipCode != nil && *l.ZipCode != "" {
		return fmt.Sprintf("%s %s, %s", *l.ZipCode, l.City, l.Country)
	}
	return fmt.Sprintf("%s, %s", l.City, l.Country)
}

func (l Location) SameCountry(other Location) bool {
	return strings.EqualFold(l.Country, other.Country)
}

func (l Location) SameCity(other Location) bool {
	return l.SameCountry(other) && strings.EqualFold(l.City, other.City)
}

func (l Location) Equals(other Location) bool {
	if !l.SameCity(other) {
		return false
	}
	switch {
	case l.ZipCode == nil && other.ZipCode == nil:
		return true
	case l.ZipCode != nil && other.ZipCode != nil:
		return *l.ZipCode == *other.ZipCode
	}
	return false
}
