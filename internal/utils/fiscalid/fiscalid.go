// Package fiscalid validates and formats Dominican fiscal identifiers:
// the 11-digit personal cédula and the 9-digit business RNC. Both carry a
// checksum digit; the two formats use different algorithms.
package fiscalid

import (
	"strings"
	"unicode"
)

const (
	cedulaLength = 11
	rncLength    = 9
)

// cedulaWeights is the repeating positional weight sequence for the cédula check.
var cedulaWeights = [cedulaLength]int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1}

// rncWeights applies to the first 8 digits of an RNC.
var rncWeights = [rncLength - 1]int{7, 9, 8, 6, 5, 4, 3, 2}

// Validate reports whether raw is a valid cédula or RNC. Hyphens and
// whitespace are ignored; any other length than 9 or 11 digits is invalid.
// Safe to call with arbitrary untrusted input.
func Validate(raw string) bool {
	cleaned := stripSeparators(raw)

	switch len(cleaned) {
	case cedulaLength:
		return validateCedula(cleaned)
	case rncLength:
		return validateRNC(cleaned)
	}
	return false
}

// validateCedula checks the weighted mod-10 rule: each digit is multiplied by
// its positional weight, products of two digits are reduced to the sum of
// their digits, and the total must be divisible by 10.
func validateCedula(cleaned string) bool {
	if !isDigits(cleaned) {
		return false
	}

	total := 0
	for i := 0; i < cedulaLength; i++ {
		product := int(cleaned[i]-'0') * cedulaWeights[i]
		if product >= 10 {
			product = product/10 + product%10
		}
		total += product
	}
	return total%10 == 0
}

// validateRNC checks the mod-11 rule over the first 8 digits. The first digit
// must be 1, 4 or 5. For remainders 0 and 1 the check digit must be 1;
// otherwise it must equal 11 minus the remainder.
func validateRNC(cleaned string) bool {
	if !isDigits(cleaned) {
		return false
	}

	switch cleaned[0] {
	case '1', '4', '5':
	default:
		return false
	}

	sum := 0
	for i := 0; i < rncLength-1; i++ {
		sum += int(cleaned[i]-'0') * rncWeights[i]
	}

	check := int(cleaned[rncLength-1] - '0')
	r := sum % 11

	return (r == 0 && check == 1) || (r == 1 && check == 1) || 11-r == check
}

// Format returns the canonical hyphenated form of a cédula (DDD-DDDDDDD-D) or
// RNC (DDD-DDDDD-D). Every non-digit character is discarded first. Input that
// does not reduce to 9 or 11 digits is returned unchanged; formatting is
// advisory and never fails.
func Format(raw string) string {
	digits := stripNonDigits(raw)

	switch len(digits) {
	case cedulaLength:
		return digits[:3] + "-" + digits[3:10] + "-" + digits[10:]
	case rncLength:
		return digits[:3] + "-" + digits[3:8] + "-" + digits[8:]
	}
	return raw
}

// stripSeparators removes hyphens and whitespace only, so that embedded
// letters still fail the digit check in Validate.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
