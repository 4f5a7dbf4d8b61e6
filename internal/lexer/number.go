package lexer

// NumberKind classifies a numeric literal.
type NumberKind int

const (
	NotNumber NumberKind = iota
	Integer
	Float
)

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func consumeDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func parseIntegerPart(s string, i int) (newIndex int, ok bool) {
	integerStart := i
	i = consumeDigits(s, i)
	if i == integerStart {
		return i, false // No digits found.
	}
	if i-integerStart > 1 && s[integerStart] == '0' {
		return i, false // Leading zeros are not allowed.
	}
	return i, true
}

func parseFractionalPart(s string, i int) (newIndex int, ok bool, isFloat bool) {
	if i >= len(s) || s[i] != '.' {
		return i, true, false
	}
	i++
	fractionStart := i
	i = consumeDigits(s, i)
	if i == fractionStart {
		return i, false, true // No digits after '.'.
	}
	return i, true, true
}

func parseExponentPart(s string, i int) (newIndex int, ok bool, isFloat bool) {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return i, true, false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	exponentStart := i
	i = consumeDigits(s, i)
	if i == exponentStart {
		return i, false, true // No digits in exponent.
	}
	return i, true, true
}

// ClassifyNumber reports whether s is a complete numeric literal: an
// optional minus sign, an integer part without leading zeros, an optional
// fraction and an optional exponent.
func ClassifyNumber(s string) NumberKind {
	if len(s) == 0 {
		return NotNumber
	}
	i := 0
	if s[i] == '-' {
		if len(s) == 1 {
			return NotNumber
		}
		i++
	}

	var ok, fracIsFloat, expIsFloat bool
	if i, ok = parseIntegerPart(s, i); !ok {
		return NotNumber
	}
	if i, ok, fracIsFloat = parseFractionalPart(s, i); !ok {
		return NotNumber
	}
	if i, ok, expIsFloat = parseExponentPart(s, i); !ok {
		return NotNumber
	}
	if i != len(s) {
		return NotNumber
	}
	if fracIsFloat || expIsFloat {
		return Float
	}
	return Integer
}
