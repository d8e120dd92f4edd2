package lex

// MatchNumber attempts to recognize a JSON number token starting at
// buf[start]. It returns whether a match was found, whether the matched
// token contains a decimal point or exponent (making it a decimal rather
// than a plain integer), and the number of bytes consumed.
//
// Grammar: -? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE][+-]?[0-9]+)?
//
// MatchNumber does not itself convert the token to a number; it only
// delimits it. Consumption stops at the first byte that cannot extend the
// token.
func MatchNumber(buf []byte, start int) (matched, isDecimal bool, length int) {
	i := start
	n := len(buf)

	if i >= n {
		return false, false, 0
	}

	if buf[i] == '-' {
		i++
	}
	if i >= n {
		return false, false, 0
	}

	// Integer part: a leading zero cannot be followed by another digit.
	switch {
	case buf[i] == '0':
		if i+1 < n && buf[i+1] >= '0' && buf[i+1] <= '9' {
			return false, false, 0
		}
		i++
	case buf[i] >= '1' && buf[i] <= '9':
		i++
		for i < n && buf[i] >= '0' && buf[i] <= '9' {
			i++
		}
	default:
		return false, false, 0
	}

	// Fraction: a decimal point must be followed by at least one digit.
	if i < n && buf[i] == '.' {
		j := i + 1
		if j >= n || buf[j] < '0' || buf[j] > '9' {
			// Not a valid fraction; the number ends before the dot.
			return true, isDecimal, i - start
		}
		isDecimal = true
		i = j
		for i < n && buf[i] >= '0' && buf[i] <= '9' {
			i++
		}
	}

	// Exponent: e|E must be followed by an optional sign then at least one digit.
	if i < n && (buf[i] == 'e' || buf[i] == 'E') {
		j := i + 1
		if j < n && (buf[j] == '+' || buf[j] == '-') {
			j++
		}
		if j >= n || buf[j] < '0' || buf[j] > '9' {
			// Not a valid exponent; the number ends before the e/E.
			return true, isDecimal, i - start
		}
		isDecimal = true
		i = j
		for i < n && buf[i] >= '0' && buf[i] <= '9' {
			i++
		}
	}

	return true, isDecimal, i - start
}
