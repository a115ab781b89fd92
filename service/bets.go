package service

import (
	"regexp"
	"strconv"
	"strings"
)

var betPattern = regexp.MustCompile(`^(\d+(\.\d+)?)([kmb])?$`)

// allInTokens are the aliases that wager the entire current balance.
var allInTokens = map[string]bool{
	"m": true, "max": true,
	"a": true, "all": true, "allin": true, "all-in": true,
}

// ParseBet turns a user-supplied bet token into a wager. "max"/"all"
// style tokens resolve to the full current balance; otherwise the token
// is a number with an optional k/m/b suffix (x1e3/1e6/1e9), truncated
// toward zero. The result is not validated against the balance here;
// callers reject non-positive and unaffordable bets.
func ParseBet(token string, balance int64) (int64, error) {
	t := strings.ToLower(strings.TrimSpace(token))

	if allInTokens[t] {
		return balance, nil
	}

	m := betPattern.FindStringSubmatch(t)
	if m == nil {
		return 0, ErrInvalidBetFormat
	}

	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ErrInvalidBetFormat
	}

	switch m[3] {
	case "k":
		amount *= 1_000
	case "m":
		amount *= 1_000_000
	case "b":
		amount *= 1_000_000_000
	}

	return int64(amount), nil
}
