// Package dispatcher implements the Chef instruction dispatcher:
// tokenizing a method statement, identifying its verb, and extracting
// the ingredient-name and bowl/dish-index arguments the execution
// engine's operators need.
package dispatcher

import (
	"strconv"
	"strings"

	"github.com/kuu/chef/token"
)

// Tokenize splits a method statement on whitespace.
func Tokenize(stmt string) []string {
	return strings.Fields(stmt)
}

// Verb returns the recognized verb for a tokenized statement's first
// token, or ("", false) if it is the arbitrary loop-header form.
func Verb(tokens []string) (token.Verb, bool) {
	if len(tokens) == 0 {
		return "", false
	}
	return token.LookupVerb(tokens[0])
}

// ExtractIngredientName extracts an ingredient name starting at
// tokens[start]: skip a leading "the", then join tokens up to (but
// excluding) the first occurrence of terminator, or to the end of the
// list if terminator is empty or not found.
func ExtractIngredientName(tokens []string, start int, terminator string) string {
	if start < 0 || start >= len(tokens) {
		return ""
	}
	if tokens[start] == "the" {
		start++
	}
	end := len(tokens)
	if terminator != "" {
		for i := start; i < len(tokens); i++ {
			if tokens[i] == terminator {
				end = i
				break
			}
		}
	}
	if start >= end {
		return ""
	}
	return strings.Join(tokens[start:end], " ")
}

// ExtractMixingBowlIndex locates "mixing", then reads the ordinal token
// immediately before it. Returns (index, true) if "mixing" was found at
// all (index defaults to 1 absent an ordinal prefix); (0, false) if
// "mixing" is absent or at token 0.
func ExtractMixingBowlIndex(tokens []string) (int, bool) {
	return extractAnchoredIndex(tokens, "mixing")
}

// ExtractBakingDishIndex is ExtractMixingBowlIndex's counterpart,
// anchored on "baking".
func ExtractBakingDishIndex(tokens []string) (int, bool) {
	return extractAnchoredIndex(tokens, "baking")
}

func extractAnchoredIndex(tokens []string, anchor string) (int, bool) {
	pos := -1
	for i, t := range tokens {
		if t == anchor {
			pos = i
			break
		}
	}
	if pos <= 0 {
		return 0, false
	}
	ordinal := tokens[pos-1]
	if n, ok := parseOrdinal(ordinal); ok {
		return n, true
	}
	return 1, true
}

// parseOrdinal strips a trailing st/nd/rd/th suffix and parses the
// remaining digits as a 1-based index.
func parseOrdinal(tok string) (int, bool) {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(tok, suffix) {
			digits := strings.TrimSuffix(tok, suffix)
			n, err := strconv.Atoi(digits)
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// IndexOf returns the position of the first occurrence of needle in
// tokens, or -1.
func IndexOf(tokens []string, needle string) int {
	for i, t := range tokens {
		if t == needle {
			return i
		}
	}
	return -1
}
