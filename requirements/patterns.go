package requirements

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Generated catalog numbers are always this wide
const digitsPatternWidth = 5

type PatternType int

const (
	// 1@9 is any five digit number starting with 1 and ending with 9
	PatternDigits PatternType = iota
	// 300:399 is any number from 300 to 399, inclusive
	PatternRange
)

type Pattern struct {
	Type  PatternType
	Front string
	Back  string
	From  int
	To    int
}

func ParsePattern(catalogNumber string) (Pattern, error) {
	if front, back, found := strings.Cut(catalogNumber, "@"); found {
		if strings.Contains(back, "@") {
			return Pattern{}, fmt.Errorf("pattern %q has more than one @", catalogNumber)
		}
		if len(front)+len(back) >= digitsPatternWidth {
			return Pattern{}, fmt.Errorf("pattern %q leaves no digits to fill", catalogNumber)
		}
		return Pattern{Type: PatternDigits, Front: front, Back: back}, nil
	}

	if front, back, found := strings.Cut(catalogNumber, ":"); found {
		from, err := strconv.Atoi(strings.TrimSpace(front))
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %q has an invalid lower bound: %w", catalogNumber, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(back))
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %q has an invalid upper bound: %w", catalogNumber, err)
		}
		return Pattern{Type: PatternRange, Front: front, Back: back, From: from, To: to}, nil
	}

	return Pattern{}, errors.New("Not a wildcard pattern: " + catalogNumber)
}

// Digits reports how many digits the @ stands for
func (p Pattern) Digits() int {
	return digitsPatternWidth - len(p.Front) - len(p.Back)
}

// Matches reports whether catalogNumber is one of the numbers the pattern
// expands to. Range members are unpadded decimal numbers.
func (p Pattern) Matches(catalogNumber string) bool {
	switch p.Type {
	case PatternDigits:
		if len(catalogNumber) != digitsPatternWidth {
			return false
		}
		if !strings.HasPrefix(catalogNumber, p.Front) || !strings.HasSuffix(catalogNumber, p.Back) {
			return false
		}
		middle := catalogNumber[len(p.Front) : digitsPatternWidth-len(p.Back)]
		for _, char := range middle {
			if char < '0' || char > '9' {
				return false
			}
		}
		return true
	case PatternRange:
		number, err := strconv.Atoi(catalogNumber)
		if err != nil || strconv.Itoa(number) != catalogNumber {
			return false
		}
		return p.From <= number && number <= p.To
	}
	return false
}
