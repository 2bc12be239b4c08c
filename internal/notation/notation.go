// Package notation parses the textual pattern language used on the command
// line into patterns and combinations.
//
// A term is one of
//
//	P(vertices,offset[,expansion])   regular polygon
//	E(beats,steps[,offset])          Euclidean rhythm
//	b10010010 or 10010010            binary steps
//	0x92                             hex steps, four per digit
//	tri square pent hex hept oct     polygon shorthands at offset 0
//
// optionally prefixed by "~" (invert) or "rev " (reverse) and suffixed by
// "@n" (rotate n steps). Terms join with "+"; every term after the first
// "-" is subtracted from the union.
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/san-kum/rhythmlab/internal/combine"
	"github.com/san-kum/rhythmlab/internal/pattern"
)

var ErrSyntax = errors.New("notation: syntax error")

var (
	polygonRe   = regexp.MustCompile(`^p\((\d+),(-?\d+)(?:,(\d+))?\)$`)
	euclideanRe = regexp.MustCompile(`^e\((\d+),(\d+)(?:,(-?\d+))?\)$`)
	binaryRe    = regexp.MustCompile(`^b?([01]+)$`)
	hexRe       = regexp.MustCompile(`^0x([0-9a-f]+)$`)
	rotateRe    = regexp.MustCompile(`^(.+)@(-?\d+)$`)
)

var shorthands = map[string]int{
	"tri":    3,
	"square": 4,
	"pent":   5,
	"hex":    6,
	"hept":   7,
	"oct":    8,
}

// Parse reads an expression. A single term comes back uncombined, with
// LCMUsed equal to its own step count.
func Parse(expr string) (*combine.Result, error) {
	add, subtract, err := split(expr)
	if err != nil {
		return nil, err
	}

	addPats, err := parseTerms(add)
	if err != nil {
		return nil, err
	}
	subPats, err := parseTerms(subtract)
	if err != nil {
		return nil, err
	}

	if len(addPats) == 1 && len(subPats) == 0 {
		p := addPats[0]
		return &combine.Result{
			Pattern:          p,
			OriginalPatterns: []pattern.Pattern{p.Clone()},
			LCMUsed:          p.StepCount,
		}, nil
	}
	return combine.WithSubtraction(addPats, subPats)
}

// ParseTerm reads a single term without "+" or "-" joins.
func ParseTerm(term string) (pattern.Pattern, error) {
	s := strings.ToLower(strings.Join(strings.Fields(term), " "))
	if s == "" {
		return pattern.Pattern{}, fmt.Errorf("%w: empty term", ErrSyntax)
	}

	switch {
	case strings.HasPrefix(s, "~"):
		p, err := ParseTerm(s[1:])
		if err != nil {
			return pattern.Pattern{}, err
		}
		return p.Invert(), nil
	case strings.HasPrefix(s, "rev "):
		p, err := ParseTerm(s[4:])
		if err != nil {
			return pattern.Pattern{}, err
		}
		return p.Reverse(), nil
	}

	s = strings.ReplaceAll(s, " ", "")

	if m := rotateRe.FindStringSubmatch(s); m != nil {
		p, err := ParseTerm(m[1])
		if err != nil {
			return pattern.Pattern{}, err
		}
		n, err := atoi(m[2])
		if err != nil {
			return pattern.Pattern{}, err
		}
		return p.Rotate(n), nil
	}

	if v, ok := shorthands[s]; ok {
		return pattern.Polygon(v, 0, 1)
	}
	if m := polygonRe.FindStringSubmatch(s); m != nil {
		return parsePolygon(m[1], m[2], m[3])
	}
	if m := euclideanRe.FindStringSubmatch(s); m != nil {
		return parseEuclidean(m[1], m[2], m[3])
	}
	if m := hexRe.FindStringSubmatch(s); m != nil {
		return parseHex(m[1])
	}
	if m := binaryRe.FindStringSubmatch(s); m != nil {
		return pattern.ParseBinary(m[1])
	}
	return pattern.Pattern{}, fmt.Errorf("%w: unrecognized term %q", ErrSyntax, term)
}

func parsePolygon(vs, offs, es string) (pattern.Pattern, error) {
	v, err := atoi(vs)
	if err != nil {
		return pattern.Pattern{}, err
	}
	o, err := atoi(offs)
	if err != nil {
		return pattern.Pattern{}, err
	}
	e := 1
	if es != "" {
		if e, err = atoi(es); err != nil {
			return pattern.Pattern{}, err
		}
	}
	return pattern.Polygon(v, o, e)
}

func parseEuclidean(bs, ss, offs string) (pattern.Pattern, error) {
	b, err := atoi(bs)
	if err != nil {
		return pattern.Pattern{}, err
	}
	n, err := atoi(ss)
	if err != nil {
		return pattern.Pattern{}, err
	}
	o := 0
	if offs != "" {
		if o, err = atoi(offs); err != nil {
			return pattern.Pattern{}, err
		}
	}
	return pattern.Euclidean(b, n, o)
}

func parseHex(digits string) (pattern.Pattern, error) {
	var sb strings.Builder
	for _, d := range digits {
		v, err := strconv.ParseUint(string(d), 16, 8)
		if err != nil {
			return pattern.Pattern{}, fmt.Errorf("%w: hex digit %q", ErrSyntax, d)
		}
		fmt.Fprintf(&sb, "%04b", v)
	}
	p, err := pattern.ParseBinary(sb.String())
	if err != nil {
		return pattern.Pattern{}, err
	}
	p.Formula = "0x" + strings.ToUpper(digits)
	return p, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrSyntax, s)
	}
	return n, nil
}

// split breaks expr into added and subtracted terms at top-level "+" and
// "-". Signs inside parentheses or directly after "@" belong to numbers.
func split(expr string) (add, subtract []string, err error) {
	var (
		depth      int
		start      int
		subtracted bool
		prev       rune
	)
	flush := func(end int) error {
		term := strings.TrimSpace(expr[start:end])
		if term == "" {
			return fmt.Errorf("%w: empty term in %q", ErrSyntax, expr)
		}
		if subtracted {
			subtract = append(subtract, term)
		} else {
			add = append(add, term)
		}
		return nil
	}

	for i, r := range expr {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return nil, nil, fmt.Errorf("%w: unbalanced ')' in %q", ErrSyntax, expr)
			}
		case (r == '+' || r == '-') && depth == 0 && prev != '@':
			if err := flush(i); err != nil {
				return nil, nil, err
			}
			start = i + 1
			if r == '-' {
				subtracted = true
			}
		}
		if r != ' ' {
			prev = r
		}
	}
	if depth != 0 {
		return nil, nil, fmt.Errorf("%w: unbalanced '(' in %q", ErrSyntax, expr)
	}
	if err := flush(len(expr)); err != nil {
		return nil, nil, err
	}
	return add, subtract, nil
}

func parseTerms(terms []string) ([]pattern.Pattern, error) {
	out := make([]pattern.Pattern, 0, len(terms))
	for _, t := range terms {
		p, err := ParseTerm(t)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
