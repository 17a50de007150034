package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// constant is one named value from a C header.
type constant struct {
	Name  string
	Value uint64
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	defineLine   = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*define[ \t]+(\w+)[ \t]+(.+?)[ \t]*$`)
	directive    = regexp.MustCompile(`(?m)^[ \t]*#.*$`)
	enumBody     = regexp.MustCompile(`(?s)enum\s*\w*\s*\{(.*?)\}`)
	binaryExpr   = regexp.MustCompile(`^(\w+)\s*(<<|\+|-|\|)\s*(\w+)$`)
	intSuffix    = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+|\d+)[uUlL]*$`)
)

func stripComments(src string) string {
	return lineComment.ReplaceAllString(blockComment.ReplaceAllString(src, " "), "")
}

// eval evaluates the small expressions found in kernel headers: literals,
// names defined earlier, and one binary operator.
func eval(expr string, known map[string]uint64) (uint64, bool) {
	expr = strings.TrimSpace(expr)
	for strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}
	if m := intSuffix.FindStringSubmatch(expr); m != nil {
		v, err := strconv.ParseUint(m[1], 0, 64)
		return v, err == nil
	}
	if v, ok := known[expr]; ok {
		return v, true
	}
	m := binaryExpr.FindStringSubmatch(expr)
	if m == nil {
		return 0, false
	}
	a, ok := eval(m[1], known)
	if !ok {
		return 0, false
	}
	b, ok := eval(m[3], known)
	if !ok {
		return 0, false
	}
	switch m[2] {
	case "<<":
		return a << b, true
	case "+":
		return a + b, true
	case "-":
		return a - b, true
	}
	return a | b, true
}

// keep reports whether a name belongs in a table with the given prefix.
// Sentinels such as __IFLA_MAX and IFLA_MAX are left out.
func keep(name, prefix string) bool {
	return strings.HasPrefix(name, prefix) && name != prefix && !strings.HasSuffix(name, "_MAX")
}

// parseDefines returns the #define constants that carry prefix, in file order.
func parseDefines(src, prefix string) []constant {
	known := map[string]uint64{}
	var out []constant
	for _, m := range defineLine.FindAllStringSubmatch(stripComments(src), -1) {
		v, ok := eval(m[2], known)
		if !ok {
			continue
		}
		known[m[1]] = v
		if keep(m[1], prefix) {
			out = append(out, constant{m[1], v})
		}
	}
	return out
}

// parseEnums returns the enumerators that carry prefix, from every enum body
// in src, in file order.
func parseEnums(src, prefix string) ([]constant, error) {
	known := map[string]uint64{}
	var out []constant
	for _, body := range enumBody.FindAllStringSubmatch(stripComments(src), -1) {
		next := uint64(0)
		for _, entry := range strings.Split(directive.ReplaceAllString(body[1], ""), ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			name := entry
			if i := strings.Index(entry, "="); i >= 0 {
				name = strings.TrimSpace(entry[:i])
				v, ok := eval(entry[i+1:], known)
				if !ok {
					return nil, errors.Errorf("cannot evaluate %q", entry)
				}
				next = v
			}
			known[name] = next
			if keep(name, prefix) {
				out = append(out, constant{name, next})
			}
			next++
		}
	}
	return out, nil
}

// dedupe drops later constants that repeat an earlier value.
func dedupe(cs []constant) []constant {
	seen := map[uint64]bool{}
	out := cs[:0:0]
	for _, c := range cs {
		if !seen[c.Value] {
			seen[c.Value] = true
			out = append(out, c)
		}
	}
	return out
}
