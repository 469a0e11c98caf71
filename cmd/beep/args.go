package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// coerceArgs converts command line words into values matching the verbs of
// format, the way printf(1) does. Words without a verb stay strings.
func coerceArgs(format string, raw []string) ([]any, error) {
	verbs := formatVerbs(format)
	args := make([]any, 0, len(raw))
	for i, word := range raw {
		verb := 'v'
		if i < len(verbs) {
			verb = verbs[i]
		}
		v, err := convertArg(verb, word)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) for %%%c: %w", i+1, word, verb, err)
		}
		args = append(args, v)
	}
	return args, nil
}

// formatVerbs lists the verb that consumes each argument of format, in order.
// A '*' width or precision consumes an int.
func formatVerbs(format string) []rune {
	var verbs []rune
	rs := []rune(format)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '%' {
			continue
		}
		for i++; i < len(rs); i++ {
			if rs[i] == '*' {
				verbs = append(verbs, 'd')
				continue
			}
			if !strings.ContainsRune("+-# 0123456789.[]", rs[i]) {
				break
			}
		}
		if i >= len(rs) {
			break
		}
		if rs[i] != '%' {
			verbs = append(verbs, rs[i])
		}
	}
	return verbs
}

func convertArg(verb rune, word string) (any, error) {
	switch verb {
	case 'd', 'b', 'o', 'O':
		return strconv.ParseInt(word, 0, 64)
	case 'x', 'X':
		if n, err := strconv.ParseInt(word, 0, 64); err == nil {
			return n, nil
		}
		return word, nil
	case 'c', 'U':
		if utf8.RuneCountInString(word) == 1 {
			r, _ := utf8.DecodeRuneInString(word)
			return r, nil
		}
		n, err := strconv.ParseInt(word, 0, 32)
		return rune(n), err
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return strconv.ParseFloat(word, 64)
	case 't':
		return strconv.ParseBool(word)
	default:
		return word, nil
	}
}
