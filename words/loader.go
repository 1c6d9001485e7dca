package words

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/lixenwraith/sarada/constants"
)

// CommentPrefixes identify lines skipped by the parser
var CommentPrefixes = []string{"#", "//"}

// LoadFile reads a word list from disk
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file %s: %w", path, err)
	}
	defer f.Close()

	entries, err := parseScanner(bufio.NewScanner(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse reads a word list from text
func Parse(text string) ([]Entry, error) {
	return parseScanner(bufio.NewScanner(strings.NewReader(text)))
}

func parseScanner(sc *bufio.Scanner) ([]Entry, error) {
	var entries []Entry
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sanitizeLine(sc.Text())
		if isSkippable(line) {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyBank
	}
	return entries, nil
}

// splitFields splits on tabs so displays may contain spaces; tabless lines split on whitespace
func splitFields(line string) []string {
	if !strings.ContainsRune(line, '\t') {
		return strings.Fields(line)
	}
	var fields []string
	for _, f := range strings.Split(line, "\t") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func parseLine(line string) (Entry, error) {
	fields := splitFields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return Entry{}, fmt.Errorf("%w: want 'display key [level]', got %q", ErrMalformedLine, line)
	}

	key := strings.ToLower(fields[1])
	if !ValidKey(key) {
		return Entry{}, fmt.Errorf("%w: key %q outside [a-z%s]", ErrMalformedLine, key, constants.InputSymbols)
	}

	level := MinLevel
	if len(fields) == 3 {
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return Entry{}, fmt.Errorf("%w: level %q: %v", ErrMalformedLine, fields[2], err)
		}
		level = clampLevel(n)
	}

	return Entry{WordData: WordData{Display: fields[0], Key: key}, Level: level}, nil
}

// ValidKey reports whether every rune of key is typeable
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !AcceptedRune(r) {
			return false
		}
	}
	return true
}

// AcceptedRune is the input alphabet: lowercase a-z plus constants.InputSymbols
func AcceptedRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || strings.ContainsRune(constants.InputSymbols, r)
}

func isSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	for _, p := range CommentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// sanitizeLine drops ANSI escape sequences and control characters other than tab
func sanitizeLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			// CSI sequences end on a letter
			if unicode.IsLetter(r) {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		case r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
