package card

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var keywordPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,7}$`)

// Entry is one directive line.
type Entry struct {
	Keyword string
	Fields  []string
}

// Card is a parsed steering card.
type Card struct {
	Entries []Entry
}

// ReadFile parses card at path.
func ReadFile(path string) (Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return Card{}, errs.IO("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file)
}

// Read parses card directives up to EXIT.
// Blank lines and lines starting with '*' are skipped, as the simulator does.
func Read(r io.Reader) (Card, error) {
	c := Card{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "*") {
			continue
		}
		if !keywordPattern.MatchString(fields[0]) {
			return Card{}, errs.Formatting("line %d: invalid keyword %q", lineNumber, fields[0])
		}
		c.Entries = append(c.Entries, Entry{Keyword: fields[0], Fields: fields[1:]})
		if fields[0] == "EXIT" {
			return c, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return Card{}, errs.IO("read card: %w", err)
	}
	return Card{}, errs.Formatting("card has no EXIT directive")
}

// All returns fields of every line with keyword.
func (c Card) All(keyword string) [][]string {
	result := [][]string{}
	for _, entry := range c.Entries {
		if entry.Keyword == keyword {
			result = append(result, entry.Fields)
		}
	}
	return result
}

// Fields of the first line with keyword.
func (c Card) Fields(keyword string) ([]string, error) {
	for _, entry := range c.Entries {
		if entry.Keyword == keyword {
			return entry.Fields, nil
		}
	}
	return nil, errs.Formatting("keyword %s not found", keyword)
}

// Int parses field index of the first line with keyword.
func (c Card) Int(keyword string, index int) (int, error) {
	field, err := c.field(keyword, index)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, errs.Formatting("%s field %d: %v", keyword, index, err)
	}
	return value, nil
}

// Float parses field index of the first line with keyword.
func (c Card) Float(keyword string, index int) (float64, error) {
	field, err := c.field(keyword, index)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errs.Formatting("%s field %d: %v", keyword, index, err)
	}
	return value, nil
}

func (c Card) field(keyword string, index int) (string, error) {
	fields, err := c.Fields(keyword)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(fields) {
		return "", errs.Formatting("%s has %d fields, field %d requested", keyword, len(fields), index)
	}
	return fields[index], nil
}
