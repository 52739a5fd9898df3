package wordtrie

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadWords reads a word list from a file, one word per line. Surrounding
// whitespace is trimmed and blank lines are skipped.
func LoadWords(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" {
			continue
		}
		words = append(words, trimmed)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// SaveWords writes the word list to a file, one word per line.
func SaveWords(filename string, words []string) error {
	content := strings.Join(words, "\n")
	return os.WriteFile(filename, []byte(content), 0644)
}

// DecodeWords reads a JSON array of words from r. Every element must be a
// string; any other element fails the whole decode with
// ErrInvalidArgumentType, so callers never see a partial word list.
func DecodeWords(r io.Reader) ([]string, error) {
	var raw []any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	words := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("word list element %d is %T: %w", i, v, ErrInvalidArgumentType)
		}
		words[i] = s
	}
	return words, nil
}
