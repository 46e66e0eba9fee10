// Package words reads token lists for the layout engine.
//
// A word file is plain text: tokens are separated by whitespace,
// including newlines, so one-token-per-line and space-separated files
// both work. Blank lines are skipped and lines starting with '#' are
// treated as comments.
package words

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/wordscatter/pkg/errors"
)

// Read parses tokens from r. It returns an error when the input holds
// no tokens at all, since an empty canvas is never what the user meant.
func Read(r io.Reader) ([]string, error) {
	var tokens []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read word list")
	}

	if len(tokens) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "word list contains no tokens")
	}
	return tokens, nil
}

// ReadFile reads tokens from the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "word list %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	return Read(f)
}
