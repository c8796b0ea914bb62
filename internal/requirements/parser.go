package requirements

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/frederic-klein/pyconflict/internal/pyspec"
)

// Parser parses pip requirements files.
type Parser struct{}

// NewParser creates a new requirements file parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseResult contains the specifiers parsed from a requirements file.
type ParseResult struct {
	Specifiers []*pyspec.Specifier
}

// Parse reads a requirements file and parses every specifier line. Blank
// lines, comment lines, and pip option lines (starting with "-") are
// skipped. Trailing comments after a specifier are stripped.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening requirements file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{}
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Option lines such as "-r other.txt" or "--index-url ..."
		if strings.HasPrefix(trimmed, "-") {
			continue
		}

		// Strip trailing comments
		if idx := strings.Index(trimmed, " #"); idx != -1 {
			trimmed = strings.TrimSpace(trimmed[:idx])
		}

		spec, err := pyspec.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		result.Specifiers = append(result.Specifiers, spec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requirements file: %w", err)
	}

	return result, nil
}
