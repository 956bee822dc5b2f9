package extraction

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseRosterLine は「<企業名> (<URL>)」形式の1行をパースする
// 企業名にカッコが含まれる場合に備えて、最後の開きカッコを区切りとして扱う
func ParseRosterLine(line string) (CompanyEntry, error) {
	trimmed := strings.TrimSpace(line)

	open := strings.LastIndex(trimmed, "(")
	if open < 0 || !strings.HasSuffix(trimmed, ")") {
		return CompanyEntry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	name := strings.TrimSpace(trimmed[:open])
	url := strings.TrimSpace(trimmed[open+1 : len(trimmed)-1])
	if name == "" || url == "" {
		return CompanyEntry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return CompanyEntry{
		Name:         name,
		ReferenceURL: url,
	}, nil
}

// ParseRoster は企業リスト全体をパースする
// 空行は黙ってスキップし、形式不正の行は警告ログを出してスキップする
// 戻り値の2つ目はスキップした不正行の数
func ParseRoster(r io.Reader, logger *slog.Logger) ([]CompanyEntry, int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var entries []CompanyEntry
	malformed := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseRosterLine(line)
		if err != nil {
			malformed++
			logger.Warn("skipping malformed company line",
				"line", lineNo,
				"content", line,
			)
			continue
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, malformed, fmt.Errorf("failed to read company roster: %w", err)
	}

	return entries, malformed, nil
}
