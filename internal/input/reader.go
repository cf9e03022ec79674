// Package input collects the pasted line batch.
package input

import (
	"bufio"
	"io"
	"strings"
)

// ReadBatch reads lines from r until the first empty line (or EOF) and
// returns them. The empty line is the end-of-input sentinel, not data.
func ReadBatch(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
