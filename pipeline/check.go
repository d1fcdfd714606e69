package pipeline

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/teranos/expandgen/codegen"
	"github.com/teranos/expandgen/errors"
)

// CheckResult holds the outcome of comparing fresh output with files on disk.
type CheckResult struct {
	UpToDate bool     `json:"up_to_date" yaml:"up_to_date"`
	Stale    []string `json:"stale,omitempty" yaml:"stale,omitempty"`
	Missing  []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Err returns ErrOutOfDate listing the differing files, or nil.
func (c *CheckResult) Err() error {
	if c.UpToDate {
		return nil
	}
	files := append(append([]string{}, c.Stale...), c.Missing...)
	return errors.WithHint(
		errors.Wrapf(errors.ErrOutOfDate, "%s", strings.Join(files, ", ")),
		"run expandgen generate")
}

// Check compares the artifacts of results with the files on disk. The
// generator version header line is ignored so upgrading expandgen alone
// does not make files stale.
func Check(results []*Result) *CheckResult {
	res := &CheckResult{}
	for _, r := range results {
		for _, a := range r.Artifacts {
			existing, err := os.ReadFile(a.Path)
			if err != nil {
				res.Missing = append(res.Missing, a.Path)
				continue
			}
			if filterMetadataLines(existing) != filterMetadataLines(a.Content) {
				res.Stale = append(res.Stale, a.Path)
			}
		}
	}
	res.UpToDate = len(res.Stale) == 0 && len(res.Missing) == 0
	return res
}

// filterMetadataLines removes the generator version line from content.
// Returns empty string if the scanner fails, which makes the comparison fail.
func filterMetadataLines(content []byte) string {
	var result strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), codegen.VersionPrefix) {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return ""
	}
	return result.String()
}
