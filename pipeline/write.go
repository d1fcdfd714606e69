package pipeline

import (
	"bytes"
	"os"

	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/logger"
)

// Write stores every artifact of results whose content changed and returns
// the paths written. Results with errors are skipped.
func (p *Pipeline) Write(results []*Result) ([]string, error) {
	var written []string
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, a := range r.Artifacts {
			existing, err := os.ReadFile(a.Path)
			if err == nil && bytes.Equal(existing, a.Content) {
				p.logger.Debugw("Unchanged", logger.FieldOutput, a.Path)
				continue
			}
			if err := os.WriteFile(a.Path, a.Content, 0o644); err != nil {
				return written, errors.Wrapf(err, "failed to write %s", a.Path)
			}
			p.logger.Infow("Wrote generated file", logger.FieldOutput, a.Path, logger.FieldWritten, len(a.Content))
			written = append(written, a.Path)
		}
	}
	return written, nil
}
