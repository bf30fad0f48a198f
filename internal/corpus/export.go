// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mantis/pkg/types"
)

// corpusExport is the YAML export document shape.
type corpusExport struct {
	Papers    []types.Paper          `yaml:"papers"`
	Citations []types.CitationRecord `yaml:"citations"`
}

// writeCorpusYAML marshals the corpus and writes it to path via a temp
// file rename so a failed export never leaves a truncated document.
func writeCorpusYAML(c *Corpus, path string) error {
	doc := corpusExport{
		Papers:    c.Papers(),
		Citations: c.Citations(),
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling corpus: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming export file: %w", err)
	}
	return nil
}
