// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deskkit/pkg/types"
)

// WriteBlockSet encodes a block set as YAML.
func WriteBlockSet(w io.Writer, set types.BlockSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding blocks: %w", err)
	}
	return enc.Close()
}

// ReadBlockSetFile decodes a block set previously written by WriteBlockSet.
func ReadBlockSetFile(path string) (types.BlockSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BlockSet{}, fmt.Errorf("reading blocks file %s: %w", path, err)
	}
	var set types.BlockSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return types.BlockSet{}, fmt.Errorf("parsing blocks file %s: %w", path, err)
	}
	return set, nil
}
