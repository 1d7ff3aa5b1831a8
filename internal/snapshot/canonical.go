package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Canonical produces a deterministic JSON encoding of the graph: keys sorted
// lexicographically, no insignificant whitespace, no HTML escaping. Two
// structurally equal graphs always canonicalize to identical bytes.
func Canonical(g *ProjectGraph) ([]byte, error) {
	// Round-trip through a generic value so the encoder emits every object
	// with sorted keys.
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("normalizing graph: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("canonicalizing graph: %w", err)
	}

	// Drop the trailing newline added by Encode.
	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out, nil
}

// Revision computes the content revision of canonical bytes, in the form
// "sha256:<hex>".
func Revision(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return "sha256:" + hex.EncodeToString(sum[:])
}
