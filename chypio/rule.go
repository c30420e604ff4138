package chypio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/cospan/rule"
)

type ruleDoc struct {
	LHS json.RawMessage `json:"lhs"`
	RHS json.RawMessage `json:"rhs"`
}

// UnmarshalRule decodes a .chyprule document into a validated rule named
// name. Boundary disagreement between the two sides is rejected by
// rule.New and surfaces unchanged.
func UnmarshalRule(data []byte, name string) (*rule.Rule, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc ruleDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.LHS == nil || doc.RHS == nil {
		return nil, fmt.Errorf("%w: lhs and rhs are required", ErrFormat)
	}

	lhs, err := UnmarshalGraph(doc.LHS)
	if err != nil {
		return nil, fmt.Errorf("lhs: %w", err)
	}
	rhs, err := UnmarshalGraph(doc.RHS)
	if err != nil {
		return nil, fmt.Errorf("rhs: %w", err)
	}
	return rule.New(name, lhs, rhs)
}

// MarshalRule encodes r as an indented .chyprule document.
func MarshalRule(r *rule.Rule) ([]byte, error) {
	lhs, err := MarshalGraph(r.LHS())
	if err != nil {
		return nil, err
	}
	rhs, err := MarshalGraph(r.RHS())
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(ruleDoc{LHS: lhs, RHS: rhs}, "", "  ")
}

// LoadRule reads a .chyprule file; the rule is named after the file
// (base name without extension).
func LoadRule(path string) (*rule.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	r, err := UnmarshalRule(data, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// SaveRule writes r to path as a .chyprule document.
func SaveRule(path string, r *rule.Rule) error {
	data, err := MarshalRule(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
