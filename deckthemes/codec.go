package deckthemes

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/xdefer"
)

// Unmarshal decodes a YAML or JSON theme descriptor and validates it.
// Unknown fields and extra documents are rejected. On any error the zero Theme
// is returned.
func Unmarshal(b []byte) (_ Theme, err error) {
	defer xdefer.Errorf(&err, "failed to load theme descriptor")

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var t Theme
	err = dec.Decode(&t)
	if errors.Is(err, io.EOF) {
		return Theme{}, errors.New("empty document")
	}
	if err != nil {
		return Theme{}, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Theme{}, errors.New("expected a single document")
	}

	err = Validate(t)
	if err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Marshal encodes t as YAML. Font stacks keep their order.
func Marshal(t Theme) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme %q: %w", t.Name, err)
	}
	err = enc.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
