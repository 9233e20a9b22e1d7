package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BaseName is the manifest filename inside a template variant directory.
const BaseName = "_package.json"

// FileName is the manifest filename written into a generated project.
const FileName = "package.json"

// PackageJSON is an npm manifest held as an ordered set of top-level
// fields. Values stay as raw JSON, so fields this tool has no opinion on
// (jest blocks, browserslist, whatever a template carries) survive the
// round trip untouched and in their original position.
type PackageJSON struct {
	keys   []string
	values map[string]json.RawMessage
}

// Name returns the manifest's name field, or "" when absent.
func (p *PackageJSON) Name() string {
	var name string
	if raw, ok := p.values["name"]; ok {
		// A non-string name is reported by validation, not here.
		_ = json.Unmarshal(raw, &name)
	}
	return name
}

// Set marshals v and stores it under key. A new key is appended after the
// existing fields; an existing key keeps its position.
func (p *PackageJSON) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding manifest field %q: %w", key, err)
	}
	if p.values == nil {
		p.values = make(map[string]json.RawMessage)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = raw
	return nil
}

// Get unmarshals the value under key into v and reports whether the key
// exists.
func (p *PackageJSON) Get(key string, v interface{}) (bool, error) {
	raw, ok := p.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decoding manifest field %q: %w", key, err)
	}
	return true, nil
}

// UnmarshalJSON decodes a JSON object while recording the order its keys
// appear in. Values are kept verbatim.
func (p *PackageJSON) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("manifest root is %v, want an object", tok)
	}

	p.keys = nil
	p.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("manifest key is %v, want a string", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding manifest field %q: %w", key, err)
		}
		if _, dup := p.values[key]; !dup {
			p.keys = append(p.keys, key)
		}
		p.values[key] = raw
	}
	_, err = dec.Token() // closing brace
	return err
}

// MarshalJSON encodes the manifest with its recorded key order.
func (p *PackageJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(p.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
