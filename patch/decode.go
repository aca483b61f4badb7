package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/keepconf/node"
)

// FromJSON reads a JSON object into a tree, keeping key order. Arrays
// become lists and must hold scalars of one type; null values are
// dropped.
func FromJSON(d []byte) (*node.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("%w: document is not an object", ErrDecode)
	}
	root := node.NewRoot()
	if err := decodeObject(dec, root); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrDecode)
	}
	return root, nil
}

func decodeObject(dec *json.Decoder, sec *node.Node) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		key := tok.(string)
		p := node.JoinPath(sec.Path, key)
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		switch tok {
		case json.Delim('{'):
			c := node.NewSection(p, key)
			if err := decodeObject(dec, c); err != nil {
				return err
			}
			sec.Add(c)
		case json.Delim('['):
			c := node.NewListSection(p, key)
			if err := decodeArray(dec, c); err != nil {
				return err
			}
			sec.Add(c)
		case nil:
		default:
			sec.Add(node.NewScalar(p, key, tokenValue(tok)))
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func decodeArray(dec *json.Decoder, list *node.Node) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			return fmt.Errorf("%w: %s holds a nested %v", ErrDecode, list.Path, tok)
		case nil:
			continue
		}
		v := tokenValue(tok)
		if !list.AddValue(v) {
			return fmt.Errorf("%w: %s mixes %s and %s", ErrDecode, list.Path, list.ElemType, v.Type)
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func tokenValue(tok json.Token) node.Value {
	switch x := tok.(type) {
	case bool:
		return node.FromBool(x)
	case json.Number:
		return node.Infer(x.String())
	case string:
		return node.FromString(x)
	}
	return node.FromString(fmt.Sprint(tok))
}
