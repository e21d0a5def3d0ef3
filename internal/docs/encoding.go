package docs

import (
	"encoding/json"
	"fmt"
)

// blockWire is the serialized shape of a Block. Checklist and link items
// share the "items" key; the block type decides how they decode.
type blockWire struct {
	Type    BlockType  `json:"type" yaml:"type"`
	Content string     `json:"content,omitempty" yaml:"content,omitempty"`
	Items   any        `json:"items,omitempty" yaml:"items,omitempty"`
	Data    *CodeBlock `json:"data,omitempty" yaml:"data,omitempty"`
}

func (b Block) wire() blockWire {
	w := blockWire{Type: b.Type, Content: b.Content, Data: b.Code}
	switch b.Type {
	case BlockChecklist:
		w.Items = b.Items
	case BlockLinks:
		w.Items = b.Links
	}
	return w
}

// MarshalJSON implements json.Marshaler.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.wire())
}

// MarshalYAML implements yaml.Marshaler.
func (b Block) MarshalYAML() (any, error) {
	return b.wire(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Block) UnmarshalJSON(data []byte) error {
	var w struct {
		Type    BlockType       `json:"type"`
		Content string          `json:"content"`
		Items   json.RawMessage `json:"items"`
		Data    *CodeBlock      `json:"data"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*b = Block{Type: w.Type, Content: w.Content, Code: w.Data}
	if len(w.Items) == 0 {
		return nil
	}

	switch w.Type {
	case BlockChecklist:
		return json.Unmarshal(w.Items, &b.Items)
	case BlockLinks:
		return json.Unmarshal(w.Items, &b.Links)
	default:
		return fmt.Errorf("unexpected items for block type %q", w.Type)
	}
}
