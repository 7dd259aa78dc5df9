package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MimeBundle maps representation identifiers to payloads. The keys
// keep the producer's order: best-representation selection breaks
// priority ties on first occurrence, so the order is load-bearing.
// A payload is either a single value or a fragment sequence.
type MimeBundle struct {
	Keys     []string
	Payloads []any
}

func (b *MimeBundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Keys)
}

func (b *MimeBundle) Get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	for i, k := range b.Keys {
		if k == key {
			return b.Payloads[i], true
		}
	}
	return nil, false
}

func (b *MimeBundle) Set(key string, payload any) {
	for i, k := range b.Keys {
		if k == key {
			b.Payloads[i] = payload
			return
		}
	}
	b.Keys = append(b.Keys, key)
	b.Payloads = append(b.Payloads, payload)
}

func (b *MimeBundle) clone() *MimeBundle {
	if b == nil {
		return nil
	}
	res := &MimeBundle{
		Keys:     copyStrings(b.Keys),
		Payloads: make([]any, len(b.Payloads)),
	}
	copy(res.Payloads, b.Payloads)
	return res
}

// UnmarshalJSON decodes an object while keeping its key order, which
// a plain map would lose.
func (b *MimeBundle) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("mime bundle is not an object: %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("mime bundle key %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		b.Keys = append(b.Keys, key)
		b.Payloads = append(b.Payloads, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Stream is stdout or stderr text from a code cell, fully joined.
type Stream struct {
	Base
	Name string
	Text string
}

func (s *Stream) NodeType() Type { return StreamType }

func (s *Stream) Value() string { return s.Text }

func (s *Stream) Copy() Node {
	res := *s
	res.Base = s.copyBase()
	return &res
}

func (s *Stream) Clone() Node { return s.Copy() }

// DisplayData is a MIME bundle shown without an execution counter.
type DisplayData struct {
	Base
	Bundle   *MimeBundle
	Metadata map[string]any
}

func (d *DisplayData) NodeType() Type { return DisplayDataType }

func (d *DisplayData) Copy() Node {
	res := *d
	res.Base = d.copyBase()
	return &res
}

func (d *DisplayData) Clone() Node {
	res := *d
	res.Base = d.copyBase()
	res.Bundle = d.Bundle.clone()
	res.Metadata = copyAnyMap(d.Metadata)
	return &res
}

// ExecuteResult is a MIME bundle tied to an execution counter.
type ExecuteResult struct {
	Base
	Bundle         *MimeBundle
	Metadata       map[string]any
	ExecutionCount *int
}

func (e *ExecuteResult) NodeType() Type { return ExecuteResultType }

func (e *ExecuteResult) Copy() Node {
	res := *e
	res.Base = e.copyBase()
	return &res
}

func (e *ExecuteResult) Clone() Node {
	res := *e
	res.Base = e.copyBase()
	res.Bundle = e.Bundle.clone()
	res.Metadata = copyAnyMap(e.Metadata)
	res.ExecutionCount = copyInt(e.ExecutionCount)
	return &res
}

// Error is an exception raised by a code cell.
type Error struct {
	Base
	Name      string
	Message   string
	Traceback []string
}

func (e *Error) NodeType() Type { return ErrorType }

func (e *Error) Copy() Node {
	res := *e
	res.Base = e.copyBase()
	return &res
}

func (e *Error) Clone() Node {
	res := *e
	res.Base = e.copyBase()
	res.Traceback = copyStrings(e.Traceback)
	return &res
}

func copyAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	res := make(map[string]any, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}
