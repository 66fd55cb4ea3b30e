// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Well known field names.
const (
	ChannelCount     = "channel_count"
	SampleNBytes     = "sample_n_bytes"
	SampleRate       = "sample_rate"
	SampleCount      = "sample_count"
	SampleCoding     = "sample_coding"
	SampleByteFormat = "sample_byte_format"
	SampleSigBits    = "sample_sig_bits"
	SampleMin        = "sample_min"
	SampleMax        = "sample_max"
	DatabaseID       = "database_id"
	DatabaseVersion  = "database_version"
	UtteranceID      = "utterance_id"
)

// Field is one named, typed header entry.
type Field struct {
	Name  string
	Value Value
}

// Info is an ordered mapping of field names to values. Insertion order
// is kept because it decides the byte layout of a serialized header.
// Replacing an existing field keeps its original position.
type Info struct {
	names  []string
	fields map[string]Value
}

func NewInfo() *Info {
	return &Info{fields: make(map[string]Value)}
}

// InfoOf builds an Info from fields in the given order.
func InfoOf(fields ...Field) (*Info, error) {
	h := NewInfo()
	for _, f := range fields {
		if err := h.Set(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Set inserts or replaces name.
func (h *Info) Set(name string, v Value) error {
	if err := checkName(name); err != nil {
		return err
	}
	if !v.IsValid() {
		return fmt.Errorf("%w: field %q", ErrInvalidValue, name)
	}
	if h.fields == nil {
		h.fields = make(map[string]Value)
	}
	if _, ok := h.fields[name]; !ok {
		h.names = append(h.names, name)
	}
	h.fields[name] = v
	return nil
}

// SetAny is Set with a Go value converted by ValueOf.
func (h *Info) SetAny(name string, v any) error {
	val, err := ValueOf(v)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return h.Set(name, val)
}

func (h *Info) Get(name string) (Value, bool) {
	v, ok := h.fields[name]
	return v, ok
}

func (h *Info) Has(name string) bool {
	_, ok := h.fields[name]
	return ok
}

// Int returns the integer stored under name. ok is false when the field
// is missing or not an integer.
func (h *Info) Int(name string) (int64, bool) {
	v, ok := h.fields[name]
	if !ok {
		return 0, false
	}
	return v.Int()
}

// Text returns the string stored under name.
func (h *Info) Text(name string) (string, bool) {
	v, ok := h.fields[name]
	if !ok {
		return "", false
	}
	return v.Text()
}

func (h *Info) Delete(name string) {
	if _, ok := h.fields[name]; !ok {
		return
	}
	delete(h.fields, name)
	h.names = slices.DeleteFunc(h.names, func(n string) bool { return n == name })
}

func (h *Info) Len() int { return len(h.names) }

// Names returns the field names in insertion order.
func (h *Info) Names() []string { return slices.Clone(h.names) }

// All iterates the fields in insertion order.
func (h *Info) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, n := range h.names {
			if !yield(n, h.fields[n]) {
				return
			}
		}
	}
}

// Fields returns a copy of the fields in insertion order.
func (h *Info) Fields() []Field {
	out := make([]Field, 0, len(h.names))
	for n, v := range h.All() {
		out = append(out, Field{Name: n, Value: v})
	}
	return out
}

// Merge copies every field of o into h, last write wins.
func (h *Info) Merge(o *Info) {
	if o == nil {
		return
	}
	for n, v := range o.All() {
		// o only holds valid entries
		_ = h.Set(n, v)
	}
}

func (h *Info) Clone() *Info {
	c := &Info{
		names:  slices.Clone(h.names),
		fields: make(map[string]Value, len(h.fields)),
	}
	for n, v := range h.fields {
		c.fields[n] = v
	}
	return c
}

// Equal reports whether h and o hold the same names and values,
// regardless of order.
func (h *Info) Equal(o *Info) bool {
	if h.Len() != o.Len() {
		return false
	}
	for n, v := range h.fields {
		ov, ok := o.fields[n]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Map returns the payloads keyed by name.
func (h *Info) Map() map[string]any {
	m := make(map[string]any, len(h.fields))
	for n, v := range h.fields {
		m[n] = v.Any()
	}
	return m
}

func (h *Info) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, n := range h.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", n, h.fields[n])
	}
	sb.WriteByte('}')
	return sb.String()
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, " ;\t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
