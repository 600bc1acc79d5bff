// Copyright 2026 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bencode

import (
	"bytes"
	"iter"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Dict is a bencoded dictionary, which keeps the keys in insertion order.
//
// The key is the raw byte string, so it may be not a valid UTF-8 string.
type Dict struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewDict returns a new empty dictionary.
func NewDict() *Dict {
	return &Dict{m: orderedmap.NewOrderedMap[string, Value]()}
}

// Set sets the value of the key and reports whether the key is new.
//
// Replacing the value of an existing key keeps the key in its place.
func (d *Dict) Set(key string, value Value) (added bool) {
	return d.m.Set(key, value)
}

// Get returns the value of the key.
func (d *Dict) Get(key string) (value Value, ok bool) {
	if d == nil {
		return
	}
	return d.m.Get(key)
}

// Has reports whether the dictionary contains the key.
func (d *Dict) Has(key string) bool { return d != nil && d.m.Has(key) }

// Len returns the number of the keys.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return d.m.Len()
}

// Keys returns an iterator over the keys in order.
func (d *Dict) Keys() iter.Seq[string] {
	if d == nil {
		return func(func(string) bool) {}
	}
	return d.m.Keys()
}

// All returns an iterator over the key-value pairs in order.
func (d *Dict) All() iter.Seq2[string, Value] {
	if d == nil {
		return func(func(string, Value) bool) {}
	}
	return d.m.AllFromFront()
}

// Value is a decoded bencoded value.
//
// The zero value is Invalid.
type Value struct {
	kind Kind
	i    int64
	s    []byte
	l    []Value
	d    *Dict
}

// NewInt returns an integer value.
func NewInt(i int64) Value { return Value{kind: Integer, i: i} }

// NewBytes returns a byte string value.
func NewBytes(b []byte) Value { return Value{kind: ByteString, s: b} }

// NewString returns a byte string value from s.
func NewString(s string) Value { return Value{kind: ByteString, s: []byte(s)} }

// NewList returns a list value.
func NewList(values ...Value) Value { return Value{kind: List, l: values} }

// NewDictValue returns a dictionary value. A nil d is an empty dictionary.
func NewDictValue(d *Dict) Value {
	if d == nil {
		d = NewDict()
	}
	return Value{kind: Dictionary, d: d}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer if the value is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == Integer }

// Bytes returns the content if the value is a byte string.
func (v Value) Bytes() ([]byte, bool) { return v.s, v.kind == ByteString }

// Str is the same as Bytes, but returns a string.
func (v Value) Str() (string, bool) { return string(v.s), v.kind == ByteString }

// List returns the elements if the value is a list.
func (v Value) List() ([]Value, bool) { return v.l, v.kind == List }

// Dict returns the dictionary if the value is a dictionary.
func (v Value) Dict() (*Dict, bool) { return v.d, v.kind == Dictionary }

// Equal reports whether v and o are the same tree, including the order
// of the dictionary keys.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case Integer:
		return v.i == o.i
	case ByteString:
		return bytes.Equal(v.s, o.s)
	case List:
		if len(v.l) != len(o.l) {
			return false
		}
		for i := range v.l {
			if !v.l[i].Equal(o.l[i]) {
				return false
			}
		}
		return true
	case Dictionary:
		if v.d.Len() != o.d.Len() {
			return false
		}

		next, stop := iter.Pull2(o.d.All())
		defer stop()
		for key, value := range v.d.All() {
			okey, ovalue, ok := next()
			if !ok || key != okey || !value.Equal(ovalue) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Interface converts the value to the builtin types: int64 for the integer,
// string for the byte string, []interface{} for the list and
// map[string]interface{} for the dictionary.
//
// The dictionary loses its key order.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Integer:
		return v.i
	case ByteString:
		return string(v.s)
	case List:
		vs := make([]interface{}, len(v.l))
		for i, e := range v.l {
			vs[i] = e.Interface()
		}
		return vs
	case Dictionary:
		ms := make(map[string]interface{}, v.d.Len())
		for key, value := range v.d.All() {
			ms[key] = value.Interface()
		}
		return ms
	default:
		return nil
	}
}

func (v Value) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v Value) writeTo(b *strings.Builder) {
	switch v.kind {
	case Integer:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case ByteString:
		b.WriteString(strconv.Quote(string(v.s)))
	case List:
		b.WriteByte('[')
		for i, e := range v.l {
			if i > 0 {
				b.WriteString(", ")
			}
			e.writeTo(b)
		}
		b.WriteByte(']')
	case Dictionary:
		b.WriteByte('{')
		var i int
		for key, value := range v.d.All() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(key))
			b.WriteString(": ")
			value.writeTo(b)
			i++
		}
		b.WriteByte('}')
	default:
		b.WriteString("<invalid>")
	}
}
