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
	"errors"

	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth is the default maximum nesting depth of the lists
// and dictionaries.
const DefaultMaxDepth = 1000

// DecoderConfig is used to configure the Decoder.
type DecoderConfig struct {
	// MaxDepth is the maximum nesting depth of the lists and dictionaries.
	//
	// Default: DefaultMaxDepth
	MaxDepth int

	// MaxSize is the maximum size of the decoded buffer. 0 means no limit.
	MaxSize int

	// If StrictKeys is true, a duplicate dictionary key is an error.
	// Or, the last value wins and a warning is logged.
	StrictKeys bool

	// If AllowTrailing is true, the bytes after the top-level value
	// are ignored. Or, they are an error.
	AllowTrailing bool

	// Default: logrus.StandardLogger()
	Logger logrus.FieldLogger
}

func (c *DecoderConfig) setDefault() {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
}

// Decoder decodes the bencoded data.
//
// It is stateless and safe to be used by many goroutines concurrently.
type Decoder struct {
	conf DecoderConfig
}

var defaultDecoder = NewDecoder()

// NewDecoder returns a new Decoder.
func NewDecoder(config ...DecoderConfig) *Decoder {
	var conf DecoderConfig
	if len(config) > 0 {
		conf = config[0]
	}
	conf.setDefault()
	return &Decoder{conf: conf}
}

// Decode decodes b, which must contain exactly one bencoded value,
// with the default decoder.
func Decode(b []byte) (Value, error) { return defaultDecoder.Decode(b) }

// DecodeString is the same as Decode, but decodes a string.
func DecodeString(s string) (Value, error) { return defaultDecoder.Decode([]byte(s)) }

// DecodeString is the same as Decode, but decodes a string.
func (d *Decoder) DecodeString(s string) (Value, error) { return d.Decode([]byte(s)) }

// Decode decodes b, which must contain exactly one bencoded value.
//
// The returned value does not share the memory with b.
func (d *Decoder) Decode(b []byte) (v Value, err error) {
	defer func() {
		if err != nil {
			d.logError(err)
		}
	}()

	if d.conf.MaxSize > 0 && len(b) > d.conf.MaxSize {
		return Value{}, newError(ErrTooLarge, d.conf.MaxSize, nil)
	}

	end, err := d.itemEnd(b, 0, 1)
	if err != nil {
		return
	}

	if end < len(b) && !d.conf.AllowTrailing {
		return Value{}, newError(ErrTrailingData, end, b[end:])
	}

	return d.decode(item{data: b[:end]}, 1)
}

func (d *Decoder) logError(err error) {
	fields := logrus.Fields{"error": err}
	var e *Error
	if errors.As(err, &e) {
		fields["offset"] = e.Offset
	}
	d.conf.Logger.WithFields(fields).Debug("bencode: reject the data")
}

// decode decodes the complete encoded value at the given depth.
func (d *Decoder) decode(it item, depth int) (Value, error) {
	kind, err := classify(it.data, it.offset)
	if err != nil {
		return Value{}, err
	}

	switch kind {
	case Integer:
		end, err := validateInteger(it.data, it.offset)
		if err != nil {
			return Value{}, err
		}

		i, err := parseInteger(it.data, end, it.offset)
		if err != nil {
			return Value{}, err
		}
		return NewInt(i), nil

	case ByteString:
		start, end, err := stringEnd(it.data, it.offset)
		if err != nil {
			return Value{}, err
		}
		return NewBytes(append([]byte{}, it.data[start:end]...)), nil

	case List:
		items, err := d.aggregateItems(it, depth)
		if err != nil {
			return Value{}, err
		}

		values := make([]Value, len(items))
		for i, child := range items {
			if values[i], err = d.decode(child, depth+1); err != nil {
				return Value{}, err
			}
		}
		return NewList(values...), nil

	default:
		items, err := d.aggregateItems(it, depth)
		if err != nil {
			return Value{}, err
		}
		return d.decodeDict(items, depth)
	}
}

// aggregateItems returns the items of the list or dictionary it.
func (d *Decoder) aggregateItems(it item, depth int) ([]item, error) {
	if depth > d.conf.MaxDepth {
		return nil, newError(ErrTooDeep, it.offset, it.data)
	}

	last := len(it.data) - 1
	if last < 1 || it.data[last] != 'e' {
		return nil, newError(ErrTruncated, it.offset+len(it.data), nil)
	}

	return d.splitItems(it.data[1:last], it.offset+1, depth)
}

func (d *Decoder) decodeDict(items []item, depth int) (Value, error) {
	if len(items)%2 != 0 {
		last := items[len(items)-1]
		return Value{}, newError(ErrMissingValue, last.offset, last.data)
	}

	dict := NewDict()
	for i := 0; i < len(items); i += 2 {
		kitem, vitem := items[i], items[i+1]
		if kind, _ := classify(kitem.data, kitem.offset); kind != ByteString {
			return Value{}, newError(ErrInvalidKeyType, kitem.offset, kitem.data)
		}

		key, err := d.decode(kitem, depth+1)
		if err != nil {
			return Value{}, err
		}

		value, err := d.decode(vitem, depth+1)
		if err != nil {
			return Value{}, err
		}

		skey, _ := key.Str()
		if !dict.Set(skey, value) {
			if d.conf.StrictKeys {
				return Value{}, newError(ErrDuplicateKey, kitem.offset, kitem.data)
			}

			d.conf.Logger.WithFields(logrus.Fields{
				"key":    skey,
				"offset": kitem.offset,
			}).Warn("bencode: duplicate dictionary key, keep the last value")
		}
	}

	return NewDictValue(dict), nil
}
