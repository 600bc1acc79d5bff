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

import "bytes"

// item is an encoded value inside the decoded buffer.
type item struct {
	data   []byte
	offset int // The absolute offset of data[0].
}

// ScanEnd returns the offset one past the 'e' that closes the list or
// dictionary whose opening 'l' or 'd' is at b[pos-1].
//
// Nested values are skipped without being decoded.
func ScanEnd(b []byte, pos int) (int, error) {
	if pos < 1 || pos > len(b) {
		return 0, newError(ErrTruncated, pos, nil)
	}
	return defaultDecoder.scanEnd(b, pos, 0, 1)
}

// scanEnd is the same as ScanEnd, but the aggregate is at the given depth
// and b[0] is at the absolute offset base.
func (d *Decoder) scanEnd(b []byte, pos, base, depth int) (int, error) {
	if depth > d.conf.MaxDepth {
		return 0, newError(ErrTooDeep, base+pos-1, b[pos-1:])
	}

	for {
		if pos >= len(b) {
			return 0, newError(ErrTruncated, base+pos, nil)
		}

		switch c := b[pos]; {
		case c == 'e':
			return pos + 1, nil

		case c == 'i':
			end := bytes.IndexByte(b[pos:], 'e')
			if end < 0 {
				return 0, newError(ErrTruncated, base+pos, b[pos:])
			}
			pos += end + 1

		case isDigit(c):
			_, end, err := stringEnd(b[pos:], base+pos)
			if err != nil {
				return 0, err
			}
			pos += end

		case c == 'l' || c == 'd':
			end, err := d.scanEnd(b, pos+1, base, depth+1)
			if err != nil {
				return 0, err
			}
			pos = end

		default:
			return 0, newError(ErrUnknownType, base+pos, b[pos:])
		}
	}
}

// itemEnd returns the length of the complete value starting at b[0],
// which is at the given depth.
func (d *Decoder) itemEnd(b []byte, base, depth int) (int, error) {
	kind, err := classify(b, base)
	if err != nil {
		return 0, err
	}

	switch kind {
	case Integer:
		end := bytes.IndexByte(b, 'e')
		if end < 0 {
			return 0, newError(ErrMissingTerminator, base, b)
		}
		return end + 1, nil

	case ByteString:
		_, end, err := stringEnd(b, base)
		return end, err

	default:
		return d.scanEnd(b, 1, base, depth)
	}
}

// SplitItems splits the content of a list or dictionary, that's, the bytes
// between the opening 'l' or 'd' and the closing 'e', into the encoded
// values it contains.
//
// The returned slices share the memory of content. An empty content
// returns an empty slice.
func SplitItems(content []byte) ([][]byte, error) {
	items, err := defaultDecoder.splitItems(content, 0, 1)
	if err != nil {
		return nil, err
	}

	values := make([][]byte, len(items))
	for i, item := range items {
		values[i] = item.data
	}
	return values, nil
}

// splitItems splits the content of an aggregate at the given depth.
func (d *Decoder) splitItems(content []byte, base, depth int) ([]item, error) {
	items := make([]item, 0, 8)
	for pos := 0; pos < len(content); {
		end, err := d.itemEnd(content[pos:], base+pos, depth+1)
		if err != nil {
			return nil, err
		}

		end += pos
		items = append(items, item{data: content[pos:end:end], offset: base + pos})
		pos = end
	}
	return items, nil
}
