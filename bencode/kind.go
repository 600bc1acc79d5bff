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

// Kind is the type of a bencoded value.
type Kind uint8

// Predefine the kinds of the bencoded values.
const (
	Invalid Kind = iota
	Integer
	ByteString
	List
	Dictionary
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case ByteString:
		return "bytes"
	case List:
		return "list"
	case Dictionary:
		return "dict"
	default:
		return "invalid"
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isDigits(b []byte) bool {
	for _, c := range b {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// Classify returns the kind of the bencoded value starting at b[0].
//
// It only inspects the first byte.
func Classify(b []byte) (Kind, error) { return classify(b, 0) }

func classify(b []byte, base int) (Kind, error) {
	if len(b) == 0 {
		return Invalid, newError(ErrTruncated, base, nil)
	}

	switch c := b[0]; {
	case c == 'i':
		return Integer, nil
	case isDigit(c):
		return ByteString, nil
	case c == 'l':
		return List, nil
	case c == 'd':
		return Dictionary, nil
	default:
		return Invalid, newError(ErrUnknownType, base, b)
	}
}
