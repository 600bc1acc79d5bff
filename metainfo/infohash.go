// Copyright 2020 xgfone
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

package metainfo

import (
	"bytes"
	"crypto/sha1"
	"encoding/base32"
	"encoding/hex"
	"fmt"
)

var zeroHash Hash

// HashSize is the size of the InfoHash.
const HashSize = 20

// Hash is the 20-byte SHA1 hash used for info and pieces.
type Hash [HashSize]byte

// NewHashFromHexString returns a new Hash from a hex string.
func NewHashFromHexString(s string) (h Hash) {
	err := h.FromHexString(s)
	if err != nil {
		panic(err)
	}
	return
}

// NewHashFromBytes returns the SHA1 hash of a byte slice.
func NewHashFromBytes(b []byte) Hash {
	return sha1.Sum(b)
}

// Bytes returns the byte slice type.
func (h Hash) Bytes() []byte {
	return h[:]
}

// String is equal to HexString.
func (h Hash) String() string {
	return h.HexString()
}

// HexString returns the hex string format.
func (h Hash) HexString() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether the whole hash is zero.
func (h Hash) IsZero() bool {
	return h == zeroHash
}

// FromString resets the info hash from the string, which may be
// the raw 20 bytes, the hex string or the base32 string.
func (h *Hash) FromString(s string) (err error) {
	switch len(s) {
	case HashSize:
		copy(h[:], s)
	case 2 * HashSize:
		err = h.FromHexString(s)
	case 32:
		var bs []byte
		if bs, err = base32.StdEncoding.DecodeString(s); err == nil {
			copy(h[:], bs)
		}
	default:
		err = fmt.Errorf("hash string has bad length: %d", len(s))
	}

	return
}

// FromHexString resets the info hash from the hex string.
func (h *Hash) FromHexString(s string) (err error) {
	if len(s) != 2*HashSize {
		return fmt.Errorf("hash hex string has bad length: %d", len(s))
	}

	_, err = hex.Decode(h[:], []byte(s))
	return
}

// Compare returns 0 if h == o, -1 if h < o, or +1 if h > o.
func (h Hash) Compare(o Hash) int { return bytes.Compare(h[:], o[:]) }

/// >>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>

// Hashes is a set of Hashes.
type Hashes []Hash

// NewHashes splits the concatenation of the hashes, such as "pieces".
func NewHashes(b []byte) (Hashes, error) {
	_len := len(b)
	if _len%HashSize != 0 {
		return nil, fmt.Errorf("%w 'pieces': invalid bytes length '%d'", ErrInvalidField, _len)
	}

	hashes := make(Hashes, 0, _len/HashSize)
	for i := 0; i < _len; i += HashSize {
		var h Hash
		copy(h[:], b[i:i+HashSize])
		hashes = append(hashes, h)
	}
	return hashes, nil
}

// Contains reports whether hs contains h.
func (hs Hashes) Contains(h Hash) bool {
	for _, _h := range hs {
		if h == _h {
			return true
		}
	}
	return false
}
