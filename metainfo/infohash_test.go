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
	"errors"
	"testing"
)

func TestHash(t *testing.T) {
	hexHash := "0001020304050607080909080706050403020100"

	var h Hash
	if err := h.FromString(hexHash); err != nil {
		t.Fatal(err)
	} else if hexs := h.String(); hexs != hexHash {
		t.Errorf("expect '%s', but got '%s'", hexHash, hexs)
	} else if h != NewHashFromHexString(hexHash) {
		t.Errorf("unexpected hash '%s'", h)
	}

	h = Hash{}
	raw := string([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err := h.FromString(raw); err != nil {
		t.Error(err)
	} else if hexs := h.HexString(); hexs != "0001020304050607080900010203040506070809" {
		t.Errorf("unexpected hash '%s'", hexs)
	}

	if err := h.FromString("abc"); err == nil {
		t.Error("expect an error for the bad length")
	}
	if err := h.FromHexString("zz01020304050607080909080706050403020100"); err == nil {
		t.Error("expect an error for the bad hex string")
	}

	if !(Hash{}).IsZero() || h.IsZero() {
		t.Error("unexpected zero hash")
	} else if h.Compare(h) != 0 || (Hash{}).Compare(h) != -1 {
		t.Error("unexpected hash comparison")
	}
}

func TestHashes(t *testing.T) {
	hash1 := NewHashFromHexString("0101010101010101010101010101010101010101")
	hash2 := NewHashFromHexString("0202020202020202020202020202020202020202")

	b := append(hash1.Bytes(), hash2.Bytes()...)
	hashes, err := NewHashes(b)
	if err != nil {
		t.Fatal(err)
	}

	if _len := len(hashes); _len != 2 {
		t.Fatalf("expect the len(hashes)==2, but got '%d'", _len)
	} else if hashes[0] != hash1 || hashes[1] != hash2 {
		t.Errorf("unexpected hashes %v", hashes)
	} else if !hashes.Contains(hash2) || hashes.Contains(Hash{}) {
		t.Errorf("unexpected hashes %v", hashes)
	}

	if _, err = NewHashes(b[1:]); !errors.Is(err, ErrInvalidField) {
		t.Errorf("expect ErrInvalidField, but got '%v'", err)
	}
}
