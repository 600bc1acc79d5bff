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

package metainfo

import (
	"encoding/base32"
	"testing"
)

func TestParseMagnetURI(t *testing.T) {
	hash := NewHashFromHexString("c9e15763f722f23e98a29decdfae341b98d53056")
	uri := "magnet:?xt=urn:btih:" + hash.HexString() +
		"&dn=Cosmos+Laundromat&tr=udp%3A%2F%2Fa.example.com%3A80&tr=http%3A%2F%2Fb.example.com%2Fannounce&xs=http%3A%2F%2Fc.example.com%2Ft"

	m, err := ParseMagnetURI(uri)
	if err != nil {
		t.Fatal(err)
	}

	if m.InfoHash != hash || m.DisplayName != "Cosmos Laundromat" {
		t.Errorf("unexpected magnet %+v", m)
	} else if len(m.Trackers) != 2 || m.Trackers[1] != "http://b.example.com/announce" {
		t.Errorf("unexpected trackers %v", m.Trackers)
	} else if xs := m.Params.Get("xs"); xs != "http://c.example.com/t" {
		t.Errorf("unexpected params %v", m.Params)
	}

	b32 := base32.StdEncoding.EncodeToString(hash[:])
	if m, err = ParseMagnetURI("magnet:?xt=urn:btih:" + b32); err != nil {
		t.Error(err)
	} else if m.InfoHash != hash || m.Trackers != nil || m.Params != nil {
		t.Errorf("unexpected magnet %+v", m)
	} else if s := m.String(); s != "magnet:?xt=urn:btih:"+hash.HexString() {
		t.Errorf("unexpected magnet uri '%s'", s)
	}

	for _, uri := range []string{
		"http://example.com",
		"magnet:?dn=name",
		"magnet:?xt=urn:btih:abc",
		"magnet:?xt=urn:sha1:" + hash.HexString(),
		"magnet:?xt=urn:btih:" + b32[:31] + "!",
	} {
		if _, err := ParseMagnetURI(uri); err == nil {
			t.Errorf("%q: expect an error", uri)
		}
	}
}
