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
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const xtPrefix = "urn:btih:"

// Magnet is the magnet link of a torrent.
//
// See BEP 9.
type Magnet struct {
	InfoHash    Hash       // "xt"
	Trackers    []string   // "tr"
	DisplayName string     // "dn", optional
	Params      url.Values // The rest parameters, such as "xs", "as", etc.
}

func (m Magnet) String() string {
	vs := make(url.Values, len(m.Params)+2)
	for key, values := range m.Params {
		vs[key] = append([]string(nil), values...)
	}
	if m.DisplayName != "" {
		vs.Set("dn", m.DisplayName)
	}
	if len(m.Trackers) > 0 {
		vs["tr"] = append(vs["tr"], m.Trackers...)
	}

	// Some clients require "xt" to be the first parameter and unescaped.
	query := "xt=" + xtPrefix + m.InfoHash.HexString()
	if len(vs) > 0 {
		query += "&" + vs.Encode()
	}
	return (&url.URL{Scheme: "magnet", RawQuery: query}).String()
}

// ParseMagnetURI parses the magnet link.
//
// The info hash in "xt" may be the hex or base32 string.
func ParseMagnetURI(uri string) (m Magnet, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return m, fmt.Errorf("invalid magnet uri: %w", err)
	} else if u.Scheme != "magnet" {
		return m, fmt.Errorf("invalid magnet scheme '%s'", u.Scheme)
	}

	query := u.Query()
	xt := query.Get("xt")
	if !strings.HasPrefix(xt, xtPrefix) {
		return m, errors.New("missing the magnet parameter 'xt'")
	}

	switch hash := xt[len(xtPrefix):]; len(hash) {
	case 2 * HashSize, 32:
		if err = m.InfoHash.FromString(hash); err != nil {
			return m, fmt.Errorf("invalid magnet info hash '%s': %w", hash, err)
		}
	default:
		return m, fmt.Errorf("invalid magnet info hash '%s'", hash)
	}

	m.DisplayName = query.Get("dn")
	m.Trackers = query["tr"]
	query.Del("xt")
	query.Del("dn")
	query.Del("tr")
	if len(query) > 0 {
		m.Params = query
	}

	return
}
