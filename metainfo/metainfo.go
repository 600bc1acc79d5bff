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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xgfone/torrentparser/bencode"
	"github.com/xgfone/torrentparser/internal/helper"
)

// Predefine some errors.
var (
	ErrNotDictionary = errors.New("metainfo: the top level is not a dictionary")
	ErrNoAnnounce    = errors.New("metainfo: no announce")
	ErrNoInfo        = errors.New("metainfo: no info")
	ErrInvalidField  = errors.New("metainfo: invalid field")
)

// Bytes is the raw bencoded data.
type Bytes []byte

// AnnounceList is a list of the announces.
type AnnounceList [][]string

// Unique returns the list of the unique announces.
func (al AnnounceList) Unique() (announces []string) {
	announces = make([]string, 0, len(al))
	for _, tier := range al {
		for _, v := range tier {
			if v != "" && !helper.ContainsString(announces, v) {
				announces = append(announces, v)
			}
		}
	}
	return
}

// URLList represents a list of the url.
//
// BEP 19
type URLList []string

// FullURL returns the index-th full url.
//
// For the single-file case, name is the "name" of "info".
// For the multi-file case, name is the path "name/path/file"
// from "info" and "files".
//
// See http://bittorrent.org/beps/bep_0019.html
func (us URLList) FullURL(index int, name string) (url string) {
	if url = us[index]; strings.HasSuffix(url, "/") {
		url += name
	}
	return
}

// MetaInfo represents the .torrent file.
type MetaInfo struct {
	InfoBytes    Bytes        // BEP 3, the raw bencoded "info"
	Announce     string       // BEP 3
	AnnounceList AnnounceList // BEP 12
	URLList      URLList      // BEP 19

	// All of them are optional.
	// See https://wiki.theory.org/index.php/BitTorrentSpecification.

	// CreationDate is the creation time of the torrent, in standard UNIX epoch
	// format (seconds since 1-Jan-1970 00:00:00 UTC).
	CreationDate int64
	// Comment is the free-form textual comments of the author.
	Comment string
	// CreatedBy is name and version of the program used to create the .torrent.
	CreatedBy string
	// Encoding is the string encoding format used to generate the pieces part
	// of the info dictionary in the .torrent metafile.
	Encoding string
}

// Parse parses a MetaInfo from the content of the .torrent file.
//
// The malformed optional fields are ignored.
func Parse(data []byte) (mi MetaInfo, err error) {
	v, err := bencode.Decode(data)
	if err != nil {
		return
	}

	dict, ok := v.Dict()
	if !ok {
		err = ErrNotDictionary
		return
	}

	mi.Announce = optionalString(dict, "announce")
	mi.Comment = optionalString(dict, "comment")
	mi.CreatedBy = optionalString(dict, "created by")
	mi.Encoding = optionalString(dict, "encoding")
	mi.CreationDate = optionalInt(dict, "creation date")
	mi.AnnounceList = parseAnnounceList(dict)
	mi.URLList = parseURLList(dict)

	if dict.Has("info") {
		mi.InfoBytes, err = rawValue(data, "info")
	}
	return
}

// rawValue returns a copy of the encoded value of the key
// in the encoded dictionary data.
func rawValue(data []byte, key string) (raw Bytes, err error) {
	items, err := bencode.SplitItems(data[1 : len(data)-1])
	if err != nil {
		return
	}

	for i := 0; i+1 < len(items); i += 2 {
		k, err := bencode.Decode(items[i])
		if err != nil {
			return nil, err
		}

		// The last one wins, the same as the decoder.
		if s, _ := k.Str(); s == key {
			raw = items[i+1]
		}
	}

	return append(Bytes(nil), raw...), nil
}

func parseAnnounceList(dict *bencode.Dict) (al AnnounceList) {
	v, ok := dict.Get("announce-list")
	if !ok {
		return nil
	}

	tiers, ok := v.List()
	if !ok {
		ignoreField("announce-list", v)
		return nil
	}

	al = make(AnnounceList, 0, len(tiers))
	for _, tier := range tiers {
		announces, ok := stringList(tier)
		if !ok {
			ignoreField("announce-list", v)
			return nil
		}
		al = append(al, announces)
	}
	return
}

func parseURLList(dict *bencode.Dict) URLList {
	v, ok := dict.Get("url-list")
	if !ok {
		return nil
	}

	if s, ok := v.Str(); ok {
		return URLList{s}
	} else if urls, ok := stringList(v); ok {
		return urls
	}

	ignoreField("url-list", v)
	return nil
}

// Load loads a MetaInfo from an io.Reader.
func Load(r io.Reader) (mi MetaInfo, err error) {
	data, err := io.ReadAll(r)
	if err == nil {
		mi, err = Parse(data)
	}
	return
}

// LoadFromFile loads a MetaInfo from a file.
func LoadFromFile(filename string) (mi MetaInfo, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()

	if mi, err = Load(f); err != nil {
		err = fmt.Errorf("fail to load '%s': %w", filename, err)
	}
	return
}

// TrackerURL returns the url of the tracker, that's, the "announce".
func (mi MetaInfo) TrackerURL() (string, error) {
	if mi.Announce == "" {
		return "", ErrNoAnnounce
	}
	return mi.Announce, nil
}

// Announces returns all the announces.
func (mi MetaInfo) Announces() AnnounceList {
	if len(mi.AnnounceList) > 0 {
		return mi.AnnounceList
	} else if mi.Announce != "" {
		return [][]string{{mi.Announce}}
	}
	return nil
}

// Magnet creates a Magnet from a MetaInfo.
//
// If displayName or infoHash is empty, it will be got from the info part.
func (mi MetaInfo) Magnet(displayName string, infoHash Hash) (m Magnet) {
	m.Trackers = append(m.Trackers, mi.Announces().Unique()...)

	if displayName == "" {
		info, _ := mi.Info()
		displayName = info.Name
	}

	if infoHash.IsZero() {
		infoHash = mi.InfoHash()
	}

	m.DisplayName = displayName
	m.InfoHash = infoHash
	return
}

// InfoHash returns the hash of the info.
func (mi MetaInfo) InfoHash() Hash {
	return NewHashFromBytes(mi.InfoBytes)
}

// Info parses the InfoBytes to the Info.
func (mi MetaInfo) Info() (info Info, err error) {
	if len(mi.InfoBytes) == 0 {
		return info, ErrNoInfo
	}

	v, err := bencode.Decode(mi.InfoBytes)
	if err == nil {
		info, err = parseInfo(v)
	}
	return
}

func ignoreField(key string, v bencode.Value) {
	logrus.WithFields(logrus.Fields{"field": key, "kind": v.Kind()}).
		Debug("metainfo: ignore the malformed field")
}
