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

import "github.com/xgfone/torrentparser/bencode"

// Info is the file inforatino.
type Info struct {
	// Name is the name of the file in the single file case.
	// Or, it is the name of the directory in the muliple file case.
	Name string // BEP 3

	// PieceLength is the number of bytes in each piece, which is usually
	// a power of 2.
	PieceLength int64 // BEP 3

	// Pieces is the concatenation of all 20-byte SHA1 hash values,
	// one per piece (byte string, i.e. not urlencoded).
	Pieces Hashes // BEP 3

	// Length is the length of the file in bytes in the single file case.
	//
	// It's mutually exclusive with Files.
	Length int64 // BEP 3

	// Files is the list of all the files in the multi-file case.
	//
	// For the purposes of the other keys, the multi-file case is treated
	// as only having a single file by concatenating the files in the order
	// they appear in the files list.
	//
	// It's mutually exclusive with Length.
	Files []File // BEP 3
}

func parseInfo(v bencode.Value) (info Info, err error) {
	dict, ok := v.Dict()
	if !ok {
		return info, invalidField("info")
	}

	if info.Name, err = requiredString(dict, "name"); err != nil {
		return
	}

	if info.PieceLength, err = requiredInt(dict, "piece length"); err != nil {
		return
	} else if info.PieceLength <= 0 {
		return info, invalidField("piece length")
	}

	pieces, _ := dict.Get("pieces")
	if b, ok := pieces.Bytes(); !ok {
		return info, invalidField("pieces")
	} else if info.Pieces, err = NewHashes(b); err != nil {
		return
	}

	files, hasFiles := dict.Get("files")
	switch {
	case hasFiles && dict.Has("length"):
		return info, invalidField("length")

	case hasFiles:
		vs, ok := files.List()
		if !ok || len(vs) == 0 {
			return info, invalidField("files")
		}

		info.Files = make([]File, len(vs))
		for i, f := range vs {
			if info.Files[i], err = parseFile(f); err != nil {
				return
			}
		}

	default:
		if info.Length, err = requiredInt(dict, "length"); err != nil {
			return
		} else if info.Length < 0 {
			return info, invalidField("length")
		}
	}

	return
}

// IsDir reports whether the name is a directory, that's, the file is not
// a single file.
func (info Info) IsDir() bool { return len(info.Files) != 0 }

// CountPieces returns the number of the pieces.
func (info Info) CountPieces() int { return len(info.Pieces) }

// TotalLength returns the total length of the torrent file.
func (info Info) TotalLength() (ret int64) {
	if info.IsDir() {
		for _, fi := range info.Files {
			ret += fi.Length
		}
	} else {
		ret = info.Length
	}
	return
}

// AllFiles returns all the files.
//
// Notice: for the single file, the Path is nil.
func (info Info) AllFiles() []File {
	if info.IsDir() {
		return info.Files
	}
	return []File{{Length: info.Length}}
}
