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
	"path/filepath"

	"github.com/xgfone/torrentparser/bencode"
)

// File represents a file in the multi-file case.
type File struct {
	// Length is the length of the file in bytes.
	Length int64 // BEP 3

	// Paths is a list containing one or more string elements that together
	// represent the path and filename. Each element in the list corresponds
	// to either a directory name or (in the case of the final element) the
	// filename.
	//
	// For example, a the file "dir1/dir2/file.ext" would consist of three
	// string elements: "dir1", "dir2", and "file.ext". This is encoded as
	// a bencoded list of strings such as l4:dir14:dir28:file.exte.
	Paths []string // BEP 3
}

func parseFile(v bencode.Value) (f File, err error) {
	dict, ok := v.Dict()
	if !ok {
		return f, invalidField("files")
	}

	if f.Length, err = requiredInt(dict, "length"); err != nil {
		return
	} else if f.Length < 0 {
		return f, invalidField("length")
	}

	paths, _ := dict.Get("path")
	if f.Paths, ok = stringList(paths); !ok || len(f.Paths) == 0 {
		return f, invalidField("path")
	}
	return
}

func (f File) String() string {
	return filepath.Join(f.Paths...)
}

// Path returns the path of the current.
func (f File) Path(info Info) string {
	if info.IsDir() {
		return filepath.Join(info.Name, f.String())
	}
	return info.Name
}
