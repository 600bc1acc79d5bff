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
	"fmt"

	"github.com/xgfone/torrentparser/bencode"
)

func invalidField(key string) error {
	return fmt.Errorf("%w '%s'", ErrInvalidField, key)
}

func optionalString(dict *bencode.Dict, key string) string {
	v, ok := dict.Get(key)
	if !ok {
		return ""
	}

	s, ok := v.Str()
	if !ok {
		ignoreField(key, v)
	}
	return s
}

func optionalInt(dict *bencode.Dict, key string) int64 {
	v, ok := dict.Get(key)
	if !ok {
		return 0
	}

	i, ok := v.Int()
	if !ok {
		ignoreField(key, v)
	}
	return i
}

func requiredString(dict *bencode.Dict, key string) (string, error) {
	v, _ := dict.Get(key)
	if s, ok := v.Str(); ok {
		return s, nil
	}
	return "", invalidField(key)
}

func requiredInt(dict *bencode.Dict, key string) (int64, error) {
	v, _ := dict.Get(key)
	if i, ok := v.Int(); ok {
		return i, nil
	}
	return 0, invalidField(key)
}

func stringList(v bencode.Value) ([]string, bool) {
	vs, ok := v.List()
	if !ok {
		return nil, false
	}

	ss := make([]string, len(vs))
	for i, e := range vs {
		if ss[i], ok = e.Str(); !ok {
			return nil, false
		}
	}
	return ss, true
}
