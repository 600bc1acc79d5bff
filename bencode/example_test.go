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

package bencode_test

import (
	"errors"
	"fmt"

	"github.com/xgfone/torrentparser/bencode"
)

func ExampleDecode() {
	v, err := bencode.Decode([]byte("d8:announce23:http://tracker/announce4:infod4:name4:spamee"))
	if err != nil {
		fmt.Println(err)
		return
	}

	dict, _ := v.Dict()
	announce, _ := dict.Get("announce")
	url, _ := announce.Str()
	fmt.Println(url)
	fmt.Println(v)

	// Output:
	// http://tracker/announce
	// {"announce": "http://tracker/announce", "info": {"name": "spam"}}
}

func ExampleDecode_error() {
	_, err := bencode.Decode([]byte("li024ee"))
	fmt.Println(errors.Is(err, bencode.ErrLeadingZero))
	fmt.Println(err)

	// Output:
	// true
	// bencode: leading zeros are not allowed for integer data at offset 1: "i024e"
}

func ExampleSplitItems() {
	items, _ := bencode.SplitItems([]byte("4:spami1e3:cat"))
	for _, item := range items {
		fmt.Printf("%s\n", item)
	}

	// Output:
	// 4:spam
	// i1e
	// 3:cat
}
