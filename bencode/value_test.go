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

import (
	"reflect"
	"slices"
	"testing"
)

func TestDict(t *testing.T) {
	d := NewDict()
	if !d.Set("z", NewInt(1)) || !d.Set("a", NewInt(2)) || !d.Set("m", NewInt(3)) {
		t.Fatal("expect the keys to be new")
	}
	if d.Set("z", NewInt(4)) {
		t.Error("expect the key 'z' to be replaced")
	}

	if keys := slices.Collect(d.Keys()); !reflect.DeepEqual(keys, []string{"z", "a", "m"}) {
		t.Errorf("unexpected keys %v", keys)
	}
	if v, ok := d.Get("z"); !ok {
		t.Error("missing the key 'z'")
	} else if i, _ := v.Int(); i != 4 {
		t.Errorf("expect 4, but got %d", i)
	}
	if d.Has("b") || d.Len() != 3 {
		t.Errorf("unexpected dict %s", NewDictValue(d))
	}

	var nilDict *Dict
	if nilDict.Len() != 0 || nilDict.Has("a") {
		t.Error("expect the nil dict to be empty")
	}
	for range nilDict.All() {
		t.Error("expect no element in the nil dict")
	}
}

func TestValueAccessors(t *testing.T) {
	v := NewString("spam")
	if _, ok := v.Int(); ok {
		t.Error("a string is not an integer")
	}
	if _, ok := v.List(); ok {
		t.Error("a string is not a list")
	}
	if _, ok := v.Dict(); ok {
		t.Error("a string is not a dict")
	}
	if s, ok := v.Str(); !ok || s != "spam" {
		t.Errorf("expect 'spam', but got '%s'", s)
	}

	var zero Value
	if zero.Kind() != Invalid || zero.String() != "<invalid>" || zero.Interface() != nil {
		t.Errorf("unexpected zero value %s", zero)
	}
}

func TestValueEqual(t *testing.T) {
	d1 := NewDict()
	d1.Set("a", NewInt(1))
	d1.Set("b", NewList(NewString("x")))

	d2 := NewDict()
	d2.Set("a", NewInt(1))
	d2.Set("b", NewList(NewString("x")))

	d3 := NewDict()
	d3.Set("b", NewList(NewString("x")))
	d3.Set("a", NewInt(1))

	tests := []struct {
		v1, v2 Value
		equal  bool
	}{
		{NewInt(1), NewInt(1), true},
		{NewInt(1), NewInt(2), false},
		{NewInt(1), NewString("1"), false},
		{NewString(""), NewBytes(nil), true},
		{NewList(), NewList(), true},
		{NewList(NewInt(1)), NewList(NewInt(1), NewInt(2)), false},
		{NewDictValue(d1), NewDictValue(d2), true},
		{NewDictValue(d1), NewDictValue(d3), false},
		{NewDictValue(nil), NewDictValue(NewDict()), true},
	}

	for i, test := range tests {
		if equal := test.v1.Equal(test.v2); equal != test.equal {
			t.Errorf("%d: %s == %s: expect %v, but got %v", i, test.v1, test.v2, test.equal, equal)
		}
	}
}

func TestValueString(t *testing.T) {
	d := NewDict()
	d.Set("k\x00", NewList(NewInt(-1), NewBytes([]byte{0xff})))
	if s := NewDictValue(d).String(); s != `{"k\x00": [-1, "\xff"]}` {
		t.Errorf("unexpected string '%s'", s)
	}
}
