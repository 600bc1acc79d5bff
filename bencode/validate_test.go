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
	"errors"
	"testing"
)

func TestValidateInteger(t *testing.T) {
	for _, s := range []string{"i0e", "i-45e", "i34e", "i1e", "i-1e", "i10e"} {
		if err := ValidateInteger([]byte(s)); err != nil {
			t.Errorf("%q: unexpected error: %s", s, err)
		}
	}

	tests := []struct {
		data string
		err  error
	}{
		{"i-0e", ErrNegativeZero},
		{"i-01e", ErrNegativeZero},
		{"i024e", ErrLeadingZero},
		{"i00e", ErrLeadingZero},
		{"i42", ErrMissingTerminator},
		{"ie", ErrInvalidInteger},
		{"i-e", ErrInvalidInteger},
		{"i1-2e", ErrInvalidInteger},
		{"i+1e", ErrInvalidInteger},
		{"i 1e", ErrInvalidInteger},
		{"4:spam", ErrUnknownType},
	}

	for _, test := range tests {
		if err := ValidateInteger([]byte(test.data)); !errors.Is(err, test.err) {
			t.Errorf("%q: expect error '%s', but got '%v'", test.data, test.err, err)
		}
	}
}

func TestValidateStringLength(t *testing.T) {
	for _, s := range []string{"0:", "4:spam", "10:0123456789", "04:spam"} {
		if err := ValidateStringLength([]byte(s)); err != nil {
			t.Errorf("%q: unexpected error: %s", s, err)
		}
	}

	tests := []struct {
		data string
		err  error
	}{
		{"4spam", ErrMissingColon},
		{"4e:toto", ErrInvalidLength},
		{"-4:spam", ErrInvalidLength},
		{":spam", ErrInvalidLength},
		{"99999999999999999999999:x", ErrInvalidLength},
	}

	for _, test := range tests {
		if err := ValidateStringLength([]byte(test.data)); !errors.Is(err, test.err) {
			t.Errorf("%q: expect error '%s', but got '%v'", test.data, test.err, err)
		}
	}
}
