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
	"fmt"
)

// Predefine some errors.
var (
	ErrUnknownType       = errors.New("unknown data structure type")
	ErrMissingTerminator = errors.New("cannot find end of integer data")
	ErrNegativeZero      = errors.New("negative zero is not allowed for integer data")
	ErrLeadingZero       = errors.New("leading zeros are not allowed for integer data")
	ErrInvalidInteger    = errors.New("invalid integer data")
	ErrMissingColon      = errors.New("colon is required for string data")
	ErrInvalidLength     = errors.New("string data length must be a non-negative integer")
	ErrTruncated         = errors.New("unexpected end of data")
	ErrInvalidKeyType    = errors.New("dictionary key must be a string")
	ErrMissingValue      = errors.New("dictionary key has no value")
	ErrDuplicateKey      = errors.New("duplicate dictionary key")
	ErrTooDeep           = errors.New("data is too deeply nested")
	ErrTrailingData      = errors.New("trailing data after the top-level value")
	ErrTooLarge          = errors.New("data is too large")
)

// maxErrorData is the maximum number of bytes of the offending data
// kept in an Error.
const maxErrorData = 32

// Error is the error returned by the decoder.
type Error struct {
	Err    error  // One of the Err* sentinels.
	Offset int    // The offset of the offending data in the decoded buffer.
	Data   []byte // The leading bytes of the offending data.
}

func newError(err error, offset int, data []byte) *Error {
	if len(data) > maxErrorData {
		data = data[:maxErrorData]
	}
	return &Error{Err: err, Offset: offset, Data: append([]byte(nil), data...)}
}

func (e *Error) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("bencode: %s at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("bencode: %s at offset %d: %q", e.Err, e.Offset, e.Data)
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error { return e.Err }
