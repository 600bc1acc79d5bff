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
	"bytes"
	"strconv"
)

// ValidateInteger checks the grammar of the integer starting at b[0],
// such as "i42e" or "i-7e".
//
// It rejects "-0", leading zeros and any byte other than a leading minus
// sign and the ASCII digits. The bytes after the terminating 'e' are ignored.
func ValidateInteger(b []byte) error {
	_, err := validateInteger(b, 0)
	return err
}

// validateInteger returns the index of the terminating 'e'.
func validateInteger(b []byte, base int) (end int, err error) {
	if len(b) == 0 || b[0] != 'i' {
		return 0, newError(ErrUnknownType, base, b)
	}

	if end = bytes.IndexByte(b, 'e'); end < 0 {
		return 0, newError(ErrMissingTerminator, base, b)
	}

	digits := b[1:end]
	if len(digits) > 1 {
		if digits[0] == '-' && digits[1] == '0' {
			return 0, newError(ErrNegativeZero, base, b[:end+1])
		} else if digits[0] == '0' {
			return 0, newError(ErrLeadingZero, base, b[:end+1])
		}
	}

	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 || !isDigits(digits) {
		return 0, newError(ErrInvalidInteger, base, b[:end+1])
	}

	return end, nil
}

// parseInteger parses the integer whose terminating 'e' is at b[end].
func parseInteger(b []byte, end, base int) (int64, error) {
	n, err := strconv.ParseInt(string(b[1:end]), 10, 64)
	if err != nil {
		return 0, newError(ErrInvalidInteger, base, b[:end+1])
	}
	return n, nil
}

// ValidateStringLength checks the length prefix of the byte string
// starting at b[0], such as "4:spam".
//
// The prefix before the first ':' must be a non-empty run of ASCII digits.
// It does not check whether the content is long enough.
func ValidateStringLength(b []byte) error {
	_, _, err := validateStringLength(b, 0)
	return err
}

// validateStringLength returns the index of the colon and the length
// of the string content.
func validateStringLength(b []byte, base int) (colon, length int, err error) {
	if colon = bytes.IndexByte(b, ':'); colon < 0 {
		return 0, 0, newError(ErrMissingColon, base, b)
	}

	prefix := b[:colon]
	if len(prefix) == 0 || !isDigits(prefix) {
		return 0, 0, newError(ErrInvalidLength, base, b[:colon+1])
	}

	if length, err = strconv.Atoi(string(prefix)); err != nil {
		return 0, 0, newError(ErrInvalidLength, base, b[:colon+1])
	}

	return colon, length, nil
}

// stringEnd returns the index one past the content of the byte string
// starting at b[0].
func stringEnd(b []byte, base int) (start, end int, err error) {
	colon, length, err := validateStringLength(b, base)
	if err != nil {
		return
	}

	start = colon + 1
	if length > len(b)-start {
		return 0, 0, newError(ErrTruncated, base, b)
	}
	return start, start + length, nil
}
