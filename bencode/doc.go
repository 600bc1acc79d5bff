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

// Package bencode implements a strict decoder for bencoded data, the
// serialization format used by the BitTorrent metainfo files.
//
// The decoder works on a complete in-memory buffer and produces a tree of
// Value, which is one of an integer, a byte string, a list or a dictionary.
// The dictionary keeps its keys in the order they are encountered.
//
// Decoding is layered: Classify inspects the leading byte of a value,
// ValidateInteger and ValidateStringLength check the scalar grammar,
// ScanEnd finds where a list or dictionary ends, and SplitItems cuts the
// content of a list or dictionary into its encoded items. Decode composes
// them recursively.
//
// Every error returned by the package is an *Error wrapping one of the Err*
// sentinels, so it can be checked with errors.Is.
package bencode
