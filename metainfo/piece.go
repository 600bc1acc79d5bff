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
	"fmt"
	"io"
)

// Piece represents a torrent file piece.
type Piece struct {
	info  Info
	index int
}

// Piece returns the index-th piece.
func (info Info) Piece(index int) Piece {
	if index < 0 || index >= info.CountPieces() {
		panic(fmt.Errorf("piece index '%d' is out of range [0, %d)",
			index, info.CountPieces()))
	}
	return Piece{info: info, index: index}
}

// Index returns the index of the current piece.
func (p Piece) Index() int { return p.index }

// Offset returns the offset that the current piece is in all the files.
func (p Piece) Offset() int64 { return int64(p.index) * p.info.PieceLength }

// Hash returns the hash representation of the piece.
func (p Piece) Hash() (h Hash) { return p.info.Pieces[p.index] }

// Length returns the length of the current piece.
func (p Piece) Length() int64 {
	if p.index == p.info.CountPieces()-1 {
		return p.info.TotalLength() - int64(p.index)*p.info.PieceLength
	}
	return p.info.PieceLength
}

// Verify reports whether data is the content of the piece.
func (p Piece) Verify(data []byte) bool {
	return int64(len(data)) == p.Length() && NewHashFromBytes(data) == p.Hash()
}

// GeneratePieces splits the data read from r into the pieces
// and returns their hashes.
func GeneratePieces(r io.Reader, pieceLength int64) (hs Hashes, err error) {
	if pieceLength <= 0 {
		return nil, fmt.Errorf("invalid piece length '%d'", pieceLength)
	}

	buf := make([]byte, pieceLength)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			hs = append(hs, NewHashFromBytes(buf[:n]))
		}

		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			return hs, nil
		default:
			return nil, err
		}
	}
}

// VerifyData hashes the data of all the files, which are concatenated
// in order, and returns the indexes of the pieces that do not match.
func (info Info) VerifyData(r io.Reader) (bad []int, err error) {
	hs, err := GeneratePieces(r, info.PieceLength)
	if err != nil {
		return
	} else if len(hs) != info.CountPieces() {
		err = fmt.Errorf("expect %d pieces, but got %d", info.CountPieces(), len(hs))
		return
	}

	for i, h := range hs {
		if h != info.Pieces[i] {
			bad = append(bad, i)
		}
	}
	return
}
