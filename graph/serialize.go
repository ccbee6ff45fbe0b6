// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package graph

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/sneller-labs/graphcore/compr"
)

// magic identifies the flat binary graph format. There is
// deliberately no field tagging or symbol table: the payload is a
// fixed sequence of int64/DestID arrays with no internal
// variability, so a self-describing structured codec would only
// add overhead without adding safety.
const serializeMagic uint32 = 0x47524331 // "GRC1"

const (
	flagWeighted = 1 << 0
	flagInverted = 1 << 1
	flagDirected = 1 << 2
)

type serializeHeader struct {
	Magic          uint32
	Version        uint8
	Flags          uint8
	NumNodes       int64
	UncompressedSz int64
	EncodedSz      int64
}

// WriteTo serializes g to w. If compression is non-empty, it names
// a compr.Compression algorithm ("zstd", "zstd-better", "s2")
// wrapping the payload.
func (g *CSRGraph) WriteTo(w io.Writer, compression string) error {
	var payload bytes.Buffer
	putInt64Slice(&payload, g.outIndex)
	putDestIDSlice(&payload, g.outNeighs, g.weighted)
	if g.Inverted() {
		putInt64Slice(&payload, g.inIndex)
		putDestIDSlice(&payload, g.inNeighs, g.weighted)
	}

	raw := payload.Bytes()
	encoded := raw
	codecName := compression
	if compression != "" {
		c := compr.Compression(compression)
		if c == nil {
			return fmt.Errorf("graph: unknown compression %q", compression)
		}
		encoded = c.Compress(raw, nil)
		codecName = c.Name()
	}

	var flags uint8
	if g.weighted {
		flags |= flagWeighted
	}
	if g.Inverted() {
		flags |= flagInverted
	}
	if g.directed {
		flags |= flagDirected
	}

	hdr := serializeHeader{
		Magic:          serializeMagic,
		Version:        1,
		Flags:          flags,
		NumNodes:       int64(g.numNodes),
		UncompressedSz: int64(len(raw)),
		EncodedSz:      int64(len(encoded)),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if err := writeCompressionName(w, codecName); err != nil {
		return err
	}
	_, err := w.Write(encoded)
	return err
}

// ReadGraphFrom deserializes a CSRGraph written by WriteTo.
func ReadGraphFrom(r io.Reader) (*CSRGraph, error) {
	var hdr serializeHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr.Magic != serializeMagic {
		return nil, fmt.Errorf("graph: bad magic %#x", hdr.Magic)
	}
	if hdr.Version != 1 {
		return nil, fmt.Errorf("graph: unsupported format version %d", hdr.Version)
	}
	compression, err := readCompressionName(r)
	if err != nil {
		return nil, err
	}

	encoded := make([]byte, hdr.EncodedSz)
	if _, err := io.ReadFull(r, encoded); err != nil {
		return nil, err
	}

	raw := encoded
	if compression != "" {
		d := compr.Decompression(compression)
		if d == nil {
			return nil, fmt.Errorf("graph: unknown compression %q", compression)
		}
		raw = make([]byte, hdr.UncompressedSz)
		if err := d.Decompress(encoded, raw); err != nil {
			return nil, err
		}
	}

	g := &CSRGraph{
		numNodes: int(hdr.NumNodes),
		weighted: hdr.Flags&flagWeighted != 0,
		directed: hdr.Flags&flagDirected != 0,
	}
	buf := bytes.NewReader(raw)
	if g.outIndex, err = getInt64Slice(buf, int64(g.numNodes+1)); err != nil {
		return nil, err
	}
	numOut := g.outIndex[g.numNodes]
	if g.outNeighs, err = getDestIDSlice(buf, numOut, g.weighted); err != nil {
		return nil, err
	}
	if hdr.Flags&flagInverted != 0 {
		if g.inIndex, err = getInt64Slice(buf, int64(g.numNodes+1)); err != nil {
			return nil, err
		}
		numIn := g.inIndex[g.numNodes]
		if g.inNeighs, err = getDestIDSlice(buf, numIn, g.weighted); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func writeCompressionName(w io.Writer, name string) error {
	if len(name) > 255 {
		return fmt.Errorf("graph: compression name too long: %q", name)
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(len(name))); err != nil {
		return err
	}
	_, err := io.WriteString(w, name)
	return err
}

func readCompressionName(r io.Reader) (string, error) {
	var n uint8
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func putInt64Slice(buf *bytes.Buffer, s []int64) {
	var tmp [8]byte
	for _, v := range s {
		binary.LittleEndian.PutUint64(tmp[:], uint64(v))
		buf.Write(tmp[:])
	}
}

func getInt64Slice(r *bytes.Reader, n int64) ([]int64, error) {
	out := make([]int64, n)
	var tmp [8]byte
	for i := range out {
		if _, err := io.ReadFull(r, tmp[:]); err != nil {
			return nil, err
		}
		out[i] = int64(binary.LittleEndian.Uint64(tmp[:]))
	}
	return out, nil
}

func putDestIDSlice(buf *bytes.Buffer, s []DestID, weighted bool) {
	var tmp [12]byte
	for _, d := range s {
		binary.LittleEndian.PutUint32(tmp[:4], uint32(d.Target))
		if weighted {
			binary.LittleEndian.PutUint64(tmp[4:12], math.Float64bits(d.Weight))
			buf.Write(tmp[:12])
		} else {
			buf.Write(tmp[:4])
		}
	}
}

func getDestIDSlice(r *bytes.Reader, n int64, weighted bool) ([]DestID, error) {
	out := make([]DestID, n)
	recSize := 4
	if weighted {
		recSize = 12
	}
	tmp := make([]byte, recSize)
	for i := range out {
		if _, err := io.ReadFull(r, tmp); err != nil {
			return nil, err
		}
		out[i].Target = NodeID(binary.LittleEndian.Uint32(tmp[:4]))
		if weighted {
			out[i].Weight = math.Float64frombits(binary.LittleEndian.Uint64(tmp[4:12]))
		}
	}
	return out, nil
}
