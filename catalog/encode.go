package catalog

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/manybody/topograph/topo"
)

// Encode returns the canonical byte encoding of a graph: site count, edge
// count, then the colored edge list sorted by (u, v), all varint-packed.
// Graphs with equal site count, edge set, and colors encode identically;
// the symmetry table is deliberately excluded.
func Encode(g topo.Graph) []byte {
	colors := g.EdgeColors()
	keys := make([]topo.EdgeKey, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}
		return keys[i].V < keys[j].V
	})

	enc := make([]byte, 0, 2+6*len(keys))
	enc = binary.AppendUvarint(enc, uint64(g.SiteCount()))
	enc = binary.AppendUvarint(enc, uint64(len(keys)))
	for _, k := range keys {
		enc = binary.AppendUvarint(enc, uint64(k.U))
		enc = binary.AppendUvarint(enc, uint64(k.V))
		enc = binary.AppendUvarint(enc, uint64(colors[k]))
	}
	return enc
}

// encodeMatrix packs an n×n distance matrix row by row. Entries may be the
// Unreachable sentinel (-1), hence signed varints.
func encodeMatrix(m [][]int) []byte {
	n := len(m)
	out := make([]byte, 0, 1+n*n)
	out = binary.AppendUvarint(out, uint64(n))
	for _, row := range m {
		for _, d := range row {
			out = binary.AppendVarint(out, int64(d))
		}
	}
	return out
}

// decodeMatrix is the inverse of encodeMatrix.
func decodeMatrix(src []byte) ([][]int, error) {
	un, read := binary.Uvarint(src)
	if read <= 0 {
		return nil, fmt.Errorf("catalog: truncated distance matrix header")
	}
	n := int(un)
	src = src[read:]
	m := make([][]int, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		for j := 0; j < n; j++ {
			d, read := binary.Varint(src)
			if read <= 0 {
				return nil, fmt.Errorf("catalog: truncated distance matrix at (%d,%d)", i, j)
			}
			m[i][j] = int(d)
			src = src[read:]
		}
	}
	return m, nil
}

// siteCountOf reads the leading site count back out of an encoding.
func siteCountOf(enc []byte) int {
	n, read := binary.Uvarint(enc)
	if read <= 0 {
		return 0
	}
	return int(n)
}
