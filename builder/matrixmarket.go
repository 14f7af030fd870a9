package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/evcent/graph"
)

// ReadMatrixMarket parses a coordinate-format Matrix Market stream
// into a graph: one "row col [weight]" line per edge, 1-indexed.
// A symmetric matrix yields an undirected graph (each stored entry is
// one undirected edge), a general one a directed graph. A pattern
// field yields an unweighted graph; real or integer fields carry the
// per-edge weight. Self-loops (diagonal entries) are always accepted.
func ReadMatrixMarket[V graph.ID, W graph.Weight](r io.Reader) (*graph.Graph[V, W], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}
	header := strings.Fields(strings.ToLower(sc.Text()))
	// %%MatrixMarket matrix coordinate <field> <symmetry>
	if len(header) != 5 || header[0] != "%%matrixmarket" || header[1] != "matrix" || header[2] != "coordinate" {
		return nil, fmt.Errorf("%w: header %q", ErrFormat, sc.Text())
	}
	field, symmetry := header[3], header[4]
	weighted := field != "pattern"
	if field != "pattern" && field != "real" && field != "integer" {
		return nil, fmt.Errorf("%w: unsupported field %q", ErrFormat, field)
	}
	if symmetry != "general" && symmetry != "symmetric" {
		return nil, fmt.Errorf("%w: unsupported symmetry %q", ErrFormat, symmetry)
	}

	// Skip comments up to the dimensions line.
	var dims []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		dims = strings.Fields(line)
		break
	}
	if len(dims) != 3 {
		return nil, fmt.Errorf("%w: missing dimensions line", ErrFormat)
	}
	rows, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, fmt.Errorf("%w: rows %q", ErrFormat, dims[0])
	}
	cols, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, fmt.Errorf("%w: cols %q", ErrFormat, dims[1])
	}
	nnz, err := strconv.Atoi(dims[2])
	if err != nil {
		return nil, fmt.Errorf("%w: entries %q", ErrFormat, dims[2])
	}
	if rows != cols {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotSquare, rows, cols)
	}

	opts := []graph.Option{graph.WithLoops()}
	if symmetry == "general" {
		opts = append(opts, graph.WithDirected())
	}
	if weighted {
		opts = append(opts, graph.WithWeighted())
	}
	g, err := graph.New[V, W](rows, opts...)
	if err != nil {
		return nil, err
	}

	read := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: entry %q", ErrFormat, line)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row id %q", ErrFormat, fields[0])
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: col id %q", ErrFormat, fields[1])
		}
		if from < 1 || from > rows || to < 1 || to > rows {
			return nil, fmt.Errorf("%w: entry (%d, %d) outside %d×%d", ErrFormat, from, to, rows, rows)
		}
		var w W
		if weighted {
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: entry %q lacks a value", ErrFormat, line)
			}
			val, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: value %q", ErrFormat, fields[2])
			}
			w = W(val)
		}
		if err = g.AddEdge(V(from-1), V(to-1), w); err != nil {
			return nil, err
		}
		read++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("builder: reading matrix market input: %w", err)
	}
	if read != nnz {
		return nil, fmt.Errorf("%w: header promises %d entries, found %d", ErrFormat, nnz, read)
	}
	return g, nil
}
