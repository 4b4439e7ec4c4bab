package spinglass

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// maxInferredSpins caps the size ReadCouplings infers when n == 0. The dense
// matrix holds n² float64s; pass n explicitly for larger models.
const maxInferredSpins = 1 << 13

// coupling is one parsed "i j w" triple.
type coupling struct {
	i, j int
	w    float64
}

// ReadCouplings parses whitespace-separated "i j w" lines into a symmetric
// n×n coupling matrix. Blank lines and lines starting with '#' are skipped.
// Indices may be written as integral floats ("12.0").
//
// Entries for the same (i, j) are summed, then the matrix is symmetrized as
// (J + Jᵀ)/2, so a file listing each pair once in either orientation yields
// J_ij = J_ji = w/2.
//
// n == 0 infers the size as max index + 1, up to maxInferredSpins. An
// explicit n must keep n² representable as an int.
//
// Errors: ErrBadLine, ErrIndexOutOfRange, ErrNaNInf, ErrEmptyModel, wrapped
// with the offending line number where one applies.
func ReadCouplings(r io.Reader, n int) (*mat.SymDense, error) {
	if n < 0 || (n > 0 && n > math.MaxInt/n) {
		return nil, fmt.Errorf("spinglass: size %d: %w", n, ErrIndexOutOfRange)
	}

	var (
		acc  = make(map[[2]int]float64)
		maxI = -1
		ln   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseCoupling(line)
		if err != nil {
			return nil, fmt.Errorf("spinglass: line %d: %w", ln, err)
		}
		if n > 0 && (c.i >= n || c.j >= n) {
			return nil, fmt.Errorf("spinglass: line %d: %w", ln, ErrIndexOutOfRange)
		}
		if n == 0 && max(c.i, c.j) >= maxInferredSpins {
			return nil, fmt.Errorf("spinglass: line %d: inferred size above %d: %w",
				ln, maxInferredSpins, ErrIndexOutOfRange)
		}
		maxI = max(maxI, c.i, c.j)
		acc[[2]int{c.i, c.j}] += c.w
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spinglass: read couplings: %w", err)
	}

	if n == 0 {
		n = maxI + 1
	}
	if n <= 0 {
		return nil, ErrEmptyModel
	}

	// Each entry contributes w/2 to (i, j) and to (j, i); a diagonal entry
	// lands on itself twice.
	sym := make([]float64, n*n)
	for ij, w := range acc {
		sym[ij[0]*n+ij[1]] += w / 2
		sym[ij[1]*n+ij[0]] += w / 2
	}

	return mat.NewSymDense(n, sym), nil
}

// LoadCouplings opens path and delegates to ReadCouplings.
func LoadCouplings(path string, n int) (*mat.SymDense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spinglass: open couplings: %w", err)
	}
	defer f.Close()

	return ReadCouplings(f, n)
}

func parseCoupling(line string) (coupling, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return coupling{}, ErrBadLine
	}

	i, err := parseIndex(fields[0])
	if err != nil {
		return coupling{}, err
	}
	j, err := parseIndex(fields[1])
	if err != nil {
		return coupling{}, err
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return coupling{}, ErrBadLine
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return coupling{}, ErrNaNInf
	}

	return coupling{i: i, j: j, w: w}, nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, ErrBadLine
	}
	if v < 0 || v > math.MaxInt32 {
		return 0, ErrIndexOutOfRange
	}

	return int(v), nil
}
