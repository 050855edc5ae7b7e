package clipexport

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/uprootiny/umbra-sub002/minkowski"
)

// ErrInvalidURLState indicates a URL state fragment failed to parse.
var ErrInvalidURLState = errors.New("clipexport: invalid URL state fragment")

// URLState is the minimal navigational state spec.md §5 allows in a
// shareable URL: the lens focus and scale, plus an optional name.
type URLState struct {
	Focus []float64 // length dim+1, 4-decimal precision round trip
	Scale float64
	Name  string
}

// EncodeURLState renders state as `f0,f1,...,fn,scale[;urlenc(name)]`,
// per spec.md §5, each focus component and scale at 4-decimal
// precision.
func EncodeURLState(s URLState) string {
	parts := make([]string, 0, len(s.Focus)+1)
	for _, f := range s.Focus {
		parts = append(parts, strconv.FormatFloat(f, 'f', 4, 64))
	}
	parts = append(parts, strconv.FormatFloat(s.Scale, 'f', 4, 64))
	frag := strings.Join(parts, ",")
	if s.Name != "" {
		frag += ";" + url.QueryEscape(s.Name)
	}
	return frag
}

// DecodeURLState parses a fragment produced by EncodeURLState. The
// decoded focus is re-normalized onto the hyperboloid (floats
// round-tripped at 4-decimal precision may drift off the hyperboloid
// surface by a negligible amount).
func DecodeURLState(frag string) (URLState, error) {
	name := ""
	body := frag
	if i := strings.IndexByte(frag, ';'); i >= 0 {
		body = frag[:i]
		decoded, err := url.QueryUnescape(frag[i+1:])
		if err != nil {
			return URLState{}, ErrInvalidURLState
		}
		name = decoded
	}

	fields := strings.Split(body, ",")
	if len(fields) < 2 {
		return URLState{}, ErrInvalidURLState
	}
	nums := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return URLState{}, ErrInvalidURLState
		}
		nums[i] = v
	}

	focus := nums[:len(nums)-1]
	scale := nums[len(nums)-1]
	minkowski.NormalizeHyperboloid(focus)

	return URLState{Focus: focus, Scale: scale, Name: name}, nil
}
