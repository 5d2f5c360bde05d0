package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACSBasic(t *testing.T) {
	input := "c a comment\np cnf 3 2\n1 -2 3 0\n-1 2 0\n"
	pb, err := ParseDIMACS(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, pb.NumVariables)
	assert.Equal(t, [][]int{{1, -2, 3}, {-1, 2}}, pb.Clauses)
}

func TestParseDIMACSMissingHeader(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("1 2 0\n"))
	assert.Error(t, err)
}

func TestParseDIMACSLiteralOutOfRange(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p cnf 1 1\n1 2 0\n"))
	assert.Error(t, err)
}

func TestParseDIMACSUnfinishedClause(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p cnf 2 1\n1 2"))
	assert.Error(t, err)
}

func TestParseDIMACSWhitespaceTolerant(t *testing.T) {
	input := "  \n p cnf 2 1 \n  1   -2   0  \n"
	pb, err := ParseDIMACS(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, -2}}, pb.Clauses)
}
