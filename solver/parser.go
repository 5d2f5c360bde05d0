package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DIMACS ingestion. Per spec.md §1, the text reader itself is an external
// collaborator, not part of the solver core; it is kept here as a small
// lexer producing a CnfProblem.

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a (possibly negated) integer from r. b holds the last byte
// read, which may be whitespace, '-', or a digit; leading whitespace is
// skipped. Returns io.EOF if the stream ends before any digit is read.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, errors.Wrap(err, "cannot read digit")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "cannot read signed int")
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	if err == io.EOF {
		// The number ran up to the end of the stream: return it, and leave
		// a blank in *b so that the next call reports io.EOF.
		*b = ' '
		err = nil
	}
	return res, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "cannot read header")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, errors.Errorf("invalid header syntax %q", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "nbvars not an int: %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "nbclauses not an int: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseDIMACS reads a DIMACS CNF stream and returns the equivalent
// CnfProblem. Lines starting with 'c' are comments; the 'p cnf <nvars>
// <nclauses>' header must appear before any clause; each clause is a
// sequence of nonzero signed integers terminated by 0.
func ParseDIMACS(f io.Reader) (*CnfProblem, error) {
	r := bufio.NewReader(f)
	var pb CnfProblem
	headerSeen := false
	b, err := r.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case b == 'p':
			pb.NumVariables, _, err = parseHeader(r)
			if err != nil {
				return nil, errors.Wrap(err, "cannot parse DIMACS header")
			}
			headerSeen = true
		case isSpace(b):
			// ignore stray whitespace between tokens
		default:
			if !headerSeen {
				return nil, errors.New("clause found before 'p cnf' header")
			}
			lits := make([]int, 0, 3)
			for {
				val, rerr := readInt(&b, r)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, errors.New("unfinished clause at end of file")
					}
					err = io.EOF
					break
				}
				if rerr != nil {
					return nil, errors.Wrap(rerr, "cannot parse clause")
				}
				if val == 0 {
					pb.Clauses = append(pb.Clauses, lits)
					break
				}
				if abs(val) > pb.NumVariables {
					return nil, errors.Errorf("literal %d out of range for %d declared variables", val, pb.NumVariables)
				}
				lits = append(lits, val)
			}
			continue
		}
		if err == nil {
			b, err = r.ReadByte()
		}
	}
	if err != io.EOF {
		return nil, err
	}
	if !headerSeen {
		return nil, errors.New("missing 'p cnf' header")
	}
	return &pb, nil
}
