package solver

import "fmt"

// CnfProblem is the input data structure described in spec.md §6: a
// variable count and a list of clauses, each a list of nonzero signed
// integers following the DIMACS convention. It is the boundary type
// between the (out of scope) DIMACS reader and the solver core.
type CnfProblem struct {
	NumVariables int
	Clauses      [][]int
}

// CNF returns a DIMACS CNF representation of the problem, used by the
// round-trip property in spec.md §8.
func (p *CnfProblem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", p.NumVariables, len(p.Clauses))
	for _, clause := range p.Clauses {
		for _, lit := range clause {
			res += fmt.Sprintf("%d ", lit)
		}
		res += "0\n"
	}
	return res
}

// buildProblem converts a CnfProblem into the internal clause
// representation the solver operates on: a list of original clauses (size
// >= 2) and a list of unit literals to assign immediately at level 0.
// Tautological clauses are discarded (spec.md §3); an empty clause, or a
// unit literal contradicting one already known, is reported as an
// immediate Unsat.
func buildProblem(p *CnfProblem) (clauses []*Clause, units []Lit, status Status) {
	known := make(map[Var]bool, p.NumVariables)
	knownVal := make(map[Var]bool, p.NumVariables)
	addUnit := func(l Lit) bool {
		v := l.Var()
		if seen, ok := known[v]; ok {
			if seen != l.IsPositive() {
				return false
			}
			return true
		}
		known[v] = l.IsPositive()
		knownVal[v] = l.IsPositive()
		units = append(units, l)
		return true
	}
	for _, raw := range p.Clauses {
		if len(raw) == 0 {
			return nil, nil, Unsat
		}
		lits := make([]Lit, len(raw))
		for i, v := range raw {
			lits[i] = IntToLit(v)
		}
		c, tautology := NewClause(lits)
		if tautology {
			continue
		}
		switch c.Len() {
		case 0:
			return nil, nil, Unsat
		case 1:
			if !addUnit(c.Get(0)) {
				return nil, nil, Unsat
			}
		default:
			clauses = append(clauses, c)
		}
	}
	return clauses, units, Indet
}
