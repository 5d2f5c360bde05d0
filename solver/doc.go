/*
Package solver implements a conflict-driven clause learning (CDCL)
SAT solver: given a set of propositional clauses in conjunctive normal
form, it decides whether there exists an assignment of the variables
that makes every clause true, and if so produces one.

Describing a problem

A problem is a CnfProblem: a variable count plus a list of clauses,
each a list of nonzero signed integers in the DIMACS convention
(positive n asserts variable n, negative n negates it).

    pb := &solver.CnfProblem{
        NumVariables: 3,
        Clauses: [][]int{
            {1, 2, 3},
            {-1, -2},
            {2, -3},
        },
    }

A DIMACS CNF stream can be parsed directly:

    pb, err := solver.ParseDIMACS(f)

Solving a problem

    s := solver.New(pb)
    status := s.Solve(context.Background())

Solve returns Sat, Unsat, or Interrupted if the supplied context was
cancelled before a verdict was reached. If the status is Sat, the
model is available:

    if status == solver.Sat {
        model := s.Model() // model[i] is the value of variable i+1
    }

Statistics about the run (decisions, conflicts, learned clauses,
restarts, and so on) are available via s.Stats regardless of outcome.

A Solver is built for one problem and is not safe for concurrent access:
only one goroutine may call its methods at a time. Calling Solve again
after it has returned Sat or Unsat is safe and returns the same status
and model without resuming search.
*/
package solver
