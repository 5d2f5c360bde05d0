package solver

// Stats are statistics about the resolution of a problem, provided for
// information purposes only, matching the fields spec.md §6 requires the
// CLI to print.
type Stats struct {
	Variables                int
	Clauses                  int
	NbDecisions              int
	NbConflicts              int
	NbLearned                int
	Propagations             int
	NbRestarts               int
	ClausesEliminatedBySimp  int
	ClausesEliminatedByReduce int
	PureLiterals             int
}
