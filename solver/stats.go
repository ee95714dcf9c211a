package solver

// Stats accumulates counters describing the work a solve performed.
// Grounded on the original's picross::GridStats; field names translated
// to Go conventions but the counters themselves are unchanged.
type Stats struct {
	NbSolutions                        uint32
	MaxNbSolutions                     uint32 // as requested of the solver
	MaxBranchingDepth                  int
	NbBranchingCalls                   uint32
	TotalNbBranchingAlternatives       uint64
	MaxInitialNbAlternatives           uint32
	MaxNbAlternatives                  uint32
	MaxNbAlternativesWithChange        uint32
	NbReduceListOfLinesCalls           uint32
	MaxReduceListSize                  int
	TotalLinesReduced                  uint64
	NbReduceAndCountAlternativesCalls  uint32
	NbFullGridPassCalls                uint32
	NbSingleLinePassCalls              uint32
	NbSingleLinePassCallsWithChange     uint32
	NbObserverCallbackCalls             uint64
	// MaxNbAlternativesByBranchingDepth[d] is the largest alternative
	// count seen for a branch decision made at depth d.
	MaxNbAlternativesByBranchingDepth []uint32
}

func (s *Stats) recordInitialAlternatives(n uint32) {
	if s == nil {
		return
	}
	if n > s.MaxInitialNbAlternatives {
		s.MaxInitialNbAlternatives = n
	}
}

func (s *Stats) recordReduction(n uint32, changed bool) {
	if s == nil {
		return
	}
	if n > s.MaxNbAlternatives {
		s.MaxNbAlternatives = n
	}
	if changed && n > s.MaxNbAlternativesWithChange {
		s.MaxNbAlternativesWithChange = n
	}
}

func (s *Stats) recordSingleLinePass(changed bool) {
	if s == nil {
		return
	}
	s.NbSingleLinePassCalls++
	if changed {
		s.NbSingleLinePassCallsWithChange++
	}
}

func (s *Stats) recordFullGridPass() {
	if s == nil {
		return
	}
	s.NbFullGridPassCalls++
}

func (s *Stats) recordBranching(depth int, nbAlternatives uint32) {
	if s == nil {
		return
	}
	s.NbBranchingCalls++
	s.TotalNbBranchingAlternatives += uint64(nbAlternatives)
	// A branch decision taken at depth d creates child grids at depth d+1.
	if depth+1 > s.MaxBranchingDepth {
		s.MaxBranchingDepth = depth + 1
	}
	for len(s.MaxNbAlternativesByBranchingDepth) <= depth {
		s.MaxNbAlternativesByBranchingDepth = append(s.MaxNbAlternativesByBranchingDepth, 0)
	}
	if nbAlternatives > s.MaxNbAlternativesByBranchingDepth[depth] {
		s.MaxNbAlternativesByBranchingDepth[depth] = nbAlternatives
	}
}

func (s *Stats) recordSolution() {
	if s == nil {
		return
	}
	s.NbSolutions++
}

func (s *Stats) recordObserverCall() {
	if s == nil {
		return
	}
	s.NbObserverCallbackCalls++
}
