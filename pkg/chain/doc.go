// Package chain orders colored languages by greedy color proximity.
//
// # Overview
//
// [Build] walks a [Set] of (name, color) entries in ascending name order and
// produces a [Chain]: for each "from" entry it appends the closest entry that
// has not been used yet, so similar colors end up next to each other.
//
// This is a greedy nearest-neighbor heuristic, not a shortest Hamiltonian
// path. Its output is a deterministic function of the set contents:
//
//   - The first entry by name is the anchor and always comes first.
//   - Only the first outer step appends its "from" entry directly. Later
//     steps append just the neighbor they found, so a step whose candidates
//     are all used appends nothing.
//   - Ties go to the candidate that sorts first by name.
//
// # Usage
//
//	set := chain.NewSet(map[string]color.Color{
//	    "A": color.MustParse("#000000"),
//	    "B": color.MustParse("#010101"),
//	    "C": color.MustParse("#FFFFFF"),
//	})
//	c := chain.Build(set)
//	fmt.Println(c.Names()) // [A B C]
package chain
