package heredity

// AssignmentCount reports how many joint assignments exact inference will
// score for this pedigree: one per evidence-consistent trait subset and per
// disjoint gene partition, 2^unobserved * 3^n in total. Returned as a float64
// because the count outgrows uint64 well before enumeration becomes feasible
// anyway; exact below 2^53, approximate beyond.
func AssignmentCount(ped *Pedigree) float64 {
	unobserved := 0
	for _, name := range ped.names {
		if ped.people[name].Trait == nil {
			unobserved++
		}
	}

	count := 1.0
	for i := 0; i < unobserved; i++ {
		count *= 2
	}
	for i := 0; i < ped.Len(); i++ {
		count *= 3
	}

	return count
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
