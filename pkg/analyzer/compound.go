package analyzer

// addCompoundStats finishes total_captured_aliens per §4.5's side-effect
// contract (catalogue field plus the aliens_caught just computed), then
// derives the three compound statistics from it.
func addCompoundStats(stats *Stats) {
	stats.TotalCapturedAliens += stats.AliensCaught

	remainingAliens := stats.TotalAliens - stats.TotalCapturedAliens
	stats.AliensTimesUFOs = remainingAliens * stats.TotalUFOs
	stats.AliensTimesHamburgers = remainingAliens * stats.TotalHamburgers

	stats.CitizenDogPairs = min(stats.TotalBoys+stats.TotalGirls, stats.TotalDogs)
}
