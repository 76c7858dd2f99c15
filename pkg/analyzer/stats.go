package analyzer

// Stats is the flat statistics record produced for one complete tiling.
// Field names mirror the underlying snake_case statistic names in Go's
// exported-identifier convention; pkg/ntstore narrows each of these to the
// 8-bit unsigned columnar representation.
type Stats struct {
	// Simple aggregates: sums over the nine placed tiles.
	TotalHouses         int
	TotalUFOs           int
	TotalGirls          int
	TotalBoys           int
	TotalDogs           int
	TotalHamburgers     int
	TotalAliens         int
	TotalAgents         int
	TotalCapturedAliens int
	TotalCurves         int

	TotalTilesWithoutRoads int

	// Road graph reconstruction.
	TotalRoads           int
	LongestRoadSize      int
	MaxRoadsOfSameLength int

	// Directional road statistics, aggregated to the tiling (§4.5
	// "Aggregation to the tiling").
	AliensCaught              int
	FoodChainSets             int
	MaxAliensBetweenTwoAgents int
	MaxHamburgersInFrontOfAlien int
	MaxAliensRunningTowardsAgent int
	MaxAgentsOnOneRoad        int
	MaxAliensOnOneRoad        int

	// Adjacency-component statistics.
	LargestDogGroup      int
	LargestHouseGroup    int
	LargestCitizenGroup  int
	LargestSafeZoneSize  int

	// Compound statistics.
	AliensTimesUFOs       int
	AliensTimesHamburgers int
	CitizenDogPairs       int
}
