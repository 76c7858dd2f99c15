package analyzer

// addDirectionalStats walks every road component, computes its directional
// statistics, and aggregates them to the tiling per §4.5's rule: sum for
// aliens_caught and food_chain_sets, max for everything else.
func addDirectionalStats(stats *Stats, edges []roadEdge, components []roadComponent) {
	for _, c := range components {
		items := buildWalkItems(edges, c.walk)
		road := analyzeRoad(items)

		stats.AliensCaught += road.aliensCaught
		stats.FoodChainSets += road.foodChainSets

		if road.maxAliensBetweenTwoAgents > stats.MaxAliensBetweenTwoAgents {
			stats.MaxAliensBetweenTwoAgents = road.maxAliensBetweenTwoAgents
		}
		if road.maxHamburgersInFrontOfAlien > stats.MaxHamburgersInFrontOfAlien {
			stats.MaxHamburgersInFrontOfAlien = road.maxHamburgersInFrontOfAlien
		}
		if road.maxAliensRunningTowardsAgent > stats.MaxAliensRunningTowardsAgent {
			stats.MaxAliensRunningTowardsAgent = road.maxAliensRunningTowardsAgent
		}
		if road.numAgents > stats.MaxAgentsOnOneRoad {
			stats.MaxAgentsOnOneRoad = road.numAgents
		}
		if road.numAliens > stats.MaxAliensOnOneRoad {
			stats.MaxAliensOnOneRoad = road.numAliens
		}
	}
}
