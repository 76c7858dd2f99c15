package analyzer

// walkItem is one edge of an ordered road walk, reduced to what the
// directional statistics need: its item tag ("", "agent", "alien",
// "hamburger", ...) and its facing relative to the walk's direction of
// travel — 1 forward, 0 backward, -1 undirected (§4.5 "Back-edges into
// items").
type walkItem struct {
	item   string
	relDir int
}

const (
	itemAgent     = "agent"
	itemAlien     = "alien"
	itemHamburger = "hamburger"
)

// buildWalkItems reduces a component's ordered edges to their walk-relative
// item facings.
func buildWalkItems(edges []roadEdge, walk []walkStep) []walkItem {
	items := make([]walkItem, len(walk))
	for i, step := range walk {
		e := edges[step.edgeIdx]
		relDir := -1
		if e.hasDir {
			forward := step.from == e.a && step.to == e.b
			switch {
			case forward && e.facesB:
				relDir = 1
			case forward && !e.facesB:
				relDir = 0
			case !forward && e.facesB:
				relDir = 0
			default: // !forward && !e.facesB
				relDir = 1
			}
		}
		items[i] = walkItem{item: e.item, relDir: relDir}
	}
	return items
}

// roadDirectionalStats holds one road's directional statistics, before
// aggregation to the tiling (§4.5 "Directional road statistics").
type roadDirectionalStats struct {
	numAgents                 int
	numAliens                 int
	aliensCaught              int
	maxAliensBetweenTwoAgents int
	maxHamburgersInFrontOfAlien int
	maxAliensRunningTowardsAgent int
	foodChainSets             int
}

func analyzeRoad(items []walkItem) roadDirectionalStats {
	var s roadDirectionalStats
	for _, it := range items {
		switch it.item {
		case itemAgent:
			s.numAgents++
		case itemAlien:
			s.numAliens++
		}
	}

	caught := aliensCaught(items)
	s.aliensCaught = len(caught)
	s.maxAliensRunningTowardsAgent = maxAliensRunningTowardsAgent(items, caught)
	s.maxHamburgersInFrontOfAlien = maxHamburgersInFrontOfAlien(items, caught)
	s.maxAliensBetweenTwoAgents = maxAliensBetweenTwoAgents(items)
	s.foodChainSets = foodChainSets(items)
	return s
}

// aliensCaught processes agents in position order; each agent catches the
// nearest uncaught alien in the direction it faces (§4.5 "Aliens caught").
// Returns the set of caught alien indices.
func aliensCaught(items []walkItem) map[int]bool {
	caught := make(map[int]bool)
	for i, it := range items {
		if it.item != itemAgent || it.relDir == -1 {
			continue
		}
		if it.relDir == 1 {
			for j := i + 1; j < len(items); j++ {
				if items[j].item == itemAlien && !caught[j] {
					caught[j] = true
					break
				}
			}
		} else {
			for j := i - 1; j >= 0; j-- {
				if items[j].item == itemAlien && !caught[j] {
					caught[j] = true
					break
				}
			}
		}
	}
	return caught
}

// maxAliensRunningTowardsAgent counts, per facing direction, uncaught
// aliens with an agent strictly ahead of them, and returns the larger of
// the two directional totals (§4.5 "Max aliens running towards an agent").
func maxAliensRunningTowardsAgent(items []walkItem, caught map[int]bool) int {
	var towardsHigh, towardsLow int
	for i, it := range items {
		if it.item != itemAlien || caught[i] || it.relDir == -1 {
			continue
		}
		if it.relDir == 1 {
			for j := i + 1; j < len(items); j++ {
				if items[j].item == itemAgent {
					towardsHigh++
					break
				}
			}
		} else {
			for j := i - 1; j >= 0; j-- {
				if items[j].item == itemAgent {
					towardsLow++
					break
				}
			}
		}
	}
	if towardsHigh > towardsLow {
		return towardsHigh
	}
	return towardsLow
}

// maxHamburgersInFrontOfAlien counts, for each uncaught alien, hamburgers
// strictly ahead of it in its facing direction, stopping at the next
// uncaught alien facing the same way, and returns the largest such count
// (§4.5 "Max hamburgers in front of an alien").
func maxHamburgersInFrontOfAlien(items []walkItem, caught map[int]bool) int {
	best := 0
	for i, it := range items {
		if it.item != itemAlien || caught[i] || it.relDir == -1 {
			continue
		}
		count := 0
		if it.relDir == 1 {
			for j := i + 1; j < len(items); j++ {
				if items[j].item == itemAlien && !caught[j] && items[j].relDir == 1 {
					break
				}
				if items[j].item == itemHamburger {
					count++
				}
			}
		} else {
			for j := i - 1; j >= 0; j-- {
				if items[j].item == itemAlien && !caught[j] && items[j].relDir == 0 {
					break
				}
				if items[j].item == itemHamburger {
					count++
				}
			}
		}
		if count > best {
			best = count
		}
	}
	return best
}

// maxAliensBetweenTwoAgents counts, for each agent, consecutive aliens in
// its facing direction until another agent is reached, resetting to zero
// if that agent faces the same way, and returns the largest count (§4.5
// "Max aliens between two agents").
func maxAliensBetweenTwoAgents(items []walkItem) int {
	best := 0
	for i, it := range items {
		if it.item != itemAgent || it.relDir == -1 {
			continue
		}
		count := 0
		if it.relDir == 1 {
			for j := i + 1; j < len(items); j++ {
				if items[j].item == itemAgent {
					if items[j].relDir == 1 {
						count = 0
					}
					break
				}
				if items[j].item == itemAlien {
					count++
				}
			}
		} else {
			for j := i - 1; j >= 0; j-- {
				if items[j].item == itemAgent {
					if items[j].relDir == 0 {
						count = 0
					}
					break
				}
				if items[j].item == itemAlien {
					count++
				}
			}
		}
		if count > best {
			best = count
		}
	}
	return best
}

// compactItem is a non-empty-item walk entry, tagged with its position in
// the original walk so matches can be marked consumed across passes.
type compactItem struct {
	origIdx int
	item    string
}

// foodChainSets counts non-overlapping forward occurrences of
// (agent, alien, hamburger) in walk order, then non-overlapping reverse
// occurrences among edges the forward pass left untouched (§4.5
// "Food-chain sets").
func foodChainSets(items []walkItem) int {
	compact := make([]compactItem, 0, len(items))
	for i, it := range items {
		if it.item != "" {
			compact = append(compact, compactItem{origIdx: i, item: it.item})
		}
	}

	consumed := make(map[int]bool)
	forward := matchTriples(compact, consumed)

	reversed := make([]compactItem, len(compact))
	for i, c := range compact {
		reversed[len(compact)-1-i] = c
	}
	reverse := matchTriples(reversed, consumed)

	return forward + reverse
}

// matchTriples greedily scans seq left to right for the contiguous pattern
// (agent, alien, hamburger) among entries not already in consumed, marking
// matched entries consumed.
func matchTriples(seq []compactItem, consumed map[int]bool) int {
	var filtered []compactItem
	for _, it := range seq {
		if !consumed[it.origIdx] {
			filtered = append(filtered, it)
		}
	}

	count := 0
	for i := 0; i+2 < len(filtered); {
		if filtered[i].item == itemAgent && filtered[i+1].item == itemAlien && filtered[i+2].item == itemHamburger {
			consumed[filtered[i].origIdx] = true
			consumed[filtered[i+1].origIdx] = true
			consumed[filtered[i+2].origIdx] = true
			count++
			i += 3
			continue
		}
		i++
	}
	return count
}
