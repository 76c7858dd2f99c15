package ntmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ntpanic/solver/internal/ntkerrors"
)

// Card score directions.
const (
	CardTypeMax = "max"
	CardTypeMin = "min"
)

// Card is one entry of the card catalogue (§6).
type Card struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Scorable reports whether the card has a statistic key and a recognised
// score direction. Cards without a key are non-scoring and must never
// appear in any selection (§8 boundary behaviour).
func (c Card) Scorable() bool {
	return c.Key != "" && (c.Type == CardTypeMax || c.Type == CardTypeMin)
}

// CardCatalog is the ordered list of cards.
type CardCatalog []Card

// LoadCardCatalog parses and validates a card catalogue JSON file (§6).
func LoadCardCatalog(path string) (CardCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ntkerrors.NewIOError("read", path, err)
	}

	var cards CardCatalog
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, ntkerrors.NewCatalogueError(path, fmt.Sprintf("invalid JSON: %v", err))
	}

	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if seen[c.Number] {
			return nil, ntkerrors.NewCatalogueError(path, fmt.Sprintf("duplicate card number %d", c.Number))
		}
		seen[c.Number] = true
		if c.Type != "" && c.Type != CardTypeMax && c.Type != CardTypeMin {
			return nil, ntkerrors.NewCatalogueError(path, fmt.Sprintf("card %d: unknown type %q", c.Number, c.Type))
		}
	}
	return cards, nil
}

// Scorable returns the subset of cards eligible for ranking, in catalogue
// order.
func (cc CardCatalog) Scorable() []Card {
	out := make([]Card, 0, len(cc))
	for _, c := range cc {
		if c.Scorable() {
			out = append(out, c)
		}
	}
	return out
}
