// Package inventory implements the quantity normalizer and the dish
// feasibility filter: which menu items can the kitchen actually prepare
// from the unexpired, in-stock ingredients it has today.
package inventory

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"promoboard/internal/models"
)

// quantityPattern matches a leading decimal number followed by a unit token,
// with or without whitespace between them ("2.5 kg", "500ml").
var quantityPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([a-z]+)`)

// ParseQuantity parses a raw quantity string into a value and a unit.
// Matching is case-insensitive and fails soft: unrecognized input returns
// ok=false rather than an error, and the item is treated as unavailable.
func ParseQuantity(raw string) (float64, models.Unit, bool) {
	m := quantityPattern.FindStringSubmatch(strings.TrimSpace(strings.ToLower(raw)))
	if m == nil {
		return 0, "", false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}

	unit, ok := parseUnit(m[2])
	if !ok {
		return 0, "", false
	}
	return value, unit, true
}

// parseUnit maps a lowercased unit token onto the closed Unit set.
// "pcs", "piece" and "pieces" all denote a piece count.
func parseUnit(token string) (models.Unit, bool) {
	switch token {
	case "kg":
		return models.UnitKilogram, true
	case "g":
		return models.UnitGram, true
	case "l":
		return models.UnitLiter, true
	case "ml":
		return models.UnitMilliliter, true
	case "pcs", "piece", "pieces":
		return models.UnitPiece, true
	default:
		return "", false
	}
}

// Standardize converts a parsed quantity to its standard scale: grams for
// mass, milliliters for volume, plain count for pieces. The three kinds are
// never converted into each other; the result only feeds a positivity check.
func Standardize(value float64, unit models.Unit) (float64, bool) {
	switch unit {
	case models.UnitKilogram, models.UnitLiter:
		return value * 1000, true
	case models.UnitGram, models.UnitMilliliter, models.UnitPiece:
		return value, true
	default:
		return 0, false
	}
}

// StandardizedQuantity parses and standardizes a raw quantity string in one
// step. ok=false means the string is unparseable and the item is invalid.
func StandardizedQuantity(raw string) (float64, bool) {
	value, unit, ok := ParseQuantity(raw)
	if !ok {
		return 0, false
	}
	return Standardize(value, unit)
}

// ValidIngredients returns the set of lowercased ingredient names that are
// usable right now: expiry strictly after now and standardized quantity
// strictly positive. Items with unparseable quantities are excluded.
func ValidIngredients(items []models.InventoryItem, now time.Time) map[string]struct{} {
	available := make(map[string]struct{}, len(items))
	for _, item := range items {
		if !item.ExpiryDate.After(now) {
			continue
		}
		qty, ok := StandardizedQuantity(item.QuantityRaw)
		if !ok || qty <= 0 {
			continue
		}
		available[strings.ToLower(strings.TrimSpace(item.Name))] = struct{}{}
	}
	return available
}

// PossibleDishes returns the names of dishes whose required ingredients are
// all present in the available set. The comparison lowercases and trims each
// required ingredient. Output preserves menu order; a dish with no required
// ingredients is always preparable.
func PossibleDishes(menu []models.MenuItem, available map[string]struct{}) []string {
	possible := make([]string, 0, len(menu))
	for _, dish := range menu {
		feasible := true
		for _, required := range dish.Ingredients {
			if _, ok := available[strings.ToLower(strings.TrimSpace(required))]; !ok {
				feasible = false
				break
			}
		}
		if feasible {
			possible = append(possible, dish.Name)
		}
	}
	return possible
}
