package dispatchers

import (
	"sort"
	"strings"
)

// levenshtein calculates the edit distance between two strings in runes.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarTriggers returns up to maxResults trigger phrases that the
// input nearly starts with. A trigger allows one edit per three runes, and
// never more than maxDistance.
func FindSimilarTriggers(input string, triggers []string, maxResults int) []string {
	const maxDistance = 3

	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []suggestion

	for _, trigger := range triggers {
		name := strings.TrimSpace(trigger)
		if seen[name] {
			continue
		}
		seen[name] = true

		limit := min(maxDistance, len([]rune(name))/3)
		dist := min(levenshtein(input, name), levenshtein(leading(input, name), name))
		if dist <= limit && dist > 0 {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}

	return result
}

// leading returns as many runes of input as like has.
func leading(input, like string) string {
	r := []rune(input)
	n := len([]rune(like))
	if n >= len(r) {
		return input
	}
	return string(r[:n])
}
