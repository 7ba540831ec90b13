package model

import (
	"log"
	"strings"
)

// Macros holds the nutrition summary of a recipe. Values are free text
// ("450 kcal", "30g") and every field is optional.
type Macros struct {
	Calories string `json:"calories,omitempty"`
	Protein  string `json:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty"`
}

// Empty reports whether no macro field is set.
func (m *Macros) Empty() bool {
	return m == nil || (m.Calories == "" && m.Protein == "" && m.Carbs == "" && m.Fat == "")
}

// MacroLines flattens macros into "<Label>: <value>" lines in fixed order.
// The store only supports scalar and array attribute types, so the structured
// record is stored as a string array. An all-empty record yields nil so the
// attribute is omitted rather than stored as an empty list.
func MacroLines(m *Macros) []string {
	if m == nil {
		return nil
	}
	var lines []string
	if m.Calories != "" {
		lines = append(lines, "Calories: "+m.Calories)
	}
	if m.Protein != "" {
		lines = append(lines, "Protein: "+m.Protein)
	}
	if m.Carbs != "" {
		lines = append(lines, "Carbs: "+m.Carbs)
	}
	if m.Fat != "" {
		lines = append(lines, "Fat: "+m.Fat)
	}
	return lines
}

// ParseMacroLines rebuilds a Macros record from stored lines. Parsing is
// deliberately tolerant: malformed lines and unknown labels are logged and
// skipped, never an error, so a read cannot fail on bad stored data. Returns
// nil when no line parses, distinguishing "no macro data" from an empty record.
func ParseMacroLines(lines []string) *Macros {
	var m Macros
	parsed := false
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ": ")
		if !ok || value == "" {
			log.Printf("skipping malformed macro line %q", line)
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "calories", "energy":
			m.Calories = value
		case "protein":
			m.Protein = value
		case "carbs", "carbohydrates":
			m.Carbs = value
		case "fat":
			m.Fat = value
		default:
			log.Printf("skipping unrecognized macro label %q", key)
			continue
		}
		parsed = true
	}
	if !parsed {
		return nil
	}
	return &m
}
