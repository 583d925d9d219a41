package graph

// UnknownFamily is the label for characters outside every family group.
const UnknownFamily = "Unknown"

// familyGroups is static reference data, never derived from the graph.
var familyGroups = map[string][]string{
	"Pritchett":        {"Jay", "Gloria", "Manny", "Joe"},
	"Dunphy":           {"Claire", "Phil", "Haley", "Alex", "Luke"},
	"Tucker-Pritchett": {"Mitchell", "Cameron", "Lily"},
}

// FamilyOf returns the family group a character belongs to, or UnknownFamily
// for characters outside every group. The lookup never fails.
func FamilyOf(character string) string {
	for family, members := range familyGroups {
		for _, member := range members {
			if member == character {
				return family
			}
		}
	}
	return UnknownFamily
}
