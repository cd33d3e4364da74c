package office

import "math/rand"

// employeeNames is the table new hires draw their name from.
var employeeNames = []string{
	"Alice", "Antoine", "Bastien", "Camille", "Chloé", "Clément", "Daniel",
	"Élodie", "Emma", "Fabrice", "Florian", "Gaëlle", "Hugo", "Inès",
	"Jade", "Julien", "Karim", "Léa", "Louis", "Lucie", "Manon", "Mathis",
	"Nadia", "Nathan", "Océane", "Paul", "Pauline", "Quentin", "Raphaël",
	"Sarah", "Simon", "Théo", "Victor", "Yanis", "Zoé",
}

func randomName(rng *rand.Rand) string {
	return employeeNames[rng.Intn(len(employeeNames))]
}
