package superprofile

import "testing"

// Cada entrada del catalogo (salvo las custom, que no existen aqui) debe
// corresponder a una hoja real del arbol; de lo contrario el selector
// ofreceria ids que la reconciliacion ignoraria en silencio.
func TestCatalogMatchesLeafTable(t *testing.T) {
	leaves := map[string]bool{}
	for _, id := range LeafIDs() {
		leaves[id] = true
	}

	seen := map[string]bool{}
	for _, entry := range Catalog() {
		if seen[entry.ID] {
			t.Fatalf("duplicate catalog id %q", entry.ID)
		}
		seen[entry.ID] = true

		if !leaves[entry.ID] {
			t.Fatalf("catalog id %q has no leaf in the tree", entry.ID)
		}
		if entry.Name == "" || entry.Category == "" {
			t.Fatalf("catalog id %q missing name or category", entry.ID)
		}
	}

	for _, id := range AvoidLeafIDs() {
		if !seen[id] {
			t.Fatalf("avoid leaf %q missing from catalog", id)
		}
	}
}
