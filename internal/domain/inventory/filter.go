package inventory

import "strings"

// Filter poda el árbol según una búsqueda de texto libre (insensible a
// mayúsculas, espacios recortados). Reglas:
//   - Consulta vacía o solo espacios: identidad (árbol completo, mismo orden).
//   - Una categoría entra si su nombre coincide o alguna de sus sub-categorías
//     coincide. Si coincide el nombre de la categoría se conservan TODAS sus
//     sub-categorías; si no, solo las que coinciden.
//   - Categorías sin ninguna coincidencia se descartan.
//
// Filter es idempotente: filtrar el resultado con la misma consulta lo deja igual.
func Filter(tree Tree, query string) Tree {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tree
	}

	out := make(Tree, 0, len(tree))
	for _, cat := range tree {
		categoryMatch := strings.Contains(strings.ToLower(cat.Name), q)

		var matching []SubCategory
		for _, sub := range cat.SubCategories {
			if strings.Contains(strings.ToLower(sub.Name), q) {
				matching = append(matching, sub)
			}
		}

		if !categoryMatch && len(matching) == 0 {
			continue
		}

		pruned := cat
		if !categoryMatch {
			pruned.SubCategories = matching
		}
		out = append(out, pruned)
	}
	return out
}
