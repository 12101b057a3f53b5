package headers

import "github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"

// Project proyecta el catálogo según la configuración del tenant.
//
//   - cfg nil: se devuelve el catálogo completo, en orden de catálogo.
//   - cfg presente: se filtra el catálogo a las claves que aparecen en
//     cfg.Fields y se reordena según la posición de cada clave en Fields.
//     Las claves de Fields sin descriptor en el catálogo no aportan nada
//     (deriva de configuración: degradar, no romper).
//
// La función es pura y determinista; siempre devuelve un slice nuevo.
func Project(catalog []Column, cfg *entity.HeadersConfig) []Column {
	if cfg == nil {
		out := make([]Column, len(catalog))
		copy(out, catalog)
		return out
	}

	pos := make(map[string]int, len(cfg.Fields))
	for i, key := range cfg.Fields {
		if _, seen := pos[key]; !seen {
			pos[key] = i
		}
	}

	out := make([]Column, len(cfg.Fields))
	matched := 0
	for _, col := range catalog {
		if i, ok := pos[col.Key]; ok {
			out[i] = col
			matched++
		}
	}
	if matched == len(cfg.Fields) {
		return out
	}

	// Había claves sin descriptor: compactar preservando el orden de Fields.
	compacted := make([]Column, 0, matched)
	for _, col := range out {
		if col.Key != "" {
			compacted = append(compacted, col)
		}
	}
	return compacted
}

// ResolveSort resuelve el ordenamiento efectivo de la tabla para una
// proyección dada. Si la clave de DefaultSort está proyectada y es ordenable,
// se usa tal cual. Si no, cae a la primera columna ordenable de la proyección.
// Una clave vacía significa "orden de inserción" (sin ordenamiento).
func ResolveSort(projection []Column, cfg *entity.HeadersConfig) (key string, descending bool) {
	if cfg == nil {
		return "", false
	}
	for _, col := range projection {
		if col.Key == cfg.DefaultSort.Key && col.Sortable {
			return col.Key, cfg.DefaultSort.Order == entity.SortDesc
		}
	}
	for _, col := range projection {
		if col.Sortable {
			return col.Key, cfg.DefaultSort.Order == entity.SortDesc
		}
	}
	return "", false
}
