package entity

// Orden de ordenamiento soportado por la configuración de cabeceras.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortSpec clave y dirección del ordenamiento por defecto de la tabla.
type SortSpec struct {
	Key   string `json:"key"`
	Order string `json:"order"` // asc | desc
}

// HeadersConfig declara qué columnas de inventario quiere ver un hospital,
// en qué orden, y el ordenamiento por defecto. Fields manda sobre el orden
// de declaración del catálogo; las claves desconocidas se ignoran al proyectar.
type HeadersConfig struct {
	Fields      []string `json:"fields"`
	DefaultSort SortSpec `json:"defaultSort"`
}

// Valid indica si la configuración está completa. Una configuración sin
// Fields o sin clave de ordenamiento cae al default del sistema.
func (c HeadersConfig) Valid() bool {
	return len(c.Fields) > 0 && c.DefaultSort.Key != ""
}

// HospitalConfig configuración por tenant. Hoy solo cubre las cabeceras de
// inventario; otras vistas configurables se colgarían aquí.
type HospitalConfig struct {
	InventoryHeaders HeadersConfig `json:"inventoryHeaders"`
}

// Hospital representa una organización/tenant del sistema.
type Hospital struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Config HospitalConfig `json:"config"`
}
