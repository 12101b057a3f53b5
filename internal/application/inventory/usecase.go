package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-hospitalario/internal/application/dto"
	"github.com/jhoicas/Inventario-hospitalario/internal/application/session"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/headers"
)

// UseCase casos de uso de la vista de inventario: tabla proyectada, CRUD
// sobre la copia de trabajo y exportación de reportes.
type UseCase struct {
	manager *Manager
	reports map[string]ReportGenerator // por formato: "pdf", "xlsx"
}

// NewUseCase construye el caso de uso. reports puede ser nil si la
// exportación no está habilitada.
func NewUseCase(manager *Manager, reports map[string]ReportGenerator) *UseCase {
	return &UseCase{manager: manager, reports: reports}
}

// Table arma la tabla para el usuario activo: cabeceras proyectadas según la
// configuración resuelta del tenant, ordenamiento efectivo y filas ordenadas
// y formateadas. Carga la sesión del proveedor si aún está Unloaded.
func (uc *UseCase) Table(ctx context.Context, user *entity.User) (*dto.TableResponse, error) {
	col, err := uc.manager.Collection(ctx, user.ID, user.Hospital.ID)
	if err != nil {
		return nil, err
	}
	return uc.buildTable(user, col), nil
}

// AddItem agrega un ítem a la copia de trabajo y devuelve cómo quedó
// (con el ID asignado si la petición venía sin él).
func (uc *UseCase) AddItem(ctx context.Context, user *entity.User, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	col, err := uc.manager.Collection(ctx, user.ID, user.Hospital.ID)
	if err != nil {
		return nil, err
	}
	added, err := col.Add(in.ToEntity())
	if err != nil {
		return nil, err
	}
	out := dto.ToItemResponse(added)
	return &out, nil
}

// UpdateItem reemplaza los campos del ítem con ese ID en la copia de trabajo.
func (uc *UseCase) UpdateItem(ctx context.Context, user *entity.User, id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	in.ID = id
	if err := in.Validate(); err != nil {
		return nil, err
	}
	col, err := uc.manager.Collection(ctx, user.ID, user.Hospital.ID)
	if err != nil {
		return nil, err
	}
	item := in.ToEntity()
	if err := col.Update(item); err != nil {
		return nil, err
	}
	out := dto.ToItemResponse(item)
	return &out, nil
}

// RemoveItem elimina el ítem de la copia de trabajo. Idempotente.
func (uc *UseCase) RemoveItem(ctx context.Context, user *entity.User, id int64) error {
	col, err := uc.manager.Collection(ctx, user.ID, user.Hospital.ID)
	if err != nil {
		return err
	}
	col.Remove(id)
	return nil
}

// Reload descarta la copia de trabajo y vuelve a cargar del proveedor.
func (uc *UseCase) Reload(ctx context.Context, user *entity.User) (*dto.TableResponse, error) {
	uc.manager.Reset(user.ID)
	return uc.Table(ctx, user)
}

// Export renderiza la tabla actual como documento descargable en el formato
// pedido ("pdf" o "xlsx"). Devuelve bytes, content type y extensión.
func (uc *UseCase) Export(ctx context.Context, user *entity.User, formatName string) ([]byte, string, string, error) {
	gen, ok := uc.reports[formatName]
	if !ok {
		return nil, "", "", domain.ErrInvalidInput
	}
	table, err := uc.Table(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	doc, err := gen.Render(user.Hospital.Name, table)
	if err != nil {
		return nil, "", "", err
	}
	return doc, gen.ContentType(), gen.FileExtension(), nil
}

// buildTable proyección + resolución de ordenamiento + filas formateadas.
func (uc *UseCase) buildTable(user *entity.User, col *Collection) *dto.TableResponse {
	cfg := session.ResolveHeadersConfig(user)
	projection := headers.Project(headers.Catalog(), &cfg)
	key, desc := headers.ResolveSort(projection, &cfg)

	items := col.List()
	SortItems(items, key, desc)

	rows := make([]dto.ItemResponse, len(items))
	for i, it := range items {
		rows[i] = dto.ToItemResponse(it)
	}

	order := entity.SortAsc
	if desc {
		order = entity.SortDesc
	}
	return &dto.TableResponse{
		Headers: projection,
		Sort:    dto.SortResponse{Key: key, Order: order},
		Items:   rows,
	}
}
