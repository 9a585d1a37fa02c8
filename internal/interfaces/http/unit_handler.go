package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-api/internal/application/dto"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

// UnitHandler expone la tabla de unidades de medida (para selects del frontend).
type UnitHandler struct {
	table *units.Table
}

// NewUnitHandler construye el handler.
func NewUnitHandler(table *units.Table) *UnitHandler {
	return &UnitHandler{table: table}
}

// List godoc
// @Summary      Listar unidades de medida soportadas
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitDTO
// @Router       /api/units [get]
func (h *UnitHandler) List(c *fiber.Ctx) error {
	all := h.table.All()
	out := make([]dto.UnitDTO, 0, len(all))
	for _, u := range all {
		compatible, err := h.table.CompatibleUnits(u.Symbol)
		if err != nil {
			return respondError(c, err)
		}
		symbols := make([]string, 0, len(compatible))
		for _, cu := range compatible {
			symbols = append(symbols, cu.Symbol)
		}
		out = append(out, dto.UnitDTO{Symbol: u.Symbol, Class: string(u.Class), Compatible: symbols})
	}
	return c.JSON(out)
}
