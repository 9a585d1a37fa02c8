// Package units contiene la tabla de conversión de unidades de medida.
// La tabla es un valor inmutable construido una vez al arranque y pasado
// explícitamente al motor de costeo; no hay estado global mutable.
package units

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
)

// Class clase base de una unidad. Dos unidades solo son convertibles entre sí
// si comparten la misma clase.
type Class string

// Clases base del sistema de referencia.
const (
	ClassMass   Class = "mass"   // g, kg (base: g)
	ClassVolume Class = "volume" // ml, l (base: ml)
	ClassCount  Class = "count"  // pcs
	ClassBottle Class = "bottle" // bottles
	ClassPack   Class = "pack"   // packs
)

// Unit una unidad de medida: símbolo, clase base y factor multiplicativo
// hacia la unidad base de su clase (ej. kg -> 1000 g).
type Unit struct {
	Symbol string
	Class  Class
	Factor decimal.Decimal
}

// Table registro fijo de unidades. No es extensible en runtime.
type Table struct {
	units map[string]Unit
}

// NewTable construye la tabla con las unidades del sistema de referencia:
// masa {g, kg}, volumen {ml, l} y las clases singleton {pcs}, {bottles}, {packs}.
func NewTable() *Table {
	thousand := decimal.NewFromInt(1000)
	one := decimal.NewFromInt(1)
	defs := []Unit{
		{Symbol: "g", Class: ClassMass, Factor: one},
		{Symbol: "kg", Class: ClassMass, Factor: thousand},
		{Symbol: "ml", Class: ClassVolume, Factor: one},
		{Symbol: "l", Class: ClassVolume, Factor: thousand},
		{Symbol: "pcs", Class: ClassCount, Factor: one},
		{Symbol: "bottles", Class: ClassBottle, Factor: one},
		{Symbol: "packs", Class: ClassPack, Factor: one},
	}
	m := make(map[string]Unit, len(defs))
	for _, u := range defs {
		m[u.Symbol] = u
	}
	return &Table{units: m}
}

// Get devuelve la unidad por símbolo. ErrUnknownUnit si no existe.
func (t *Table) Get(symbol string) (Unit, error) {
	u, ok := t.units[symbol]
	if !ok {
		return Unit{}, domain.ErrUnknownUnit
	}
	return u, nil
}

// Compatible verifica que dos símbolos existan y compartan clase base.
func (t *Table) Compatible(from, to string) error {
	fu, err := t.Get(from)
	if err != nil {
		return err
	}
	tu, err := t.Get(to)
	if err != nil {
		return err
	}
	if fu.Class != tu.Class {
		return domain.ErrIncompatibleUnits
	}
	return nil
}

// Convert convierte una cantidad entre unidades de la misma clase base:
// resultado = quantity * factor(from) / factor(to).
// ErrIncompatibleUnits si las clases difieren; ErrInvalidQuantity si la
// cantidad es negativa.
func (t *Table) Convert(quantity decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	fu, err := t.Get(from)
	if err != nil {
		return decimal.Zero, err
	}
	tu, err := t.Get(to)
	if err != nil {
		return decimal.Zero, err
	}
	if fu.Class != tu.Class {
		return decimal.Zero, domain.ErrIncompatibleUnits
	}
	if from == to {
		return quantity, nil
	}
	return quantity.Mul(fu.Factor).Div(tu.Factor), nil
}

// CompatibleUnits devuelve todas las unidades de la clase del símbolo dado,
// ordenadas por símbolo (para poblar listas de selección).
func (t *Table) CompatibleUnits(symbol string) ([]Unit, error) {
	u, err := t.Get(symbol)
	if err != nil {
		return nil, err
	}
	var list []Unit
	for _, candidate := range t.units {
		if candidate.Class == u.Class {
			list = append(list, candidate)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Symbol < list[j].Symbol })
	return list, nil
}

// All devuelve todas las unidades de la tabla ordenadas por símbolo.
func (t *Table) All() []Unit {
	list := make([]Unit, 0, len(t.units))
	for _, u := range t.units {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Symbol < list[j].Symbol })
	return list
}
