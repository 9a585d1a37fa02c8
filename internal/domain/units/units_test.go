package units_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafeteria-api/internal/domain"
	"github.com/tu-usuario/cafeteria-api/internal/domain/units"
)

func TestConvert_MasaYVolumen(t *testing.T) {
	table := units.NewTable()

	// kg -> g multiplica por 1000
	got, err := table.Convert(decimal.NewFromFloat(2.5), "kg", "g")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2500)), "2.5 kg = 2500 g, obtuvo %s", got)

	// ml -> l divide por 1000
	got, err = table.Convert(decimal.NewFromInt(600), "ml", "l")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(0.6)), "600 ml = 0.6 l, obtuvo %s", got)
}

func TestConvert_Identidad(t *testing.T) {
	table := units.NewTable()
	q := decimal.NewFromFloat(123.456)
	for _, symbol := range []string{"g", "kg", "ml", "l", "pcs", "bottles", "packs"} {
		got, err := table.Convert(q, symbol, symbol)
		require.NoError(t, err, "identidad en %s", symbol)
		assert.True(t, got.Equal(q), "convertir %s a sí misma debe ser identidad", symbol)
	}
}

func TestConvert_IdaYVuelta(t *testing.T) {
	table := units.NewTable()
	q := decimal.NewFromFloat(7.25)

	ida, err := table.Convert(q, "kg", "g")
	require.NoError(t, err)
	vuelta, err := table.Convert(ida, "g", "kg")
	require.NoError(t, err)
	assert.True(t, vuelta.Equal(q), "kg -> g -> kg debe devolver la cantidad original, obtuvo %s", vuelta)
}

func TestConvert_Linealidad(t *testing.T) {
	table := units.NewTable()

	uno, err := table.Convert(decimal.NewFromInt(1), "l", "ml")
	require.NoError(t, err)
	cinco, err := table.Convert(decimal.NewFromInt(5), "l", "ml")
	require.NoError(t, err)
	assert.True(t, cinco.Equal(uno.Mul(decimal.NewFromInt(5))), "Convert(5q) debe ser 5*Convert(q)")
}

func TestConvert_ClasesIncompatibles(t *testing.T) {
	table := units.NewTable()

	_, err := table.Convert(decimal.NewFromInt(100), "g", "ml")
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits, "masa a volumen debe fallar")

	_, err = table.Convert(decimal.NewFromInt(1), "pcs", "bottles")
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits, "las clases de conteo son singleton, no se cruzan")
}

func TestConvert_UnidadDesconocida(t *testing.T) {
	table := units.NewTable()

	_, err := table.Convert(decimal.NewFromInt(1), "oz", "g")
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = table.Convert(decimal.NewFromInt(1), "g", "oz")
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
}

func TestConvert_CantidadNegativa(t *testing.T) {
	table := units.NewTable()
	_, err := table.Convert(decimal.NewFromInt(-1), "g", "kg")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCompatibleUnits(t *testing.T) {
	table := units.NewTable()

	list, err := table.CompatibleUnits("kg")
	require.NoError(t, err)
	symbols := make([]string, 0, len(list))
	for _, u := range list {
		symbols = append(symbols, u.Symbol)
	}
	assert.Equal(t, []string{"g", "kg"}, symbols, "la clase masa tiene exactamente g y kg")

	list, err = table.CompatibleUnits("pcs")
	require.NoError(t, err)
	require.Len(t, list, 1, "pcs es clase singleton")
	assert.Equal(t, "pcs", list[0].Symbol)
}

func TestAll_Ordenadas(t *testing.T) {
	table := units.NewTable()
	all := table.All()
	require.Len(t, all, 7)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Symbol, all[i].Symbol, "All debe devolver unidades ordenadas por símbolo")
	}
}
