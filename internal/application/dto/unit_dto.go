package dto

// UnitDTO unidad de medida soportada con su clase base.
type UnitDTO struct {
	Symbol     string   `json:"symbol"`
	Class      string   `json:"class"`
	Compatible []string `json:"compatible"`
}
