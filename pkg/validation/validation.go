package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única del validador; los DTOs llevan tags `validate:"..."`.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO contra sus tags. Devuelve un error con la lista de
// campos inválidos en un formato legible para el cuerpo de error HTTP.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}
