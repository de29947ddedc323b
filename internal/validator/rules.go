package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "field:tag" to the message shown inline in forms.
// Fields are named after their form inputs.
var fieldMessages = map[string]string{
	"nombre:required":            "El Nombre no puede ir vacío",
	"email:required":             "El Email es obligatorio",
	"email:email":                "Eso no parece un Email",
	"password:required":          "El Password es obligatorio",
	"password:min":               "El Password debe ser de al menos 6 carácteres",
	"repetir_password:required":  "Repite el Password",
	"repetir_password:eqfield":   "Los Passwords no son iguales",
	"titulo:required":            "El Título del anuncio es obligatorio",
	"descripcion:required":       "La Descripción no puede ir vacía",
	"descripcion:max":            "La Descripción es muy larga",
	"categoria:required":         "Selecciona una Categoría",
	"categoria:numeric":          "Selecciona una Categoría",
	"precio:required":            "Selecciona un rango de Precios",
	"precio:numeric":             "Selecciona un rango de Precios",
	"habitaciones:required":      "Selecciona la cantidad de Habitaciones",
	"habitaciones:numeric":       "Selecciona la cantidad de Habitaciones",
	"estacionamiento:required":   "Selecciona la cantidad de Estacionamientos",
	"estacionamiento:numeric":    "Selecciona la cantidad de Estacionamientos",
	"wc:required":                "Selecciona la cantidad de Baños",
	"wc:numeric":                 "Selecciona la cantidad de Baños",
	"calle:required":             "La Calle es obligatoria",
	"lat:required":               "Ubica la Propiedad en el Mapa",
	"lng:required":               "Ubica la Propiedad en el Mapa",
	"mensaje:required":           "El Mensaje no puede ir vacío",
	"mensaje:min":                "El Mensaje no puede ir vacío o es muy corto",
}

func messageFor(fieldErr validator.FieldError) string {
	if msg, ok := fieldMessages[fieldErr.Field()+":"+fieldErr.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("failed validation on '%s'", fieldErr.Tag())
}
