package storage

import (
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Member names of a route object on disk.
const (
	originKey      = "origin"
	destinationKey = "destination"
	numberKey      = "number"
)

// routesSchema is the fixed structure a data file must follow. Members beyond the
// required ones are allowed.
var routesSchema = &openapi3.Schema{
	Type: &openapi3.Types{openapi3.TypeArray},
	Items: openapi3.NewSchemaRef("", &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			originKey:      openapi3.NewStringSchema().NewRef(),
			destinationKey: openapi3.NewStringSchema().NewRef(),
			numberKey:      openapi3.NewInt64Schema().NewRef(),
		},
		Required: []string{originKey, destinationKey, numberKey},
	}),
}

// Validate checks a decoded JSON document against the routes schema and returns
// the first violation found.
func Validate(doc any) error {
	return routesSchema.VisitJSON(doc)
}

// ValidationMessage is the human readable form of a Validate error.
func ValidationMessage(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr.Reason
	}
	return err.Error()
}

// ValidationLocation is the JSON pointer of the offending value, "/" for the document root.
func ValidationLocation(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return "/" + strings.Join(schemaErr.JSONPointer(), "/")
	}
	return "/"
}
