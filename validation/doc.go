// Package validation validates request and configuration input.
//
// Struct tag validation (go-playground/validator) is used for decoded HTTP
// request bodies; field names in messages follow the json tags. The
// programmatic Validator collects errors for config sections.
//
//	type findRequest struct {
//	    Path string `json:"path" validate:"required"`
//	    N    int    `json:"n" validate:"min=1"`
//	}
//	err := validation.Validate(req)
//
//	v := validation.New()
//	v.Required("server.host", c.Host).Range("server.port", c.Port, 1, 65535)
//	err := v.Error()
//
// Both forms return an *errors.AppError with code INVALID_INPUT and a
// "fields" detail listing every failed field.
package validation
