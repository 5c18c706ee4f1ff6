package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

// swaggerDoc feeds the document to the Swagger UI through the swag registry.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwagger sync.Once

// RegisterDocs serves the OpenAPI document at /api/v1/openapi.json and the
// Swagger UI under /swagger/.
func RegisterDocs(e *echo.Echo) error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding OpenAPI document: %w", err)
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})

	e.GET("/api/v1/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, raw)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
