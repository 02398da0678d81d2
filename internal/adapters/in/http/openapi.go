package http

import (
	"net/http"

	"dispatch/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"
)

// RegisterOpenAPIRoutes validates the embedded OpenAPI contract and exposes
// it at /openapi.json, with the swagger UI at /swagger/ reading from it.
func RegisterOpenAPIRoutes(e *echo.Echo) error {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return err
	}

	spec, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, spec)
	})
	e.GET("/swagger/*", echoswagger.EchoWrapHandler(echoswagger.URL("/openapi.json")))

	return nil
}
