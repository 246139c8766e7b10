package http

import (
	"net/http"
	"sync"

	"negotiation/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const BaseURL = "/api/v1"

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string { return d.json }

var (
	registerDocOnce sync.Once
	errRegisterDoc  error
)

func registerDoc() error {
	registerDocOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			errRegisterDoc = err
			return
		}
		raw, err := swagger.MarshalJSON()
		if err != nil {
			errRegisterDoc = err
			return
		}
		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	})
	return errRegisterDoc
}

// NewRouter builds the echo instance serving the API under BaseURL, the
// swagger UI under /swagger and the health check.
func NewRouter(server *Server) (*echo.Echo, error) {
	if err := registerDoc(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)

	return e, nil
}
