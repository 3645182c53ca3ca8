package routes

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"RealtyAPI/handlers"
	"RealtyAPI/middleware"
)

const (
	Root       = "/"
	Health     = "/health"
	TestDB     = "/test"
	Properties = "/api/properties"
	Property   = "/api/properties/:id"
	Inquiries  = "/api/inquiries"

	maxBodySize = "1M"
)

type Controllers struct {
	Health   *handlers.HealthController
	Property *handlers.PropertyController
	Inquiry  *handlers.InquiryController
}

// New builds the echo instance with the middleware stack and every route.
func New(ctrl Controllers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit(maxBodySize))

	RegisterRoutes(e, ctrl)
	return e
}

func RegisterRoutes(e *echo.Echo, ctrl Controllers) {
	e.GET(Root, ctrl.Health.Root)
	e.GET(Health, ctrl.Health.HealthCheck)
	e.GET(TestDB, ctrl.Health.TestDatabase)

	e.POST(Properties, ctrl.Property.CreateProperty)
	e.GET(Properties, ctrl.Property.ListProperties)
	e.GET(Property, ctrl.Property.GetProperty)

	e.POST(Inquiries, ctrl.Inquiry.CreateInquiry)
	e.GET(Inquiries, ctrl.Inquiry.ListInquiries)
}
