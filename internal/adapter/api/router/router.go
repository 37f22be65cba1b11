package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupProductRouter(e)
	SetupHealthRouter(e)
}
