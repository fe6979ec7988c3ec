package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/app"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ApiPrefix     = "/api/v1"
	AppContextKey = "appctx"
)

var server *WebServer

type WebServer struct {
	root   *echo.Echo
	api    *echo.Group
	appCtx app.AppContext
}

// Validator adapts go-playground/validator to echo.
type Validator struct {
	validate *validator.Validate
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// JSONSerializer encodes echo responses and binds request bodies with json-iterator.
type JSONSerializer struct {
	api jsoniter.API
}

func (s JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := s.api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := s.api.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// Init creates the global web server bound to appCtx.
func Init(appCtx app.AppContext) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &Validator{validate: validator.New()}
	e.JSONSerializer = JSONSerializer{api: jsoniter.ConfigCompatibleWithStandardLibrary}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("namespace", "api"),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			zap.L().Debug("request", fields...)
			return nil
		},
	}))

	e.GET("/metrics", echo.WrapHandler(appCtx.Metrics().Handler()))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	api := e.Group(ApiPrefix, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(AppContextKey, appCtx)
			return next(c)
		}
	})

	server = &WebServer{root: e, api: api, appCtx: appCtx}
}

// Handler returns the root HTTP handler of the initialized server.
func Handler() http.Handler {
	return server.root
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context) error {
	cfg := server.appCtx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.L().Info("web server listening", zap.String("namespace", "api"), zap.String("addr", addr))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.root.Start(addr); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "web server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.root.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.GET(path, h, m...)
}

func ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.POST(path, h, m...)
}

func ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.PUT(path, h, m...)
}

func ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.DELETE(path, h, m...)
}
