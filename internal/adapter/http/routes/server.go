package routes

import (
	"io"
	"net/http"
	"slices"
	"strings"

	"doctor_app/internal/infrastructure/config"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const basePath = "/v1"

// NewEngine mounts the route table on gin for running the API as a plain
// HTTP server.
func NewEngine(router *Router, cfg config.ServerConfig) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Str("component", "http.server").Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	engine.Use(cors.New(corsConfig(cfg)))

	// Swagger documentation endpoint
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := engine.Group(basePath)
	addPingRoutes(v1)
	for _, route := range router.Routes() {
		v1.Handle(route.Method, ginPath(route.Resource), proxy(router, route.Resource))
	}
	return engine
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func corsConfig(cfg config.ServerConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = []string{"Content-Type", "X-Amz-Date", "Authorization", "X-Api-Key", "X-Amz-Security-Token"}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// ginPath converts "/patient/{patientId}" into "/patient/:patientId".
func ginPath(resource string) string {
	parts := strings.Split(resource, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			parts[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(p, "{"), "}")
		}
	}
	return strings.Join(parts, "/")
}

func proxy(router *Router, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := toProxyRequest(c, resource)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		res, _ := router.Dispatch(c.Request.Context(), req)
		writeProxyResponse(c, res)
	}
}

func toProxyRequest(c *gin.Context, resource string) (events.APIGatewayProxyRequest, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		if body, err = io.ReadAll(c.Request.Body); err != nil {
			return events.APIGatewayProxyRequest{}, err
		}
	}

	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	query := c.Request.URL.Query()
	single := make(map[string]string, len(query))
	for k, v := range query {
		if len(v) > 0 {
			single[k] = v[0]
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	return events.APIGatewayProxyRequest{
		Resource:                        resource,
		Path:                            c.Request.URL.Path,
		HTTPMethod:                      c.Request.Method,
		Headers:                         headers,
		MultiValueHeaders:               c.Request.Header,
		QueryStringParameters:           single,
		MultiValueQueryStringParameters: query,
		PathParameters:                  params,
		Body:                            string(body),
	}, nil
}

func writeProxyResponse(c *gin.Context, res events.APIGatewayProxyResponse) {
	for k, v := range res.Headers {
		// cors middleware owns the origin header locally
		if strings.EqualFold(k, "Access-Control-Allow-Origin") {
			continue
		}
		c.Header(k, v)
	}
	contentType := res.Headers["Content-Type"]
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(res.StatusCode, contentType, []byte(res.Body))
}
