package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/patterns/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/patterns/internal/models"
)

const OpenAPIPath = "/api/v1/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/anagram").
			To(handler.Anagram).
			Doc("Check whether candidate is an anagram of word").
			Metadata(restfulspec.KeyOpenAPITags, []string{"anagram"}).
			Reads(models.AnagramRequest{}).
			Writes(models.AnagramResult{}).
			Returns(200, "OK", models.AnagramResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/unique").
			To(handler.CountUnique).
			Doc("Count unique values in a sorted list").
			Metadata(restfulspec.KeyOpenAPITags, []string{"unique"}).
			Reads(models.UniqueRequest{}).
			Writes(models.UniqueResult{}).
			Returns(200, "OK", models.UniqueResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Values Not Sorted", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

// RegisterOpenAPI serves the OpenAPI document for every web service already
// added to container, so call it after RegisterRoutes.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Problem Solving Patterns API",
			Description: "Frequency counter and multiple pointers exercises",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "anagram", Description: "Anagram checks"}},
		{TagProps: spec.TagProps{Name: "unique", Description: "Unique value counts"}},
	}
}
