package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/api/middleware"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

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
		Route(ws.POST("/report").
			To(handler.GenerateReport).
			Doc("Aggregate analysis records into a quality report").
			Metadata(restfulspec.KeyOpenAPITags, []string{"report"}).
			Reads(ReportRequest{}).
			Writes(models.Report{}).
			Returns(200, "OK", models.Report{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "No Records", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
