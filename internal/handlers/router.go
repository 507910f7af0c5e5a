package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/funfungun/1-seven-0/internal/services"
	"github.com/funfungun/1-seven-0/pkg/metrics"
)

// Services are the domain services the router dispatches to.
type Services struct {
	Groups  services.GroupService
	Ranking services.RankingService
	Records services.RecordService
	Tags    services.TagService
	Images  services.ImageService
}

// RouterOptions holds optional collaborators; a nil Metrics disables /metrics.
type RouterOptions struct {
	Metrics   *metrics.Metrics
	UploadDir string
}

func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(), RequestLogger(), CORSMiddleware())
	if opts.Metrics != nil {
		router.Use(MetricsMiddleware(opts.Metrics))
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	groupHandler := NewGroupHandler(svc.Groups)
	rankHandler := NewRankHandler(svc.Ranking)
	recordHandler := NewRecordHandler(svc.Records)
	tagHandler := NewTagHandler(svc.Tags)

	groups := router.Group("/groups")
	{
		groups.GET("", groupHandler.ListGroups)
		groups.POST("", groupHandler.CreateGroup)
		groups.GET("/:id", groupHandler.GetGroup)
		groups.PATCH("/:id", groupHandler.UpdateGroup)
		groups.DELETE("/:id", groupHandler.DeleteGroup)

		groups.POST("/:id/participants", groupHandler.JoinGroup)
		groups.DELETE("/:id/participants", groupHandler.LeaveGroup)

		groups.GET("/:id/rank", rankHandler.GetRanking)

		groups.GET("/:id/records", recordHandler.ListRecords)
		groups.POST("/:id/records", recordHandler.CreateRecord)
		groups.GET("/:id/records/:recordId", recordHandler.GetRecord)

		groups.POST("/:id/likes", groupHandler.Like)
		groups.DELETE("/:id/likes", groupHandler.Unlike)
	}

	tags := router.Group("/tags")
	{
		tags.GET("", tagHandler.ListTags)
		tags.GET("/:id", tagHandler.GetTag)
	}

	if svc.Images != nil {
		imageHandler := NewImageHandler(svc.Images)
		router.POST("/images", imageHandler.UploadImages)
		if opts.UploadDir != "" {
			router.Static("/images", opts.UploadDir)
		}
	}

	return router
}
