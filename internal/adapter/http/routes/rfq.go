package routes

import (
	"osms-portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRfqs          = "/rfqs"
	PathNdas          = "/ndas"
	PathEnquiries     = "/enquiries"
	PathNotifications = "/notifications"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	rfqHandler *handlers.RfqHandler,
	ndaHandler *handlers.NdaHandler,
	enquiryHandler *handlers.EnquiryHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	rfqs := rg.Group(PathRfqs)
	{
		rfqs.POST("", rfqHandler.CreateRfq)
		rfqs.GET("", rfqHandler.ListRfqs)
		rfqs.GET("/:id", rfqHandler.GetRfq)
		rfqs.PATCH("/:id/status", rfqHandler.UpdateRfqStatus)
	}

	ndas := rg.Group(PathNdas)
	{
		ndas.POST("", ndaHandler.CreateNda)
		ndas.GET("", ndaHandler.ListNdas)
	}

	rg.POST(PathEnquiries, enquiryHandler.CreateEnquiry)
	rg.GET(PathNotifications, notificationHandler.ListRecent)
}
