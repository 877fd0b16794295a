package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-cms/schema"
	"atelier-cms/services"
)

// SubscribeHandler godoc
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Param        body  body  schema.SubscriberInput  true  "Email address"
// @Produce      json
// @Success      201  {object}  dto.SubscriberDTO
// @Failure      409  {object}  map[string]string  "Already subscribed"
// @Router       /subscribe [post]
func SubscribeHandler(svc *services.SubscriberService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in schema.SubscriberInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBindError(c, err)
			return
		}
		sub, err := svc.Subscribe(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

// ContactHandler godoc
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Param        body  body  schema.ContactMessageInput  true  "Message"
// @Produce      json
// @Success      201  {object}  dto.ContactMessageDTO
// @Router       /contact [post]
func ContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in schema.ContactMessageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBindError(c, err)
			return
		}
		msg, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}
