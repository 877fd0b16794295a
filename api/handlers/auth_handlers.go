package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-cms/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler godoc
// @Summary      Admin login
// @Description  Exchanges admin credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Param        body  body  handlers.loginRequest  true  "Credentials"
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		token, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
