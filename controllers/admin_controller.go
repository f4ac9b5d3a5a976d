package controllers

import (
	"net/http"
	"strconv"

	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	users *services.UserService
}

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{users: users}
}

// GET /admin/users, behind the superuser middleware.
func (ctl *AdminController) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := ctl.users.ListUsers(skip, limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DELETE /admin/users/:id
func (ctl *AdminController) DeleteUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	if err := ctl.users.Delete(id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
