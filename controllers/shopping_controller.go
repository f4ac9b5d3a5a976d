package controllers

import (
	"net/http"

	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
)

type ShoppingController struct {
	shopping *services.ShoppingService
}

func NewShoppingController(shopping *services.ShoppingService) *ShoppingController {
	return &ShoppingController{shopping: shopping}
}

type ShoppingItemBody struct {
	Name    string `json:"name" binding:"required"`
	Checked bool   `json:"checked"`
}

type ShoppingListBody struct {
	Title string             `json:"title"`
	Items []ShoppingItemBody `json:"items"`
}

func (ctl *ShoppingController) ListLists(c *gin.Context) {
	lists, err := ctl.shopping.ListLists(currentUserID(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (ctl *ShoppingController) CreateList(c *gin.Context) {
	var body ShoppingListBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]services.ShoppingItemInput, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, services.ShoppingItemInput{Name: it.Name, Checked: it.Checked})
	}

	list, err := ctl.shopping.CreateList(currentUserID(c), body.Title, items)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (ctl *ShoppingController) DeleteList(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	if err := ctl.shopping.DeleteList(currentUserID(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "list deleted"})
}

func (ctl *ShoppingController) AddItem(c *gin.Context) {
	listID, err := pathID(c, "id")
	if err != nil {
		return
	}
	var body ShoppingItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctl.shopping.AddItem(currentUserID(c), listID, services.ShoppingItemInput{
		Name:    body.Name,
		Checked: body.Checked,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ctl *ShoppingController) ToggleItem(c *gin.Context) {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return
	}
	item, err := ctl.shopping.ToggleItem(currentUserID(c), itemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctl *ShoppingController) DeleteItem(c *gin.Context) {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return
	}
	if err := ctl.shopping.DeleteItem(currentUserID(c), itemID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}
