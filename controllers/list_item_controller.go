package controllers

import (
	"net/http"

	"github.com/mel-lim/listmaker-backend/services"
	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
)

type ListItemController struct {
	lists *services.ListService
}

func NewListItemController(lists *services.ListService) *ListItemController {
	return &ListItemController{lists: lists}
}

// POST /trips/:tripId/lists/:listId/listitems/addnew
func (lic *ListItemController) AddNew(c *gin.Context) {
	var req struct {
		NewItemName string `json:"newItemName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NewItemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "An item name is required"})
		return
	}

	item, err := lic.lists.AddListItem(listID(c), req.NewItemName)
	if err != nil {
		utils.LogError(err, "addnew list item")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "New list item could not be added"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": item.ID})
}

// PUT /trips/:tripId/lists/:listId/listitems/:itemId/edit
func (lic *ListItemController) Edit(c *gin.Context) {
	var req struct {
		EditedItemName string `json:"editedItemName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.EditedItemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "An item name is required"})
		return
	}

	if err := lic.lists.EditListItem(listID(c), itemID(c), req.EditedItemName); err != nil {
		utils.LogError(err, "edit list item")
		respondError(c, err, "Edited list item could not be saved")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List item updated"})
}

// PUT /trips/:tripId/lists/:listId/listitems/:itemId/delete
func (lic *ListItemController) Delete(c *gin.Context) {
	if err := lic.lists.SoftDeleteListItem(listID(c), itemID(c)); err != nil {
		utils.LogError(err, "delete list item")
		respondError(c, err, "List item could not be deleted")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List item deleted"})
}

// PUT /trips/:tripId/lists/:listId/listitems/:itemId/undodelete
func (lic *ListItemController) UndoDelete(c *gin.Context) {
	if err := lic.lists.UndoSoftDeleteListItem(listID(c), itemID(c)); err != nil {
		utils.LogError(err, "undodelete list item")
		respondError(c, err, "List item could not be un-deleted")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List item un-deleted"})
}
