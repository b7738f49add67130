package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/mel-lim/listmaker-backend/services"
	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
)

type ListController struct {
	lists *services.ListService
}

func NewListController(lists *services.ListService) *ListController {
	return &ListController{lists: lists}
}

// GET /trips/:tripId/lists/fetchlists
func (lc *ListController) FetchLists(c *gin.Context) {
	result, err := lc.lists.FetchLists(tripID(c), appUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No lists found for this trip"})
			return
		}
		utils.LogError(err, "fetchlists")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lists could not be fetched"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lists": result.Lists, "allListItems": result.AllListItems})
}

// POST /trips/:tripId/lists/savelists - полный снимок состояния от клиента
func (lc *ListController) SaveLists(c *gin.Context) {
	var req struct {
		Lists []struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		} `json:"lists"`
		AllListItems [][]struct {
			Name string `json:"name"`
		} `json:"allListItems"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Lists could not be saved"})
		return
	}

	titles := make([]string, 0, len(req.Lists))
	for _, list := range req.Lists {
		titles = append(titles, list.Title)
	}
	itemNames := make([][]string, 0, len(req.AllListItems))
	for _, items := range req.AllListItems {
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Name)
		}
		itemNames = append(itemNames, names)
	}

	if err := lc.lists.SaveLists(tripID(c), appUserID(c), titles, itemNames); err != nil {
		utils.LogError(err, "savelists")
		respondError(c, err, "Lists could not be saved")
		return
	}

	lastSaved := time.Now().Format(time.RFC1123)
	c.JSON(http.StatusCreated, gin.H{"message": "Lists successfully saved", "lastSaved": lastSaved})
}

// POST /trips/:tripId/lists/createnew
func (lc *ListController) CreateNew(c *gin.Context) {
	list, err := lc.lists.CreateList(tripID(c), appUserID(c))
	if err != nil {
		utils.LogError(err, "createnew")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "New list could not be created"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": list.ID, "title": list.Title})
}

// PUT /trips/:tripId/lists/:listId/edit
func (lc *ListController) Edit(c *gin.Context) {
	var req struct {
		EditedListTitle string `json:"editedListTitle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A list title is required"})
		return
	}

	if err := lc.lists.EditListTitle(listID(c), req.EditedListTitle); err != nil {
		utils.LogError(err, "edit list")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "List could not be updated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List updated"})
}

// DELETE /trips/:tripId/lists/:listId/delete
func (lc *ListController) Delete(c *gin.Context) {
	if err := lc.lists.DeleteList(listID(c)); err != nil {
		utils.LogError(err, "delete list")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "List could not be deleted"})
		return
	}
	c.Status(http.StatusNoContent)
}
