package controllers

import (
	"net/http"
	"time"

	"github.com/mel-lim/listmaker-backend/services"
	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
)

type TripController struct {
	trips *services.TripService
}

func NewTripController(trips *services.TripService) *TripController {
	return &TripController{trips: trips}
}

// GET /trips/alltrips
func (tc *TripController) AllTrips(c *gin.Context) {
	trips, err := tc.trips.AllTrips(appUserID(c))
	if err != nil {
		utils.LogError(err, "alltrips")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Trips could not be fetched"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// POST /trips/newtrip
func (tc *TripController) NewTrip(c *gin.Context) {
	var req struct {
		TripName        string `json:"tripName"`
		TripCategory    string `json:"tripCategory"`
		TripDuration    string `json:"tripDuration"`
		RequestTemplate string `json:"requestTemplate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	if req.TripName == "" {
		req.TripName = "Unnamed Trip"
	}
	if req.TripCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Trip category is required"})
		return
	}
	if req.TripDuration != "day" && req.TripDuration != "overnight" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Trip duration must be day or overnight"})
		return
	}

	wantsTemplate := req.RequestTemplate != "no"

	result, err := tc.trips.CreateTrip(appUserID(c), req.TripName, req.TripCategory, req.TripDuration, wantsTemplate)
	if err != nil {
		utils.LogError(err, "newtrip")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Lists could not be generated"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"tripId":       result.TripID,
		"lists":        result.Lists,
		"allListItems": result.AllListItems,
	})
}

// PUT /trips/:tripId/edittripdetails
func (tc *TripController) EditTripDetails(c *gin.Context) {
	var req struct {
		EditedTripName string `json:"editedTripName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.EditedTripName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A trip name is required"})
		return
	}

	if err := tc.trips.EditTripName(tripID(c), req.EditedTripName); err != nil {
		utils.LogError(err, "edittripdetails")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Trip details could not be saved"})
		return
	}

	lastSaved := time.Now().Format(time.RFC1123)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Trip details last saved: " + lastSaved,
		"lastSaved": lastSaved,
	})
}

// DELETE /trips/:tripId/deletetrip
func (tc *TripController) DeleteTrip(c *gin.Context) {
	if err := tc.trips.DeleteTrip(tripID(c)); err != nil {
		utils.LogError(err, "deletetrip")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Trip could not be deleted"})
		return
	}
	c.Status(http.StatusNoContent)
}
