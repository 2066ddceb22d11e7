package handlers

import (
	"net/http"
	"strconv"

	"food-delivery-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PublicHandler struct {
	DB *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{DB: db}
}

// ListRestaurants returns all restaurants, best rated first
func (h *PublicHandler) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.DB.Order("rating desc").Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// ListMenus returns a restaurant's menu sorted by item name
func (h *PublicHandler) ListMenus(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	var menus []models.Menu
	if err := h.DB.Where("restaurant_id = ?", restaurantID).
		Order("item_name asc").Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menus"})
		return
	}
	c.JSON(http.StatusOK, menus)
}
