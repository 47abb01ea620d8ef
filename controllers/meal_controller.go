package controllers

import (
	"errors"
	"net/http"

	"github.com/DevAnseSenior/daily-diet/middlewares"
	"github.com/DevAnseSenior/daily-diet/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

func (h *MealController) CreateMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// First meal of a fresh browser: mint the owner token and hand it back
	// as a cookie. Existing sessions are reused verbatim.
	token, err := c.Cookie(middlewares.SessionCookie)
	if err != nil || token == "" {
		token = uuid.NewString()
		c.SetCookie(middlewares.SessionCookie, token, middlewares.SessionMaxAge, "/", "", false, true)
	}

	if _, err := h.Svc.CreateMeal(c.Request.Context(), token, input); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *MealController) ListMeals(c *gin.Context) {
	sessionID, ok := middlewares.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	meals, err := h.Svc.ListMeals(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealController) GetMeal(c *gin.Context) {
	sessionID, ok := middlewares.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	meal, err := h.Svc.GetMeal(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	sessionID, ok := middlewares.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.UpdateMeal(c.Request.Context(), sessionID, c.Param("id"), input); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	sessionID, ok := middlewares.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Svc.DeleteMeal(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func writeServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
