package main

import (
	"net/http"

	"padelbook/src/core/booking"
	"padelbook/src/db"
	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/gin-gonic/gin"
)

func courtHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/courts", func(ctx *gin.Context) {
			db := db.GetDb()
			var courts []models.Court
			if err := db.
				Model(&models.Court{}).
				Where(&models.Court{Active: true}).
				Find(&courts).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": courts, "count": len(courts)})
		}).
		GET("/courts/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var court models.Court
			if err := db.
				Model(&models.Court{}).
				Where("id = ?", params.ID).
				First(&court).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": court})
		}).
		GET("/courts/:id/availability", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			date := ctx.Query("date")
			svc := booking.NewAvailabilityService(db.GetDb())
			day, err := svc.GetDayAvailability(ctx.Request.Context(), params.ID, date)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": day})
		})
	return g
}
