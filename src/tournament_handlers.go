package main

import (
	"net/http"
	"time"

	"padelbook/src/config"
	"padelbook/src/core/bracket"
	"padelbook/src/db"
	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func tournamentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/tournaments", func(ctx *gin.Context) {
			var body types.CreateTournamentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tournament := models.Tournament{
				Name:   body.Name,
				Status: types.TOURNAMENT_REGISTRATION,
			}
			if body.StartDate != "" {
				startDate, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, body.StartDate, time.Local)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				tournament.StartDate = &startDate
			}
			db := db.GetDb()
			if err := db.Create(&tournament).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": tournament})
		}).
		GET("/tournaments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var tournament models.Tournament
			if err := db.
				Model(&models.Tournament{}).
				Where("id = ?", params.ID).
				Preload("Entrants.User").
				First(&tournament).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tournament})
		}).
		POST("/tournaments/:id/entrants", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.RegisterEntrantRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			entrant := models.TournamentEntrant{
				TournamentID: params.ID,
				UserID:       body.UserID,
			}
			db := db.GetDb()
			if err := db.Create(&entrant).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": entrant})
		}).
		POST("/tournaments/:id/bracket", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.GenerateBracketRequestBody
			if ctx.Request.ContentLength > 0 {
				if err := ctx.ShouldBindJSON(&body); err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			builder := bracket.NewBuilder(db.GetDb())
			if err := builder.Generate(ctx.Request.Context(), params.ID, body.Entrants); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusCreated)
		}).
		GET("/tournaments/:id/bracket", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var matches []models.Match
			if err := db.
				Model(&models.Match{}).
				Where("tournament_id = ?", params.ID).
				Order("round desc, position asc").
				Find(&matches).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": matches, "count": len(matches)})
		}).
		PUT("/matches/:id/winner", func(ctx *gin.Context) {
			matchID, err := uuid.Parse(ctx.Params.ByName("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.AdvanceWinnerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			advancer := bracket.NewAdvancer(db.GetDb())
			if err := advancer.AdvanceWinner(ctx.Request.Context(), matchID, body.WinnerID, body.Score); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
