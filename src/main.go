package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"padelbook/src/boot"
	"padelbook/src/config"
	"padelbook/src/core/booking"
	"padelbook/src/core/bracket"
	"padelbook/src/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api/v1"
)

// bookabledate accepts a YYYY-MM-DD date that is not in the past.
var bookableDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, date, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !datetime.Before(today)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookabledate", bookableDateValidatorFunc)
	}
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func statusForError(err error) int {
	var windowErr *booking.WindowExceededError
	switch {
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, bracket.ErrTournamentNotFound),
		errors.Is(err, bracket.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, booking.ErrUnavailable):
		return http.StatusUnprocessableEntity
	case errors.As(err, &windowErr),
		errors.Is(err, booking.ErrInvalidArgument),
		errors.Is(err, booking.ErrPromoInvalid),
		errors.Is(err, booking.ErrPromoExpired),
		errors.Is(err, booking.ErrPromoExhausted),
		errors.Is(err, bracket.ErrNoEntrants),
		errors.Is(err, bracket.ErrInvalidWinner),
		errors.Is(err, bracket.ErrMatchDecided):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, err error) {
	ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func setupRouter() *gin.Engine {
	registerValidators()
	r := gin.Default()
	r.Use(cors.Default())

	apiv1 := apiv1Group(r)
	courtHandlers(apiv1)
	bookingHandlers(apiv1)
	tournamentHandlers(apiv1)
	midtransWebhookRoute(r)

	return r
}

func main() {
	boot.InitDb()
	boot.InitScheduler()

	r := setupRouter()
	port := utils.Getenv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
