package controllers

import (
	"errors"
	"net/http"

	"github.com/JanHousa/DrinkWaterApp/services"

	"github.com/gin-gonic/gin"
)

type WeatherController struct {
	Weather *services.WeatherService
}

func NewWeatherController(w *services.WeatherService) *WeatherController {
	return &WeatherController{Weather: w}
}

// GET /weather/forecast — forecast summary plus the drinking
// recommendation derived from the temperature.
func (wc *WeatherController) GetForecast(c *gin.Context) {
	summary, err := wc.Weather.FetchForecast()
	if err != nil {
		resp := gin.H{"error": err.Error()}
		var fe *services.ForecastError
		if errors.As(err, &fe) && fe.StatusCode != 0 {
			resp["status_code"] = fe.StatusCode
		}
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"forecast":       summary,
		"recommendation": services.Recommend(summary.Temp),
	})
}
