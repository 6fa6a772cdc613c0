package main

import (
	"time"

	"github.com/gin-gonic/gin"

	adapterHTTP "github.com/comitanigiacomo/kanso-wellness/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-wellness/internal/app"
)

func newRouter(a *app.App, startTime time.Time) *gin.Engine {
	deps := adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(a.Auth),
		HabitHandler:     adapterHTTP.NewHabitHandler(a.Habits),
		MoodHandler:      adapterHTTP.NewMoodHandler(a.Moods),
		GoalHandler:      adapterHTTP.NewGoalHandler(a.Goals),
		WellnessHandler:  adapterHTTP.NewWellnessHandler(a.Wellness),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(a.Analytics, a.Reports),
		DataHandler:      adapterHTTP.NewDataHandler(a.Data),
		DB:               a.DB,
		Redis:            a.Redis,
		Metrics:          a.Metrics,
		Logger:           a.Log,
		RateLimit:        a.Config.RateLimit.Limit,
		Window:           a.Config.RateLimit.Window,
		StartTime:        startTime,
	}
	// A nil *TokenService must not reach the interface field.
	if a.Config.Auth.Enabled {
		deps.Tokens = a.Tokens
	}
	return adapterHTTP.NewRouter(deps)
}
