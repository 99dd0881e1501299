package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/cuisine-explorer/internal/config"
	"github.com/ytget/cuisine-explorer/internal/logger"
	"github.com/ytget/cuisine-explorer/internal/mealdb"
	"github.com/ytget/cuisine-explorer/internal/session"
	"github.com/ytget/cuisine-explorer/internal/thumbnail"
	"github.com/ytget/cuisine-explorer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.cuisine-explorer"
	AppName = "Cuisine Explorer"
)

func main() {
	if err := logger.InitializeLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	cfg, err := config.LoadAppConfig()
	if err != nil {
		logger.Error("failed to load config", zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("config loaded",
		zap.String("base_url", cfg.API.BaseURL),
		zap.Duration("timeout", cfg.API.Timeout),
		zap.Uint("thumbnail_width", cfg.Thumbnail.Width),
		zap.Uint("thumbnail_height", cfg.Thumbnail.Height),
	)

	// Initialize services
	httpClient := cfg.HTTPClient()
	fetcher := mealdb.NewClient(cfg.API.BaseURL, httpClient)
	images := thumbnail.NewService(httpClient, cfg.Thumbnail.Width, cfg.Thumbnail.Height)
	state := session.NewState()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, fetcher, images, state)
	root.Start()

	// Show and run
	myWindow.ShowAndRun()
}
