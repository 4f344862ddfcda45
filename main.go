package main

import (
	"embed"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"macbot/internal/keychain"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {

	app := NewApp()
	keychainService := keychain.New()

	// Create application with options
	err := wails.Run(&options.App{
		Title:  "MacBot Setup",
		Width:  960,
		Height: 700,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   "MacBot",
				Message: "MacBot setup assistant",
			},
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
			keychainService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
