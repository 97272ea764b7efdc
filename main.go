package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/swipetodo/internal/config"
	"github.com/ytget/swipetodo/internal/placeholder"
	"github.com/ytget/swipetodo/internal/store"
	"github.com/ytget/swipetodo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.swipetodo"
	AppName = "Tasks"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTodoTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize the task store over app preferences
	settings := config.NewSettings(myApp)
	storage := store.NewPreferencesStorage(settings.Preferences(), settings.GetTasksKey())
	taskStore := store.New(storage, placeholder.NewPicker(nil))

	ui.NewRootUI(myWindow, myApp, settings, taskStore)

	myWindow.ShowAndRun()
}
