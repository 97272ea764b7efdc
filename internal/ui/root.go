package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipetodo/internal/config"
	"github.com/ytget/swipetodo/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        *store.Store
	settings     *config.Settings
	localization *Localization

	form     *InputForm
	taskList *TaskList

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, taskStore *store.Store) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        taskStore,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	taskStore.SetErrorCallback(ui.onSaveError)

	ui.setupUI(NewMobileUI(app))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(mobileUI *MobileUI) {
	ui.createMenu()

	ui.form = NewInputForm(ui.store, mobileUI)
	ui.taskList = NewTaskList(ui.store, mobileUI)

	// Notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, closeBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(ui.form.Container(), ui.notificationContainer)

	content := container.NewBorder(
		top,                  // top
		nil,                  // bottom
		nil,                  // left
		nil,                  // right
		ui.taskList.Widget(), // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.form.Entry())

	log.Printf("UI setup completed with %d tasks", ui.store.Len())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	options := ui.settings.GetLanguageOptions()
	current := ui.settings.GetLanguage()
	for _, code := range ui.settings.GetLanguageCodes() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(options[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if current == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// onSaveError reports a failed save. The list keeps showing the unsaved change.
func (ui *RootUI) onSaveError(err error) {
	ui.showNotification(ui.localization.GetText(KeySaveFailed) + ": " + err.Error())
}

// showNotification displays a message in the notification panel under the form
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	ui.notificationContainer.Hide()
}
