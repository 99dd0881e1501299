package ui

import (
	"context"
	"errors"
	"image"
	"math/rand/v2"
	"strings"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/cuisine-explorer/internal/config"
	"github.com/ytget/cuisine-explorer/internal/logger"
	"github.com/ytget/cuisine-explorer/internal/mealdb"
	"github.com/ytget/cuisine-explorer/internal/model"
	"github.com/ytget/cuisine-explorer/internal/platform"
	"github.com/ytget/cuisine-explorer/internal/session"
	"github.com/ytget/cuisine-explorer/internal/thumbnail"
)

// fetchResult is what a background fetch hands back to the UI goroutine
type fetchResult struct {
	query  mealdb.Query
	recipe *model.Recipe
	image  image.Image
	err    error
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	fetcher      mealdb.Fetcher
	images       thumbnail.Loader
	state        *session.State
	settings     *config.Settings
	localization *Localization
	estimator    *Estimator
	pick         session.Picker
	openURL      func(string) error

	// one fetch at a time
	busy atomic.Bool

	subtitle       *widget.Label
	buttons        map[string]*widget.Button
	countryLabel   *widget.Label
	categoryLabel  *widget.Label
	countrySelect  *widget.Select
	categorySelect *widget.Select
	searchEntry    *widget.Entry
	recipePanel    *RecipePanel
	tabs           *CollectionTabs
	statusLabel    *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetcher mealdb.Fetcher, images thumbnail.Loader, state *session.State) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		fetcher:      fetcher,
		images:       images,
		state:        state,
		settings:     settings,
		localization: localization,
		estimator:    NewEstimator(nil),
		pick:         rand.IntN,
		openURL:      platform.OpenURL,
		buttons:      make(map[string]*widget.Button),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Collections only change from UI handlers, so the callback runs on the UI goroutine
	ui.state.SetUpdateCallback(ui.refreshCollections)

	ui.setupUI()
	logger.Debug("UI setup completed", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// SetEstimator replaces the placeholder estimate generator
func (ui *RootUI) SetEstimator(e *Estimator) {
	ui.estimator = e
}

// SetPicker replaces the random index source used by Surprise Me
func (ui *RootUI) SetPicker(pick session.Picker) {
	ui.pick = pick
}

// SetURLOpener replaces the function used to open tutorial links
func (ui *RootUI) SetURLOpener(open func(string) error) {
	ui.openURL = open
}

// Start loads the first random recipe
func (ui *RootUI) Start() {
	ui.requestRecipe(mealdb.Random())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.subtitle = widget.NewLabel("")
	header := container.NewBorder(nil, nil, nil, settingsBtn, ui.subtitle)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, ui.subtitle)
	}

	quickActions := container.NewAdaptiveGrid(4,
		ui.newButton(KeyRandomRecipe, widget.HighImportance, func() { ui.requestRecipe(mealdb.Random()) }),
		ui.newButton(KeyAddFavorite, widget.MediumImportance, ui.onAddFavorite),
		ui.newButton(KeyAddShopping, widget.SuccessImportance, ui.onAddShopping),
		ui.newButton(KeyPlanMeal, widget.WarningImportance, ui.onPlanMeal),
	)

	ui.countryLabel = widget.NewLabel("")
	ui.countrySelect = widget.NewSelect(model.CatalogNames(model.Countries()), func(name string) {
		ui.requestRecipe(session.FilterQuery(mealdb.QueryByCountry, name))
	})
	ui.countrySelect.Selected = model.AllOption

	ui.categoryLabel = widget.NewLabel("")
	ui.categorySelect = widget.NewSelect(model.CatalogNames(model.Categories()), func(name string) {
		ui.requestRecipe(session.FilterQuery(mealdb.QueryByCategory, name))
	})
	ui.categorySelect.Selected = model.AllOption

	ui.searchEntry = widget.NewEntry()
	// Trigger search when user presses Enter in the search field
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearch()
	}
	searchBtn := ui.newButton(KeySearch, widget.HighImportance, ui.onSearch)

	filters := container.NewBorder(nil, nil,
		container.NewHBox(ui.countryLabel, ui.countrySelect, ui.categoryLabel, ui.categorySelect),
		searchBtn,
		ui.searchEntry,
	)

	ui.recipePanel = NewRecipePanel(ui.localization)
	ui.recipePanel.SetShowEstimates(ui.settings.GetShowEstimates())

	ui.tabs = NewCollectionTabs(ui.localization)
	ui.tabs.SetCallbacks(ui.onFavoriteSelected, ui.onClearShopping)
	ui.refreshCollections()
	tabs := ui.tabs.Container()

	bottomActions := container.NewAdaptiveGrid(4,
		ui.newButton(KeyViewRecipe, widget.MediumImportance, ui.onViewRecipe),
		ui.newButton(KeyWatchTutorial, widget.HighImportance, ui.onWatchTutorial),
		ui.newButton(KeySurprise, widget.WarningImportance, ui.onSurprise),
		ui.newButton(KeyCopyIngredients, widget.SuccessImportance, ui.onCopyIngredients),
	)

	ui.statusLabel = widget.NewLabel("")

	center := container.NewVSplit(ui.recipePanel.Container(), tabs)
	center.Offset = 0.6

	content := container.NewBorder(
		container.NewVBox(header, quickActions, filters, widget.NewSeparator()),
		container.NewVBox(bottomActions, widget.NewSeparator(), ui.statusLabel),
		nil,
		nil,
		center,
	)

	ui.window.SetContent(content)
	ui.refreshUITexts()
	ui.setStatus(ui.localization.GetText(KeyReady))
}

// newButton creates a button whose caption follows the current language
func (ui *RootUI) newButton(key string, importance widget.Importance, tapped func()) *widget.Button {
	btn := widget.NewButton(ui.localization.GetText(key), tapped)
	btn.Importance = importance
	ui.buttons[key] = btn
	return btn
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.subtitle.SetText(ui.localization.GetText(KeySubtitle))

	for key, btn := range ui.buttons {
		btn.SetText(ui.localization.GetText(key))
	}

	ui.countryLabel.SetText(ui.localization.GetText(KeyCountry))
	ui.categoryLabel.SetText(ui.localization.GetText(KeyCategory))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))

	ui.recipePanel.RefreshTexts()
	ui.tabs.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.recipePanel.SetShowEstimates(ui.settings.GetShowEstimates())
		ui.refreshUITexts()
		ui.createMenu()
		ui.setStatus(ui.localization.GetText(KeySettingsSaved))
	})
}

// setStatus updates the status bar
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// refreshCollections redraws the tabs from the session state
func (ui *RootUI) refreshCollections() {
	ui.tabs.Update(ui.state.Favorites(), ui.state.ShoppingList(), ui.state.MealPlan())
}

// requestRecipe fetches q off the UI goroutine and applies the result with
// fyne.Do. Requests made while another fetch is running are dropped and
// false is returned.
func (ui *RootUI) requestRecipe(q mealdb.Query) bool {
	if !ui.busy.CompareAndSwap(false, true) {
		ui.setStatus(ui.localization.GetText(KeyBusy))
		return false
	}

	ui.setStatus(ui.pendingStatus(q))

	go func() {
		res := ui.fetch(context.Background(), q)
		fyne.Do(func() {
			ui.applyResult(res)
			ui.busy.Store(false)
		})
	}()
	return true
}

// fetch loads the recipe and its image. The image is best effort.
func (ui *RootUI) fetch(ctx context.Context, q mealdb.Query) fetchResult {
	recipe, err := ui.fetcher.Fetch(ctx, q)
	if err != nil {
		return fetchResult{query: q, err: err}
	}

	return fetchResult{
		query:  q,
		recipe: recipe,
		image:  ui.images.Load(ctx, recipe.ThumbnailURL),
	}
}

// applyResult shows a fetched recipe or reports why there is none
func (ui *RootUI) applyResult(res fetchResult) {
	if res.err != nil {
		ui.showFetchError(res.query, res.err)
		return
	}

	ui.state.SetCurrent(res.recipe)
	ui.recipePanel.SetRecipe(res.recipe, res.image, ui.estimator.Next())

	if res.query.Kind == mealdb.QueryByName {
		ui.setStatus(ui.localization.Format(KeyFound, strings.TrimSpace(res.query.Value)))
	} else {
		ui.setStatus(ui.localization.Format(KeyLoaded, res.recipe.Name, res.recipe.Area))
	}

	logger.Info("recipe shown",
		zap.String("query", res.query.String()),
		zap.String("id", res.recipe.ID),
		zap.String("name", res.recipe.Name),
	)
}

// showFetchError maps fetch errors to dialogs
func (ui *RootUI) showFetchError(q mealdb.Query, err error) {
	if errors.Is(err, mealdb.ErrEmptyResult) {
		message := ui.emptyMessage(q)
		ui.setStatus(message)
		dialog.ShowInformation(ui.localization.GetText(KeyNoRecipes), message, ui.window)
		return
	}

	logger.Error("fetch failed", zap.String("query", q.String()), zap.Error(err))
	ui.setStatus(ui.localization.GetText(KeyConnectionError))

	var netErr *mealdb.NetworkError
	if errors.As(err, &netErr) {
		dialog.ShowError(netErr, ui.window)
		return
	}
	dialog.ShowError(err, ui.window)
}

// pendingStatus describes a running query
func (ui *RootUI) pendingStatus(q mealdb.Query) string {
	switch q.Kind {
	case mealdb.QueryByCountry, mealdb.QueryByCategory:
		return ui.localization.Format(KeyFinding, q.Value)
	case mealdb.QueryByName:
		return ui.localization.Format(KeySearching, strings.TrimSpace(q.Value))
	default:
		return ui.localization.GetText(KeyFetchingRandom)
	}
}

// emptyMessage describes a query that matched nothing
func (ui *RootUI) emptyMessage(q mealdb.Query) string {
	switch q.Kind {
	case mealdb.QueryByCountry, mealdb.QueryByCategory:
		return ui.localization.Format(KeyNoRecipesFor, q.Value)
	case mealdb.QueryByName:
		return ui.localization.Format(KeyNotFoundFor, strings.TrimSpace(q.Value))
	default:
		return ui.localization.GetText(KeyNoRecipeFound)
	}
}

// warnNoRecipe tells the user an action needs a loaded recipe
func (ui *RootUI) warnNoRecipe() {
	dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyNoRecipeSelected), ui.window)
}

// onSearch handles the search button and Enter in the search field
func (ui *RootUI) onSearch() {
	term := strings.TrimSpace(ui.searchEntry.Text)
	if term == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyEnterSearchTerm), ui.window)
		return
	}
	ui.requestRecipe(mealdb.ByName(term))
}

// onFavoriteSelected re-searches a favorite by name
func (ui *RootUI) onFavoriteSelected(name string) {
	ui.searchEntry.SetText(name)
	ui.requestRecipe(mealdb.ByName(name))
}

// onSurprise picks a random country or category filter
func (ui *RootUI) onSurprise() {
	q := session.SurpriseQuery(ui.pick)
	if !ui.requestRecipe(q) {
		return
	}

	// Assign directly so OnChanged does not issue a second request
	target := ui.countrySelect
	if q.Kind == mealdb.QueryByCategory {
		target = ui.categorySelect
	}
	target.Selected = q.Value
	target.Refresh()
}

// onAddFavorite handles the Add to Favorites button
func (ui *RootUI) onAddFavorite() {
	name, added, err := ui.state.AddCurrentToFavorites()
	if errors.Is(err, session.ErrNoRecipe) {
		ui.warnNoRecipe()
		return
	}
	if !added {
		dialog.ShowInformation(ui.localization.GetText(KeyAlreadyAdded), ui.localization.GetText(KeyAlreadyFavorite), ui.window)
		return
	}
	ui.setStatus(ui.localization.Format(KeyAddedFavorite, name))
}

// onAddShopping handles the Add to Shopping List button
func (ui *RootUI) onAddShopping() {
	added, err := ui.state.AddCurrentToShoppingList()
	if errors.Is(err, session.ErrNoRecipe) {
		ui.warnNoRecipe()
		return
	}
	if added == 0 {
		ui.setStatus(ui.localization.GetText(KeyNothingToAdd))
		return
	}
	ui.setStatus(ui.localization.GetText(KeyAddedShopping))
}

// onClearShopping handles the Clear List button
func (ui *RootUI) onClearShopping() {
	ui.state.ClearShoppingList()
	ui.setStatus(ui.localization.GetText(KeyShoppingCleared))
}

// onPlanMeal asks for a day and plans the current recipe
func (ui *RootUI) onPlanMeal() {
	if ui.state.Current() == nil {
		ui.warnNoRecipe()
		return
	}

	ShowPlanMealDialog(ui.window, ui.localization, ui.planCurrent)
}

// planCurrent stores the current recipe for day
func (ui *RootUI) planCurrent(day model.Weekday) {
	name, err := ui.state.PlanCurrent(day)
	if err != nil {
		logger.Warn("failed to plan meal", zap.String("day", day.String()), zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}
	ui.setStatus(ui.localization.Format(KeyPlanned, name, day))
}

// onViewRecipe shows the full instructions
func (ui *RootUI) onViewRecipe() {
	current := ui.state.Current()
	if current == nil {
		ui.warnNoRecipe()
		return
	}
	ShowFullRecipeDialog(ui.window, ui.localization, current)
}

// onWatchTutorial opens the recipe video in the system browser
func (ui *RootUI) onWatchTutorial() {
	current := ui.state.Current()
	if current == nil {
		ui.warnNoRecipe()
		return
	}
	if !current.HasVideo() {
		dialog.ShowInformation(ui.localization.GetText(KeyNoVideo), ui.localization.GetText(KeyNoVideoAvailable), ui.window)
		return
	}

	link, err := platform.TutorialLink(current.VideoURL)
	if err == nil {
		err = ui.openURL(link)
	}
	if err != nil {
		logger.Warn("failed to open tutorial", zap.String("url", current.VideoURL), zap.Error(err))
		ui.setStatus(ui.localization.GetText(KeyErrorOpeningLink))
		dialog.ShowError(err, ui.window)
		return
	}
	ui.setStatus(ui.localization.GetText(KeyOpeningTutorial))
}

// onCopyIngredients copies "measure name" lines to the clipboard
func (ui *RootUI) onCopyIngredients() {
	lines, err := ui.state.CurrentIngredientLines()
	if errors.Is(err, session.ErrNoRecipe) {
		ui.warnNoRecipe()
		return
	}

	ui.app.Clipboard().SetContent(strings.Join(lines, "\n"))
	ui.setStatus(ui.localization.GetText(KeyCopied))
}
