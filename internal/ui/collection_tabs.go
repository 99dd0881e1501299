package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cuisine-explorer/internal/model"
)

// CollectionTabs shows favorites, the shopping list and the weekly meal plan
type CollectionTabs struct {
	localization *Localization

	favorites []string
	shopping  []string

	favoritesTitle *widget.Label
	favoritesList  *widget.List
	shoppingList   *widget.List
	clearButton    *widget.Button
	planTitle      *widget.Label
	planLabels     map[model.Weekday]*widget.Label
	plan           map[model.Weekday]string

	favoritesTab *container.TabItem
	shoppingTab  *container.TabItem
	planTab      *container.TabItem
	tabs         *container.AppTabs

	// Callbacks
	onFavoriteSelected func(name string)
	onClearShopping    func()
}

// NewCollectionTabs creates the tab container
func NewCollectionTabs(localization *Localization) *CollectionTabs {
	ct := &CollectionTabs{
		localization: localization,
		favorites:    make([]string, 0),
		shopping:     make([]string, 0),
		planLabels:   make(map[model.Weekday]*widget.Label),
		plan:         make(map[model.Weekday]string),
	}

	ct.createUI()
	return ct
}

// SetCallbacks sets the handlers for favorite selection and list clearing
func (ct *CollectionTabs) SetCallbacks(onFavoriteSelected func(string), onClearShopping func()) {
	ct.onFavoriteSelected = onFavoriteSelected
	ct.onClearShopping = onClearShopping
}

// createUI builds the three tabs
func (ct *CollectionTabs) createUI() {
	ct.favoritesTitle = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ct.favoritesList = widget.NewList(
		func() int { return len(ct.favorites) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(ct.favorites[id])
		},
	)
	ct.favoritesList.OnSelected = func(id widget.ListItemID) {
		// Unselect so the same favorite can be picked again
		ct.favoritesList.Unselect(id)
		if id < 0 || id >= len(ct.favorites) {
			return
		}
		if ct.onFavoriteSelected != nil {
			ct.onFavoriteSelected(ct.favorites[id])
		}
	}
	favoritesContent := container.NewBorder(ct.favoritesTitle, nil, nil, nil, ct.favoritesList)

	ct.shoppingList = widget.NewList(
		func() int { return len(ct.shopping) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(IconBullet + " " + ct.shopping[id])
		},
	)
	ct.clearButton = widget.NewButton("", func() {
		if ct.onClearShopping != nil {
			ct.onClearShopping()
		}
	})
	ct.clearButton.Importance = widget.DangerImportance
	shoppingContent := container.NewBorder(nil, container.NewHBox(ct.clearButton), nil, nil, ct.shoppingList)

	ct.planTitle = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	planRows := container.NewVBox(ct.planTitle)
	for _, day := range model.Weekdays() {
		dayLabel := widget.NewLabelWithStyle(day.Short(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		mealLabel := widget.NewLabel("")
		ct.planLabels[day] = mealLabel
		planRows.Add(container.NewBorder(nil, nil, dayLabel, nil, mealLabel))
	}

	ct.favoritesTab = container.NewTabItem("", favoritesContent)
	ct.shoppingTab = container.NewTabItem("", shoppingContent)
	ct.planTab = container.NewTabItem("", container.NewVScroll(planRows))
	ct.tabs = container.NewAppTabs(ct.favoritesTab, ct.shoppingTab, ct.planTab)

	ct.RefreshTexts()
}

// Container returns the tab container
func (ct *CollectionTabs) Container() *container.AppTabs {
	return ct.tabs
}

// Update replaces the displayed collections
func (ct *CollectionTabs) Update(favorites, shopping []string, plan []model.PlannedMeal) {
	ct.favorites = favorites
	ct.shopping = shopping

	ct.plan = make(map[model.Weekday]string, len(plan))
	for _, entry := range plan {
		ct.plan[entry.Day] = entry.Recipe
	}

	ct.favoritesList.Refresh()
	ct.shoppingList.Refresh()
	ct.updatePlanLabels()
}

// RefreshTexts re-applies localized captions
func (ct *CollectionTabs) RefreshTexts() {
	ct.favoritesTab.Text = ct.localization.GetText(KeyFavoritesTab)
	ct.shoppingTab.Text = ct.localization.GetText(KeyShoppingTab)
	ct.planTab.Text = ct.localization.GetText(KeyMealPlanTab)
	ct.favoritesTitle.SetText(ct.localization.GetText(KeyFavoritesTitle))
	ct.planTitle.SetText(ct.localization.GetText(KeyMealPlanTitle))
	ct.clearButton.SetText(ct.localization.GetText(KeyClearList))
	ct.updatePlanLabels()
	ct.tabs.Refresh()
}

// updatePlanLabels shows each day's meal or the "not planned" text
func (ct *CollectionTabs) updatePlanLabels() {
	for day, label := range ct.planLabels {
		if recipe, ok := ct.plan[day]; ok {
			label.SetText(recipe)
		} else {
			label.SetText(ct.localization.GetText(KeyNotPlanned))
		}
	}
}
