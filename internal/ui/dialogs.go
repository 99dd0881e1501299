package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cuisine-explorer/internal/model"
)

// ShowFullRecipeDialog shows the recipe name and its instructions
func ShowFullRecipeDialog(window fyne.Window, localization *Localization, r *model.Recipe) {
	name := widget.NewLabelWithStyle(r.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := widget.NewLabelWithStyle(localization.GetText(KeyInstructions), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	text := strings.TrimSpace(r.Instructions)
	if text == "" {
		text = localization.GetText(KeyNoInstructions)
	}
	instructions := widget.NewLabel(text)
	instructions.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(
		container.NewVBox(name, widget.NewLabel(InfoLine(r)), widget.NewSeparator(), header),
		nil, nil, nil,
		container.NewVScroll(instructions),
	)

	d := dialog.NewCustom(localization.Format(KeyFullRecipe, r.Name), localization.GetText(KeyCancel), content, window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

// ShowPlanMealDialog asks for a weekday and passes it to onSave
func ShowPlanMealDialog(window fyne.Window, localization *Localization, onSave func(model.Weekday)) {
	days := make([]string, 0, 7)
	for _, day := range model.Weekdays() {
		days = append(days, day.String())
	}

	daySelect := widget.NewSelect(days, nil)
	daySelect.SetSelected(days[0])

	content := container.NewVBox(
		widget.NewLabel(localization.GetText(KeySelectDay)),
		daySelect,
	)

	dialog.ShowCustomConfirm(
		localization.GetText(KeyPlanMeal),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		content,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			day, err := model.ParseWeekday(daySelect.Selected)
			if err != nil {
				return
			}
			onSave(day)
		},
		window,
	)
}
