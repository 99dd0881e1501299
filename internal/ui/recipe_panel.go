package ui

import (
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cuisine-explorer/internal/model"
)

// RecipePanel renders the recipe currently on screen
type RecipePanel struct {
	localization *Localization

	title        *widget.RichText
	titleSegment *widget.TextSegment
	info         *widget.Label
	image        *canvas.Image

	cards         *fyne.Container
	prepTitle     *widget.Label
	levelTitle    *widget.Label
	servingsTitle *widget.Label
	prepValue     *widget.Label
	levelValue    *widget.Label
	servingsValue *widget.Label

	ingredientsHeader *widget.Label
	ingredients       *widget.Label

	estimate  *Estimate
	container *fyne.Container
}

// NewRecipePanel creates an empty recipe panel
func NewRecipePanel(localization *Localization) *RecipePanel {
	rp := &RecipePanel{localization: localization}
	rp.createUI()
	return rp
}

// createUI builds the panel widgets
func (rp *RecipePanel) createUI() {
	rp.titleSegment = &widget.TextSegment{
		Style: widget.RichTextStyleHeading,
		Text:  rp.localization.GetText(KeySelectRecipe),
	}
	rp.title = widget.NewRichText(rp.titleSegment)
	rp.title.Wrapping = fyne.TextWrapWord

	rp.info = widget.NewLabel("")
	rp.info.Wrapping = fyne.TextWrapWord

	rp.image = canvas.NewImageFromImage(nil)
	rp.image.FillMode = canvas.ImageFillContain
	rp.image.SetMinSize(fyne.NewSize(ImageBoxWidth, ImageBoxHeight))

	rp.prepTitle, rp.prepValue = widget.NewLabel(""), widget.NewLabel(DashPlaceholder)
	rp.levelTitle, rp.levelValue = widget.NewLabel(""), widget.NewLabel(DashPlaceholder)
	rp.servingsTitle, rp.servingsValue = widget.NewLabel(""), widget.NewLabel(DashPlaceholder)
	for _, value := range []*widget.Label{rp.prepValue, rp.levelValue, rp.servingsValue} {
		value.TextStyle = fyne.TextStyle{Bold: true}
	}

	rp.cards = container.NewGridWithColumns(3,
		newInfoCard(IconPrep, rp.prepTitle, rp.prepValue),
		newInfoCard(IconLevel, rp.levelTitle, rp.levelValue),
		newInfoCard(IconServings, rp.servingsTitle, rp.servingsValue),
	)

	rp.ingredientsHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	rp.ingredients = widget.NewLabel("")
	rp.ingredients.Wrapping = fyne.TextWrapWord
	ingredientsScroll := container.NewVScroll(rp.ingredients)
	ingredientsScroll.SetMinSize(fyne.NewSize(0, IngredientsMinHeight))

	details := container.NewBorder(
		container.NewVBox(rp.cards, rp.ingredientsHeader),
		nil, nil, nil,
		ingredientsScroll,
	)

	rp.container = container.NewBorder(
		container.NewVBox(rp.title, rp.info),
		nil,
		container.NewPadded(rp.image),
		nil,
		details,
	)

	rp.RefreshTexts()
}

// newInfoCard stacks an icon, a caption and a value
func newInfoCard(icon string, title, value *widget.Label) fyne.CanvasObject {
	iconLabel := widget.NewLabelWithStyle(icon, fyne.TextAlignCenter, fyne.TextStyle{})
	title.Alignment = fyne.TextAlignCenter
	value.Alignment = fyne.TextAlignCenter
	return container.NewPadded(container.NewVBox(iconLabel, title, value))
}

// Container returns the root canvas object of the panel
func (rp *RecipePanel) Container() *fyne.Container {
	return rp.container
}

// SetRecipe shows r with its image and a placeholder estimate. img may be nil.
func (rp *RecipePanel) SetRecipe(r *model.Recipe, img image.Image, estimate Estimate) {
	rp.titleSegment.Text = r.Name
	rp.title.Refresh()

	rp.info.SetText(InfoLine(r))

	rp.image.Image = img
	rp.image.Refresh()

	rp.estimate = &estimate
	rp.updateEstimate()

	rp.ingredients.SetText(IngredientsText(r))
}

// SetShowEstimates toggles the estimate cards
func (rp *RecipePanel) SetShowEstimates(show bool) {
	if show {
		rp.cards.Show()
	} else {
		rp.cards.Hide()
	}
}

// RefreshTexts re-applies localized captions
func (rp *RecipePanel) RefreshTexts() {
	if rp.estimate == nil {
		rp.titleSegment.Text = rp.localization.GetText(KeySelectRecipe)
		rp.title.Refresh()
	}
	rp.prepTitle.SetText(rp.localization.GetText(KeyPrepTime))
	rp.levelTitle.SetText(rp.localization.GetText(KeyDifficulty))
	rp.servingsTitle.SetText(rp.localization.GetText(KeyServings))
	rp.ingredientsHeader.SetText(rp.localization.GetText(KeyIngredients))
	rp.updateEstimate()
}

// updateEstimate renders the last estimate in the current language
func (rp *RecipePanel) updateEstimate() {
	if rp.estimate == nil {
		return
	}
	rp.prepValue.SetText(rp.localization.Format(KeyMinutes, rp.estimate.PrepMinutes))
	rp.levelValue.SetText(rp.localization.GetText(rp.estimate.Difficulty.LocalizationKey()))
	rp.servingsValue.SetText(rp.localization.Format(KeyPeople, rp.estimate.Servings))
}

// InfoLine renders "flag area • icon category • #tag • #tag"
func InfoLine(r *model.Recipe) string {
	parts := []string{
		model.FlagFor(r.Area) + " " + r.Area,
		model.IconFor(r.Category) + " " + r.Category,
	}

	tags := r.TagList()
	if len(tags) > MaxShownTags {
		tags = tags[:MaxShownTags]
	}
	for _, tag := range tags {
		parts = append(parts, IconTag+tag)
	}

	return strings.Join(parts, MiddleDotSeparator)
}

// IngredientsText renders one bulleted ingredient per line
func IngredientsText(r *model.Recipe) string {
	lines := r.IngredientLines()
	for i, line := range lines {
		lines[i] = IconBullet + " " + line
	}
	return strings.Join(lines, "\n")
}
