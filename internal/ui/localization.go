package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySubtitle          = "subtitle"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyShowEstimates     = "show_estimates"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRandomRecipe      = "random_recipe"
	KeyAddFavorite       = "add_favorite"
	KeyAddShopping       = "add_shopping"
	KeyPlanMeal          = "plan_meal"
	KeyCountry           = "country"
	KeyCategory          = "category"
	KeySearch            = "search"
	KeySearchPlaceholder = "search_placeholder"
	KeySelectRecipe      = "select_recipe"
	KeyPrepTime          = "prep_time"
	KeyDifficulty        = "difficulty"
	KeyServings          = "servings"
	KeyMinutes           = "minutes"
	KeyPeople            = "people"
	KeyEasy              = "easy"
	KeyMedium            = "medium"
	KeyHard              = "hard"
	KeyIngredients       = "ingredients"
	KeyFavoritesTab      = "favorites_tab"
	KeyShoppingTab       = "shopping_tab"
	KeyMealPlanTab       = "meal_plan_tab"
	KeyFavoritesTitle    = "favorites_title"
	KeyMealPlanTitle     = "meal_plan_title"
	KeyClearList         = "clear_list"
	KeyNotPlanned        = "not_planned"
	KeyViewRecipe        = "view_recipe"
	KeyWatchTutorial     = "watch_tutorial"
	KeySurprise          = "surprise"
	KeyCopyIngredients   = "copy_ingredients"
	KeyReady             = "ready"
	KeyFetchingRandom    = "fetching_random"
	KeyFinding           = "finding"
	KeySearching         = "searching"
	KeyLoaded            = "loaded"
	KeyFound             = "found"
	KeyNoRecipes         = "no_recipes"
	KeyNoRecipeFound     = "no_recipe_found"
	KeyNoRecipesFor      = "no_recipes_for"
	KeyNotFoundFor       = "not_found_for"
	KeyConnectionError   = "connection_error"
	KeyWarning           = "warning"
	KeyEnterSearchTerm   = "enter_search_term"
	KeyNoRecipeSelected  = "no_recipe_selected"
	KeyAddedFavorite     = "added_favorite"
	KeyAlreadyAdded      = "already_added"
	KeyAlreadyFavorite   = "already_favorite"
	KeyAddedShopping     = "added_shopping"
	KeyNothingToAdd      = "nothing_to_add"
	KeyShoppingCleared   = "shopping_cleared"
	KeySelectDay         = "select_day"
	KeyPlanned           = "planned"
	KeyFullRecipe        = "full_recipe"
	KeyInstructions      = "instructions"
	KeyNoInstructions    = "no_instructions"
	KeyNoVideo           = "no_video"
	KeyNoVideoAvailable  = "no_video_available"
	KeyOpeningTutorial   = "opening_tutorial"
	KeyErrorOpeningLink  = "error_opening_link"
	KeyCopied            = "copied"
	KeyBusy              = "busy"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "🌍 Global Cuisine Explorer",
		KeySubtitle:          "Discover recipes from around the world",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyShowEstimates:     "Show prep time, difficulty and servings",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRandomRecipe:      "🎲 Random Recipe",
		KeyAddFavorite:       "❤️ Add to Favorites",
		KeyAddShopping:       "🛒 Add to Shopping List",
		KeyPlanMeal:          "📅 Plan This Meal",
		KeyCountry:           "Country:",
		KeyCategory:          "Category:",
		KeySearch:            "🔍 Search",
		KeySearchPlaceholder: "Search recipes by name",
		KeySelectRecipe:      "Select a Recipe",
		KeyPrepTime:          "Prep Time",
		KeyDifficulty:        "Difficulty",
		KeyServings:          "Servings",
		KeyMinutes:           "%d mins",
		KeyPeople:            "%d people",
		KeyEasy:              "Easy",
		KeyMedium:            "Medium",
		KeyHard:              "Hard",
		KeyIngredients:       "📋 Ingredients:",
		KeyFavoritesTab:      "❤️ Favorites",
		KeyShoppingTab:       "🛒 Shopping List",
		KeyMealPlanTab:       "📅 Meal Plan",
		KeyFavoritesTitle:    "Your Favorite Recipes",
		KeyMealPlanTitle:     "This Week's Meal Plan",
		KeyClearList:         "Clear List",
		KeyNotPlanned:        "Not planned",
		KeyViewRecipe:        "📖 View Full Recipe",
		KeyWatchTutorial:     "▶ Watch Tutorial",
		KeySurprise:          "🔄 Surprise Me",
		KeyCopyIngredients:   "📋 Copy Ingredients",
		KeyReady:             "Ready to explore global cuisines!",
		KeyFetchingRandom:    "Fetching a random recipe from around the world...",
		KeyFinding:           "Finding %s recipes...",
		KeySearching:         "Searching for '%s'...",
		KeyLoaded:            "Loaded %s from %s",
		KeyFound:             "Found '%s'!",
		KeyNoRecipes:         "No Recipes",
		KeyNoRecipeFound:     "No recipe found",
		KeyNoRecipesFor:      "No %s recipes found",
		KeyNotFoundFor:       "No recipes found for '%s'",
		KeyConnectionError:   "Connection Error",
		KeyWarning:           "Warning",
		KeyEnterSearchTerm:   "Please enter a search term",
		KeyNoRecipeSelected:  "No recipe selected",
		KeyAddedFavorite:     "Added '%s' to favorites!",
		KeyAlreadyAdded:      "Already Added",
		KeyAlreadyFavorite:   "This recipe is already in your favorites",
		KeyAddedShopping:     "Ingredients added to shopping list!",
		KeyNothingToAdd:      "All ingredients are already on the list",
		KeyShoppingCleared:   "Shopping list cleared",
		KeySelectDay:         "Select day for this meal:",
		KeyPlanned:           "Planned '%s' for %s",
		KeyFullRecipe:        "%s - Full Recipe",
		KeyInstructions:      "Instructions:",
		KeyNoInstructions:    "No instructions provided",
		KeyNoVideo:           "No Video",
		KeyNoVideoAvailable:  "No tutorial video available for this recipe",
		KeyOpeningTutorial:   "Opening tutorial...",
		KeyErrorOpeningLink:  "Error opening link",
		KeyCopied:            "Ingredients copied to clipboard!",
		KeyBusy:              "Still loading the previous request...",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "🌍 Кулинарный путеводитель",
		KeySubtitle:          "Рецепты со всего мира",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyShowEstimates:     "Показывать время, сложность и порции",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRandomRecipe:      "🎲 Случайный рецепт",
		KeyAddFavorite:       "❤️ В избранное",
		KeyAddShopping:       "🛒 В список покупок",
		KeyPlanMeal:          "📅 Запланировать",
		KeyCountry:           "Страна:",
		KeyCategory:          "Категория:",
		KeySearch:            "🔍 Поиск",
		KeySearchPlaceholder: "Поиск рецептов по названию",
		KeySelectRecipe:      "Выберите рецепт",
		KeyPrepTime:          "Время",
		KeyDifficulty:        "Сложность",
		KeyServings:          "Порции",
		KeyMinutes:           "%d мин",
		KeyPeople:            "%d чел.",
		KeyEasy:              "Легко",
		KeyMedium:            "Средне",
		KeyHard:              "Сложно",
		KeyIngredients:       "📋 Ингредиенты:",
		KeyFavoritesTab:      "❤️ Избранное",
		KeyShoppingTab:       "🛒 Покупки",
		KeyMealPlanTab:       "📅 План питания",
		KeyFavoritesTitle:    "Ваши любимые рецепты",
		KeyMealPlanTitle:     "План на неделю",
		KeyClearList:         "Очистить",
		KeyNotPlanned:        "Не запланировано",
		KeyViewRecipe:        "📖 Полный рецепт",
		KeyWatchTutorial:     "▶ Смотреть видео",
		KeySurprise:          "🔄 Удиви меня",
		KeyCopyIngredients:   "📋 Копировать ингредиенты",
		KeyReady:             "Готово к путешествию по кухням мира!",
		KeyFetchingRandom:    "Ищем случайный рецепт...",
		KeyFinding:           "Ищем рецепты: %s...",
		KeySearching:         "Поиск '%s'...",
		KeyLoaded:            "Загружено: %s (%s)",
		KeyFound:             "Найдено: '%s'!",
		KeyNoRecipes:         "Нет рецептов",
		KeyNoRecipeFound:     "Рецепт не найден",
		KeyNoRecipesFor:      "Рецепты не найдены: %s",
		KeyNotFoundFor:       "По запросу '%s' ничего не найдено",
		KeyConnectionError:   "Ошибка соединения",
		KeyWarning:           "Внимание",
		KeyEnterSearchTerm:   "Пожалуйста, введите запрос",
		KeyNoRecipeSelected:  "Рецепт не выбран",
		KeyAddedFavorite:     "'%s' добавлен в избранное!",
		KeyAlreadyAdded:      "Уже добавлено",
		KeyAlreadyFavorite:   "Этот рецепт уже в избранном",
		KeyAddedShopping:     "Ингредиенты добавлены в список покупок!",
		KeyNothingToAdd:      "Все ингредиенты уже в списке",
		KeyShoppingCleared:   "Список покупок очищен",
		KeySelectDay:         "Выберите день:",
		KeyPlanned:           "'%s' запланирован на %s",
		KeyFullRecipe:        "%s - полный рецепт",
		KeyInstructions:      "Приготовление:",
		KeyNoInstructions:    "Инструкции отсутствуют",
		KeyNoVideo:           "Нет видео",
		KeyNoVideoAvailable:  "Для этого рецепта нет видео",
		KeyOpeningTutorial:   "Открываем видео...",
		KeyErrorOpeningLink:  "Ошибка открытия ссылки",
		KeyCopied:            "Ингредиенты скопированы!",
		KeyBusy:              "Предыдущий запрос ещё выполняется...",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "🌍 Explorador de Culinária Global",
		KeySubtitle:          "Descubra receitas do mundo inteiro",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyShowEstimates:     "Mostrar tempo, dificuldade e porções",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRandomRecipe:      "🎲 Receita Aleatória",
		KeyAddFavorite:       "❤️ Adicionar aos Favoritos",
		KeyAddShopping:       "🛒 Adicionar às Compras",
		KeyPlanMeal:          "📅 Planejar Refeição",
		KeyCountry:           "País:",
		KeyCategory:          "Categoria:",
		KeySearch:            "🔍 Buscar",
		KeySearchPlaceholder: "Buscar receitas pelo nome",
		KeySelectRecipe:      "Selecione uma Receita",
		KeyPrepTime:          "Preparo",
		KeyDifficulty:        "Dificuldade",
		KeyServings:          "Porções",
		KeyMinutes:           "%d min",
		KeyPeople:            "%d pessoas",
		KeyEasy:              "Fácil",
		KeyMedium:            "Média",
		KeyHard:              "Difícil",
		KeyIngredients:       "📋 Ingredientes:",
		KeyFavoritesTab:      "❤️ Favoritos",
		KeyShoppingTab:       "🛒 Lista de Compras",
		KeyMealPlanTab:       "📅 Plano de Refeições",
		KeyFavoritesTitle:    "Suas Receitas Favoritas",
		KeyMealPlanTitle:     "Plano da Semana",
		KeyClearList:         "Limpar Lista",
		KeyNotPlanned:        "Não planejado",
		KeyViewRecipe:        "📖 Ver Receita Completa",
		KeyWatchTutorial:     "▶ Assistir Tutorial",
		KeySurprise:          "🔄 Surpreenda-me",
		KeyCopyIngredients:   "📋 Copiar Ingredientes",
		KeyReady:             "Pronto para explorar a culinária global!",
		KeyFetchingRandom:    "Buscando uma receita aleatória...",
		KeyFinding:           "Procurando receitas: %s...",
		KeySearching:         "Buscando '%s'...",
		KeyLoaded:            "Carregado %s de %s",
		KeyFound:             "Encontrado '%s'!",
		KeyNoRecipes:         "Sem Receitas",
		KeyNoRecipeFound:     "Nenhuma receita encontrada",
		KeyNoRecipesFor:      "Nenhuma receita encontrada: %s",
		KeyNotFoundFor:       "Nenhuma receita encontrada para '%s'",
		KeyConnectionError:   "Erro de Conexão",
		KeyWarning:           "Aviso",
		KeyEnterSearchTerm:   "Por favor, digite um termo de busca",
		KeyNoRecipeSelected:  "Nenhuma receita selecionada",
		KeyAddedFavorite:     "'%s' adicionada aos favoritos!",
		KeyAlreadyAdded:      "Já Adicionada",
		KeyAlreadyFavorite:   "Esta receita já está nos seus favoritos",
		KeyAddedShopping:     "Ingredientes adicionados à lista de compras!",
		KeyNothingToAdd:      "Todos os ingredientes já estão na lista",
		KeyShoppingCleared:   "Lista de compras limpa",
		KeySelectDay:         "Selecione o dia para esta refeição:",
		KeyPlanned:           "'%s' planejada para %s",
		KeyFullRecipe:        "%s - Receita Completa",
		KeyInstructions:      "Modo de preparo:",
		KeyNoInstructions:    "Sem instruções",
		KeyNoVideo:           "Sem Vídeo",
		KeyNoVideoAvailable:  "Não há vídeo tutorial para esta receita",
		KeyOpeningTutorial:   "Abrindo tutorial...",
		KeyErrorOpeningLink:  "Erro ao abrir link",
		KeyCopied:            "Ingredientes copiados!",
		KeyBusy:              "Ainda carregando a solicitação anterior...",
	}
}
