package dto

type RecipeRequest struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  string   `json:"cookingTime"`
	Servings     int      `json:"servings"`
	Image        string   `json:"image,omitempty"`
	Video        string   `json:"video,omitempty"`
}

type SaveRecipeRequest struct {
	RecipeID string `json:"recipeId"`
}
