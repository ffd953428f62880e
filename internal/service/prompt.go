package service

import (
	"fmt"
	"strings"
)

const recipePromptTemplate = `Create a detailed and creative recipe using these ingredients: %s.

Please provide a response in this exact format:

TITLE: [Creative recipe name]

DESCRIPTION: [Brief description of the dish]

INGREDIENTS:
- [Ingredient 1 with measurement]
- [Ingredient 2 with measurement]
- [Continue for all needed ingredients]

INSTRUCTIONS:
1. [Detailed step 1]
2. [Detailed step 2]
3. [Continue with all cooking steps]

COOKING_TIME: [Total time needed]
SERVINGS: [Number of servings]
DIFFICULTY: [Easy/Medium/Hard]

Make it creative, detailed, and delicious!`

// BuildRecipePrompt renders the instruction text sent to the provider. Ingredients are
// joined with ", " in the order given.
func BuildRecipePrompt(ingredients []string) string {
	return fmt.Sprintf(recipePromptTemplate, strings.Join(ingredients, ", "))
}
