package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipeText_WellFormedReply(t *testing.T) {
	raw := "TITLE: Egg Fried Rice\nINGREDIENTS:\n- 2 eggs\n- 1 cup rice\nINSTRUCTIONS:\n1. Beat eggs.\n2. Fry rice.\nCOOKING_TIME: 15 minutes\nSERVINGS: 2\nDIFFICULTY: Easy"

	parsed := ParseRecipeText(raw, []string{"egg", "rice"})

	assert.Equal(t, "Egg Fried Rice", parsed.Title)
	assert.Equal(t, "", parsed.Description)
	assert.Equal(t, []string{"2 eggs", "1 cup rice"}, parsed.Ingredients)
	assert.Equal(t, "Beat eggs.\nFry rice.", parsed.Instructions)
	assert.Equal(t, "15 minutes", parsed.CookingTime)
	assert.Equal(t, "2", parsed.Servings)
	assert.Equal(t, "Easy", parsed.Difficulty)
}

func TestParseRecipeText_NoLabels(t *testing.T) {
	raw := "Just fry everything together and enjoy.\n\nServe hot."
	input := []string{"tofu", "garlic"}

	parsed := ParseRecipeText(raw, input)

	assert.Equal(t, DefaultTitle, parsed.Title)
	assert.Equal(t, "", parsed.Description)
	assert.Equal(t, input, parsed.Ingredients)
	assert.Equal(t, raw, parsed.Instructions)
	assert.Equal(t, DefaultCookingTime, parsed.CookingTime)
	assert.Equal(t, DefaultServings, parsed.Servings)
	assert.Equal(t, DefaultDifficulty, parsed.Difficulty)
}

func TestParseRecipeText_EmptyReply(t *testing.T) {
	parsed := ParseRecipeText("", []string{"kale"})

	assert.Equal(t, DefaultTitle, parsed.Title)
	assert.Equal(t, []string{"kale"}, parsed.Ingredients)
	assert.Equal(t, "", parsed.Instructions)
}

func TestParseRecipeText_StripsMarkup(t *testing.T) {
	raw := `**TITLE:** "Golden Garlic Noodles"
**DESCRIPTION:** Buttery noodles with crispy garlic.**

**INGREDIENTS:**
  - 200g noodles
  • 4 cloves garlic
* 2 tbsp butter

**INSTRUCTIONS:**
  1. **Boil the noodles.**
2.    Fry the garlic in butter.
3. Toss together.

**COOKING_TIME:** 20 minutes (plus resting)
**SERVINGS:** 2
**DIFFICULTY:** Easy`

	parsed := ParseRecipeText(raw, []string{"noodles"})

	assert.Equal(t, "Golden Garlic Noodles", parsed.Title)
	assert.Equal(t, "Buttery noodles with crispy garlic.", parsed.Description)
	assert.Equal(t, []string{"200g noodles", "4 cloves garlic", "2 tbsp butter"}, parsed.Ingredients)
	assert.Equal(t, "Boil the noodles.\nFry the garlic in butter.\nToss together.", parsed.Instructions)
	assert.Equal(t, "20 minutes", parsed.CookingTime)
	assert.Equal(t, "2", parsed.Servings)
	assert.Equal(t, "Easy", parsed.Difficulty)
}

func TestParseRecipeText_CaseInsensitiveLabels(t *testing.T) {
	raw := "Title: Quick Salad\nDescription: Fresh and green.\nDifficulty: hard"

	parsed := ParseRecipeText(raw, []string{"lettuce"})

	assert.Equal(t, "Quick Salad", parsed.Title)
	assert.Equal(t, "Fresh and green.", parsed.Description)
	assert.Equal(t, "hard", parsed.Difficulty)
	assert.Equal(t, []string{"lettuce"}, parsed.Ingredients)
	assert.Equal(t, raw, parsed.Instructions)
}

func TestParseRecipeText_FirstMatchWins(t *testing.T) {
	// The label inside the description shadows the real DIFFICULTY line.
	raw := "TITLE: Risky Soufflé\nDESCRIPTION: Note the difficulty: high for beginners\nDIFFICULTY: Hard"

	parsed := ParseRecipeText(raw, []string{"egg"})

	assert.Equal(t, "high for beginners", parsed.Difficulty)
}

func TestParseRecipeText_IngredientsWithoutInstructionsKeepsInput(t *testing.T) {
	raw := "TITLE: Toast\nINGREDIENTS:\n- bread\n- butter"

	parsed := ParseRecipeText(raw, []string{"bread"})

	assert.Equal(t, []string{"bread"}, parsed.Ingredients)
	assert.Equal(t, raw, parsed.Instructions)
}

func TestParseRecipeText_NonBulletLinesIgnored(t *testing.T) {
	raw := "INGREDIENTS:\nYou will need:\n- 1 onion\nINSTRUCTIONS:\n1. Chop onion."

	parsed := ParseRecipeText(raw, []string{"onion"})

	assert.Equal(t, []string{"1 onion"}, parsed.Ingredients)
	assert.Equal(t, "Chop onion.", parsed.Instructions)
}

func TestParseRecipeText_MetadataLinesExcludedFromInstructions(t *testing.T) {
	raw := "INSTRUCTIONS:\n1. Mix.\nAdjust servings to taste.\n2. Bake."

	parsed := ParseRecipeText(raw, []string{"flour"})

	assert.Equal(t, "Mix.\nBake.", parsed.Instructions)
	assert.Equal(t, DefaultServings, parsed.Servings)
}

func TestBuildRecipePrompt(t *testing.T) {
	prompt := BuildRecipePrompt([]string{"egg", "rice", "scallion"})

	assert.Contains(t, prompt, "using these ingredients: egg, rice, scallion.")
	for _, label := range []string{"TITLE:", "DESCRIPTION:", "INGREDIENTS:", "INSTRUCTIONS:", "COOKING_TIME:", "SERVINGS:", "DIFFICULTY:"} {
		assert.Contains(t, prompt, label)
	}
}
