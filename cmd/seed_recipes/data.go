package main

import "github.com/pageza/cookbook/backend/internal/model"

type sampleUser struct {
	username  string
	firstName string
	lastName  string
}

type sampleRecipe struct {
	title       string
	description string
	cookingTime int
	difficulty  model.Difficulty
	topic       string
	author      string
	steps       [][2]string
	ingredients [][2]string
}

var sampleUsers = []sampleUser{
	{"marta", "Marta", "Ortiz"},
	{"kenji", "Kenji", "Sato"},
	{"amara", "Amara", "Okafor"},
}

var sampleTopics = []string{"Soups", "Pasta", "Baking", "Salads", "Mains"}

var sampleRecipes = []sampleRecipe{
	{
		title:       "Tomato Soup",
		description: "Roasted tomato soup with basil.",
		cookingTime: 40,
		difficulty:  model.DifficultyEasy,
		topic:       "Soups",
		author:      "marta",
		steps: [][2]string{
			{"Roast", "Roast halved tomatoes and garlic at 200C for 25 minutes."},
			{"Simmer", "Simmer with stock for 10 minutes."},
			{"Blend", "Blend with basil until smooth."},
		},
		ingredients: [][2]string{{"Tomatoes", "1 kg"}, {"Garlic", "4 cloves"}, {"Vegetable stock", "500 ml"}, {"Basil", "1 bunch"}},
	},
	{
		title:       "Miso Soup",
		description: "Quick dashi based miso soup with tofu.",
		cookingTime: 15,
		difficulty:  model.DifficultyEasy,
		topic:       "Soups",
		author:      "kenji",
		steps: [][2]string{
			{"Dashi", "Warm the dashi without boiling."},
			{"Miso", "Whisk in the miso paste."},
			{"Finish", "Add tofu and spring onion and serve."},
		},
		ingredients: [][2]string{{"Dashi", "800 ml"}, {"White miso", "3 tbsp"}, {"Silken tofu", "200 g"}, {"Spring onion", "2"}},
	},
	{
		title:       "Spaghetti Carbonara",
		description: "Guanciale, egg yolk and pecorino. No cream.",
		cookingTime: 25,
		difficulty:  model.DifficultyMedium,
		topic:       "Pasta",
		author:      "marta",
		steps: [][2]string{
			{"Render", "Crisp the guanciale in a dry pan."},
			{"Boil", "Cook the spaghetti in salted water."},
			{"Emulsify", "Toss pasta with yolks, cheese and a splash of pasta water off the heat."},
		},
		ingredients: [][2]string{{"Spaghetti", "400 g"}, {"Guanciale", "150 g"}, {"Egg yolks", "5"}, {"Pecorino", "80 g"}},
	},
	{
		title:       "Fresh Egg Pasta",
		description: "Hand rolled tagliatelle.",
		cookingTime: 90,
		difficulty:  model.DifficultyHard,
		topic:       "Pasta",
		author:      "marta",
		steps: [][2]string{
			{"Dough", "Work flour and eggs into a smooth dough."},
			{"Rest", "Rest wrapped for 30 minutes."},
			{"Roll", "Roll thin and cut into ribbons."},
		},
		ingredients: [][2]string{{"00 flour", "400 g"}, {"Eggs", "4"}},
	},
	{
		title:       "Sourdough Loaf",
		description: "Open crumb country loaf.",
		cookingTime: 1440,
		difficulty:  model.DifficultyHard,
		topic:       "Baking",
		author:      "amara",
		steps: [][2]string{
			{"Levain", "Build the levain the night before."},
			{"Autolyse", "Mix flour and water and rest an hour."},
			{"Bulk", "Fold every 30 minutes during bulk fermentation."},
			{"Shape", "Shape and retard overnight."},
			{"Bake", "Bake covered at 250C, then uncovered."},
		},
		ingredients: [][2]string{{"Bread flour", "900 g"}, {"Water", "700 g"}, {"Levain", "180 g"}, {"Salt", "20 g"}},
	},
	{
		title:       "Banana Bread",
		description: "Moist loaf for overripe bananas.",
		cookingTime: 70,
		difficulty:  model.DifficultyEasy,
		topic:       "Baking",
		author:      "amara",
		steps: [][2]string{
			{"Mash", "Mash bananas with melted butter."},
			{"Mix", "Fold in sugar, egg, flour and soda."},
			{"Bake", "Bake at 175C for an hour."},
		},
		ingredients: [][2]string{{"Bananas", "3"}, {"Butter", "80 g"}, {"Flour", "190 g"}, {"Baking soda", "1 tsp"}},
	},
	{
		title:       "Greek Salad",
		description: "Tomato, cucumber, olives and feta.",
		cookingTime: 10,
		difficulty:  model.DifficultyEasy,
		topic:       "Salads",
		author:      "kenji",
		steps: [][2]string{
			{"Chop", "Chop vegetables into large chunks."},
			{"Dress", "Dress with olive oil and oregano, top with feta."},
		},
		ingredients: [][2]string{{"Tomatoes", "3"}, {"Cucumber", "1"}, {"Kalamata olives", "100 g"}, {"Feta", "200 g"}},
	},
	{
		title:       "Chicken Tikka Masala",
		description: "Charred chicken in a spiced tomato cream sauce.",
		cookingTime: 60,
		difficulty:  model.DifficultyMedium,
		topic:       "Mains",
		author:      "amara",
		steps: [][2]string{
			{"Marinate", "Marinate chicken in yogurt and spices."},
			{"Char", "Grill until charred."},
			{"Sauce", "Cook onion, tomato and spices, finish with cream."},
			{"Combine", "Simmer the chicken in the sauce."},
		},
		ingredients: [][2]string{{"Chicken thighs", "800 g"}, {"Yogurt", "200 g"}, {"Tomato passata", "400 g"}, {"Cream", "150 ml"}},
	},
	{
		title:       "Beef Wellington",
		description: "Fillet in mushroom duxelles and puff pastry.",
		cookingTime: 150,
		difficulty:  model.DifficultyHard,
		topic:       "Mains",
		author:      "kenji",
		steps: [][2]string{
			{"Sear", "Sear the fillet on all sides."},
			{"Duxelles", "Cook mushrooms down to a dry paste."},
			{"Wrap", "Wrap in prosciutto, duxelles and pastry, then chill."},
			{"Bake", "Bake until the core reaches 52C."},
		},
		ingredients: [][2]string{{"Beef fillet", "1 kg"}, {"Mushrooms", "500 g"}, {"Prosciutto", "8 slices"}, {"Puff pastry", "500 g"}},
	},
	{
		title:       "Risotto alla Milanese",
		description: "Saffron risotto.",
		cookingTime: 35,
		difficulty:  model.DifficultyMedium,
		topic:       "Mains",
		author:      "marta",
		steps: [][2]string{
			{"Toast", "Toast the rice in butter."},
			{"Stock", "Add hot stock a ladle at a time."},
			{"Mantecatura", "Finish with saffron, butter and parmesan."},
		},
		ingredients: [][2]string{{"Carnaroli rice", "320 g"}, {"Saffron", "1 pinch"}, {"Stock", "1.2 l"}, {"Parmesan", "60 g"}},
	},
}
