package storage

import "chuckle-chow/internal/core/engine"

// seedRecipes is the predefined corpus. Spanish step text is rendered at
// request time, so only titles carry translations here.
func seedRecipes() []engine.StoredRecipe {
	return []engine.StoredRecipe{
		{
			TitleEN: "Ginger-Soy Tofu Stir-Fry",
			TitleES: "Salteado de Tofu con Jengibre y Soya",
			StepsEN: []string{
				"Heat sesame oil in a pan over medium heat.",
				"Add diced tofu and fry until golden, about 5 minutes.",
				"Stir in grated ginger and soy sauce, cook for 2 minutes.",
				"Add any additional veggies and stir-fry for 3 minutes.",
				"Serve over rice with a sprinkle of sesame seeds.",
			},
			Ingredients: []string{"tofu", "ginger", "soy sauce"},
			Nutrition:   engine.Nutrition{Calories: 320, Protein: 18, Fat: 12},
			CookingTime: 15,
			Difficulty:  "easy",
		},
		{
			TitleEN: "Moonshine Chicken Skillet",
			TitleES: "Pollo al Aguardiente en Sartén",
			StepsEN: []string{
				"Heat olive oil in a skillet over medium-high heat.",
				"Add cubed chicken and sear for 8 minutes until golden.",
				"Splash in a shot of moonshine and let it sizzle for 1 minute.",
				"Add diced onion and cook for 5 minutes until soft.",
				"Season with paprika and serve with cornbread, hollerin’ for more!",
			},
			Ingredients: []string{"chicken", "moonshine", "onion"},
			Nutrition:   engine.Nutrition{Calories: 450, Protein: 35, Fat: 20},
			CookingTime: 15,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Squirrel and Okra Stew",
			TitleES: "Estofado de Ardilla y Okra",
			StepsEN: []string{
				"In a pot, brown squirrel meat with oil over medium heat for 10 minutes.",
				"Add sliced okra and diced tomato, stirring for 5 minutes.",
				"Pour in a cup of beer and simmer for 20 minutes.",
				"Season with salt and pepper, serve with a side of chaos!",
				"Warn the neighbors, this stew’s got sass!",
			},
			Ingredients: []string{"squirrel", "okra", "tomato", "beer"},
			Nutrition:   engine.Nutrition{Calories: 500, Protein: 40, Fat: 25},
			CookingTime: 35,
			Difficulty:  "hard",
		},
		{
			TitleEN: "Shrimp and Grits Hoedown",
			TitleES: "Camarones con Sémola Fiestera",
			StepsEN: []string{
				"Cook grits in a pot with milk until creamy, about 15 minutes.",
				"In a skillet, sauté shrimp with butter and garlic for 5 minutes.",
				"Add a splash of whiskey for a kick, cook 1 minute.",
				"Serve shrimp over grits, sprinkle with paprika, and dance a jig!",
				"Best eaten with a cold beer in hand.",
			},
			Ingredients: []string{"shrimp", "grits", "butter", "whiskey"},
			Nutrition:   engine.Nutrition{Calories: 600, Protein: 30, Fat: 30},
			CookingTime: 20,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Pork and Apple Moonshine Roast",
			TitleES: "Asado de Cerdo y Manzana al Aguardiente",
			StepsEN: []string{
				"Preheat oven to 350°F and rub pork with salt and pepper.",
				"Place pork and sliced apples in a roasting pan.",
				"Drizzle with moonshine and roast for 25 minutes.",
				"Baste with pan juices, cook 10 more minutes.",
				"Serve with collards and a rebel yell!",
			},
			Ingredients: []string{"pork", "apple", "moonshine", "collards"},
			Nutrition:   engine.Nutrition{Calories: 550, Protein: 38, Fat: 28},
			CookingTime: 35,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Catfish and Potato Fry-Up",
			TitleES: "Fritura de Bagre y Papas",
			StepsEN: []string{
				"Heat oil in a skillet over medium-high heat.",
				"Dredge catfish in cornmeal and fry for 6 minutes per side.",
				"Add diced potatoes and fry until crispy, about 10 minutes.",
				"Season with hot sauce and serve with a side of beer.",
				"Perfect for a backwoods feast!",
			},
			Ingredients: []string{"catfish", "potato", "cornmeal", "beer"},
			Nutrition:   engine.Nutrition{Calories: 520, Protein: 32, Fat: 22},
			CookingTime: 20,
			Difficulty:  "easy",
		},
		{
			TitleEN: "Ground Beef Tequila Tacos",
			TitleES: "Tacos de Res al Tequila",
			StepsEN: []string{
				"Brown ground beef in a skillet over medium heat for 8 minutes.",
				"Add diced onion and a splash of tequila, cook for 3 minutes.",
				"Season with chili powder and pile into tortillas.",
				"Top with diced tomato and holler for a fiesta!",
				"Serve with a cold beer to keep the party goin’!",
			},
			Ingredients: []string{"ground beef", "tequila", "onion", "tortilla", "tomato"},
			Nutrition:   engine.Nutrition{Calories: 580, Protein: 34, Fat: 26},
			CookingTime: 15,
			Difficulty:  "easy",
		},
		{
			TitleEN: "Shrimp Avocado Tequila Grill",
			TitleES: "Camarones y Aguacate al Tequila",
			StepsEN: []string{
				"Toss shrimp with tequila and grill over high heat for 4 minutes.",
				"Slice avocado and grill lightly for 2 minutes.",
				"Mix with diced tomato and a pinch of hot sauce.",
				"Serve on a sizzling platter with a rebel yell!",
				"Best with a cold beer on the side.",
			},
			Ingredients: []string{"shrimp", "avocado", "tequila", "tomato"},
			Nutrition:   engine.Nutrition{Calories: 420, Protein: 28, Fat: 20},
			CookingTime: 10,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Cauliflower Whiskey Smash",
			TitleES: "Puré de Coliflor al Whiskey",
			StepsEN: []string{
				"Boil cauliflower in a pot until tender, about 12 minutes.",
				"Mash with butter and a splash of whiskey.",
				"Season with black pepper and a pinch of chaos.",
				"Serve hot with a side of cornbread and a loud holler!",
				"Guaranteed to make the neighbors jealous.",
			},
			Ingredients: []string{"cauliflower", "whiskey", "butter"},
			Nutrition:   engine.Nutrition{Calories: 350, Protein: 10, Fat: 25},
			CookingTime: 15,
			Difficulty:  "easy",
		},
		{
			TitleEN: "Lobster Vodka Boil",
			TitleES: "Langosta Hervida al Vodka",
			StepsEN: []string{
				"Boil lobster in a pot with vodka and water for 8 minutes.",
				"Add diced potato and cook for 10 minutes more.",
				"Drain and toss with melted butter and hot sauce.",
				"Serve with a side of chaos and a cold beer!",
				"Perfect for a backwoods seafood brawl.",
			},
			Ingredients: []string{"lobster", "vodka", "potato", "butter"},
			Nutrition:   engine.Nutrition{Calories: 480, Protein: 30, Fat: 22},
			CookingTime: 20,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Quail and Mango Tequila Fry",
			TitleES: "Codorniz y Mango al Tequila",
			StepsEN: []string{
				"Heat oil in a skillet and fry quail pieces for 10 minutes.",
				"Add diced mango and a shot of tequila, cook for 3 minutes.",
				"Season with paprika and serve with a side of green beans.",
				"Holler loud enough to scare the critters!",
				"Best with a jug of moonshine nearby.",
			},
			Ingredients: []string{"quail", "mango", "tequila", "green beans"},
			Nutrition:   engine.Nutrition{Calories: 460, Protein: 32, Fat: 24},
			CookingTime: 15,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Hillbilly Bacon Beer Burgers",
			TitleES: "Hamburguesas Campesinas con Tocino y Cerveza",
			StepsEN: []string{
				"Fry bacon in a skillet till it’s crispier than a possum’s tail, about 5 minutes.",
				"Shape ground beef into patties and grill over medium heat for 6 minutes per side.",
				"Splash beer on the patties for a sizzle that’ll wake the neighbors, cook 1 minute.",
				"Top with bacon and cheese, let it melt like a summer sunset.",
				"Serve on buns with a holler and a cold one!",
			},
			Ingredients: []string{"ground beef", "bacon", "beer", "cheese"},
			Nutrition:   engine.Nutrition{Calories: 650, Protein: 40, Fat: 35},
			CookingTime: 15,
			Difficulty:  "easy",
		},
		{
			TitleEN: "Tequila Salmon Fiesta",
			TitleES: "Fiesta de Salmón al Tequila",
			StepsEN: []string{
				"Rub salmon with salt and grill over high heat for 5 minutes per side.",
				"Douse with a shot of tequila and let it flare up like a barn dance, 1 minute.",
				"Slice avocado and mash it with a fork, yellin’ for extra chaos.",
				"Flake salmon into tortillas, top with avocado mash and hot sauce.",
				"Serve with a rebel whoop and a tequila chaser!",
			},
			Ingredients: []string{"salmon", "tequila", "avocado", "tortilla"},
			Nutrition:   engine.Nutrition{Calories: 500, Protein: 32, Fat: 25},
			CookingTime: 12,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Vodka Veggie Chaos Pot",
			TitleES: "Olla Caótica de Verduras al Vodka",
			StepsEN: []string{
				"Boil broccoli and carrot in a pot until tender, about 10 minutes.",
				"Drain and toss with a splash of vodka for a kick that’ll scare the squirrels.",
				"Melt cheese over the veggies in the pot, stirring like you’re mixin’ moonshine.",
				"Season with pepper and serve hot with a side of cornbread.",
				"Holler loud enough to wake the whole holler!",
			},
			Ingredients: []string{"broccoli", "vodka", "carrot", "cheese"},
			Nutrition:   engine.Nutrition{Calories: 400, Protein: 15, Fat: 20},
			CookingTime: 15,
			Difficulty:  "easy",
		},
		{
			TitleEN: "Pork Whiskey BBQ Brawl",
			TitleES: "Cerdo a la Barbacoa con Whiskey",
			StepsEN: []string{
				"Grill pork chops over medium heat for 7 minutes per side.",
				"Brush with a mix of whiskey and mashed tomato, cook 2 minutes for a smoky kick.",
				"Slice pork and pile onto bread for sloppy, chaotic sandwiches.",
				"Sprinkle with hot sauce and serve with a backwoods bellow!",
				"Best with a jug of sweet tea or somethin’ stronger.",
			},
			Ingredients: []string{"pork", "whiskey", "tomato", "bread"},
			Nutrition:   engine.Nutrition{Calories: 550, Protein: 36, Fat: 28},
			CookingTime: 20,
			Difficulty:  "medium",
		},
		{
			TitleEN: "Rabbit and Lemon Moonshine Stew",
			TitleES: "Estofado de Conejo y Limón al Aguardiente",
			StepsEN: []string{
				"Brown rabbit pieces in a pot with oil for 10 minutes, singin’ a rebel tune.",
				"Add diced potato and a squeeze of lemon, cook for 5 minutes.",
				"Pour in a shot of moonshine and simmer for 15 minutes till it’s tender.",
				"Season with salt and serve with a side of cornbread and a loud whoop!",
				"This stew’s so good, it’ll make the possums jealous!",
			},
			Ingredients: []string{"rabbit", "lemon", "moonshine", "potato"},
			Nutrition:   engine.Nutrition{Calories: 470, Protein: 38, Fat: 18},
			CookingTime: 30,
			Difficulty:  "hard",
		},
	}
}
