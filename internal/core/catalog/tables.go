package catalog

const defaultASIN = "B08J4K9L2P"

// AffiliateTag is appended to every shopping link.
const AffiliateTag = "bshoemak-20"

// Default builds the full hand-authored catalog. Call once at startup.
func Default() *Catalog {
	c := &Catalog{
		order: []Category{Meat, Vegetables, Fruits, Seafood, Dairy, BreadCarbs, DevilWater},
		categories: map[Category][]string{
			Meat: {
				"chicken", "churrasco", "ground beef", "lamb", "pichana", "pork", "ribeye steaks",
			},
			Vegetables: {
				"broccoli", "carrot", "cauliflower", "collards", "green beans", "okra", "onion", "potato", "tomato",
			},
			Fruits: {
				"apple", "avocado", "banana", "carambola", "dragon fruit", "lemon", "mango", "orange", "starfruit",
			},
			Seafood: {
				"bass", "catfish", "conch", "crappie", "grouper", "lionfish", "lobster", "oysters", "red snapper", "salmon", "shrimp", "tuna", "yellowtail snapper",
			},
			Dairy: {
				"butter", "cheese", "eggs", "milk", "yogurt",
			},
			BreadCarbs: {
				"bread", "pasta", "rice", "tortilla",
			},
			DevilWater: {
				"beer", "moonshine", "tequila", "vodka", "whiskey",
			},
		},
		measurements: map[string]Measurement{
			"ground beef": {"1 lb", "ground"},
			"chicken":     {"1 lb", "cut into strips"},
			"pork":        {"1 lb", "cubed"},
			"pichana":     {"1 lb", "cubed"},
			"churrasco":   {"1 lb", "cubed"},
			"broccoli":    {"1 head", "florets"},
			"carrot":      {"2 medium", "sliced"},
			"potato":      {"2 medium", "sliced"},
			"green beans": {"1 cup", "trimmed"},
			"okra":        {"1 cup", "sliced"},
			"tomato":      {"2 medium", "diced"},
			"apple":       {"2 medium", "sliced"},
			"lemon":       {"1", "juiced"},
			"shrimp":      {"1 lb", "peeled"},
			"conch":       {"1 lb", "cleaned"},
			"cheese":      {"1 cup", "grated"},
			"bread":       {"4 slices", "toasted"},
			"tequila":     {"1/4 cup", ""},
			"beer":        {"1/4 cup", ""},
			"whiskey":     {"1/4 cup", ""},
			"moonshine":   {"1/4 cup", ""},
			"vodka":       {"1/4 cup", ""},
		},
		methods: map[Category][]string{
			Meat:       {"Grill", "Fry", "Bake", "Roast"},
			Vegetables: {"Roast", "Steam", "Sauté", "Grill"},
			Fruits:     {"Bake", "Simmer", "Grill"},
			Seafood:    {"Grill", "Bake", "Sauté"},
			Dairy:      {"Bake", "Melt"},
			BreadCarbs: {"Bake", "Toast"},
			DevilWater: {"Simmer", "Mix"},
		},
		preferences: map[string][]string{
			"tequila":     {"Grill"},
			"moonshine":   {"Fry"},
			"beer":        {"Simmer"},
			"churrasco":   {"Grill"},
			"pichana":     {"Roast"},
			"broccoli":    {"Roast", "Steam"},
			"carrot":      {"Roast", "Sauté"},
			"potato":      {"Roast", "Bake"},
			"green beans": {"Sauté", "Steam"},
			"lemon":       {"Simmer"},
			"conch":       {"Sauté"},
		},
		pairs: map[string][]string{
			"ground beef": {"onion", "cheese", "beer", "tomato"},
			"chicken":     {"lemon", "butter", "rice", "garlic"},
			"pork":        {"apple", "whiskey", "potato", "honey"},
			"pichana":     {"beer", "potato", "onion", "garlic"},
			"churrasco":   {"beer", "potato", "onion", "garlic"},
			"salmon":      {"lemon", "butter", "vodka", "dill"},
			"broccoli":    {"garlic", "lemon", "olive oil", "cheese"},
			"carrot":      {"butter", "honey", "thyme", "ginger"},
			"potato":      {"churrasco", "cheese", "beer", "butter"},
			"green beans": {"garlic", "butter", "lemon", "cheese"},
			"moonshine":   {"pork", "chicken", "apple", "peach"},
			"tequila":     {"shrimp", "avocado", "tomato", "lime"},
			"beer":        {"churrasco", "potato", "onion", "cheese"},
			"cheese":      {"broccoli", "pasta", "tomato", "bread"},
			"apple":       {"pork", "whiskey", "cinnamon", "butter"},
			"lemon":       {"shrimp", "chicken", "vodka", "garlic"},
			"conch":       {"lemon", "butter", "vodka", "garlic"},
		},
		undesirable: map[string]bool{
			"squirrel": true,
			"rabbit":   true,
			"quail":    true,
		},
		liquids: map[string]bool{
			"beer":      true,
			"moonshine": true,
			"tequila":   true,
			"vodka":     true,
			"whiskey":   true,
		},
		nutrition: map[Category]Nutrition{
			Meat:       {Calories: 250, Protein: 25, Fat: 15},
			Vegetables: {Calories: 50, Protein: 2, Fat: 0},
			Fruits:     {Calories: 60, Protein: 1, Fat: 0},
			Seafood:    {Calories: 200, Protein: 20, Fat: 10},
			Dairy:      {Calories: 100, Protein: 5, Fat: 8},
			BreadCarbs: {Calories: 150, Protein: 5, Fat: 2},
			DevilWater: {Calories: 80, Protein: 0, Fat: 0},
		},
		asins: map[string]string{
			"ground beef": "B08J4K9L2P",
			"chicken":     "B07Z8J9K7L",
			"pork":        "B09J8K9M2P",
			"pichana":     "B08J4K9L2P",
			"churrasco":   "B08J4K9L2P",
			"broccoli":    "B08X6J2N4P",
			"potato":      "B08X6J2N4P",
			"green beans": "B08X6J2N4P",
			"okra":        "B08X6J2N4P",
			"tomato":      "B08X6J2N4P",
			"lemon":       "B09K8J2N4P",
			"conch":       "B08J4K9L2P",
			"oil":         "B00N3W8W8W",
			"moonshine":   "B08J4K9L2P",
			"onion":       "B08J4K9L2P",
			"cheese":      "B07X6J2N4P",
			"beer":        "B08J4K9L2P",
			"whiskey":     "B08J4K9L2P",
			"tequila":     "B08J4K9L2P",
			"vodka":       "B08J4K9L2P",
		},
		prefixes: []string{"Redneck", "Drunk", "Hillbilly", "Bubba’s", "Sassy Granny’s", "Bootleg", "Yeehaw"},
		suffixes: []string{"Fry", "Hoedown", "Feast", "Supper", "Brawl"},
		extras:   []string{"1 tsp salt", "1/2 tsp black pepper", "1 tbsp olive oil", "1 tsp garlic powder", "1 tbsp lemon juice"},
		insults:  []string{"Tastier than roadkill!", "Even yer cousin’d eat it!", "Good enough for the barn!"},
		cookware: []string{"skillet", "baking sheet", "saucepan", "grill pan"},
		tools:    []string{"wooden spoon", "tongs", "spatula", "chef’s knife"},
		quirky:   []string{"busted spatula", "rusty tongs", "haunted whisk"},
		methodGear: map[string][]string{
			"Grill":  {"grill pan", "skillet"},
			"Fry":    {"skillet"},
			"Bake":   {"baking sheet"},
			"Roast":  {"baking sheet"},
			"Sauté":  {"skillet"},
			"Steam":  {"saucepan"},
			"Simmer": {"saucepan"},
			"Melt":   {"saucepan"},
			"Toast":  {"skillet"},
			"Mix":    {"wooden spoon"},
		},
		chaosTips: map[Category]map[string]string{
			Meat: {
				"ground beef": "Fry it till it sizzles like a barn dance!",
				"chicken":     "Grill it like you’re chasin’ a runaway hen!",
				"churrasco":   "Grill it till it hollers for mercy!",
				"pichana":     "Roast it till it sings like a country ballad!",
				"default":     "Grill it till the neighbors holler!",
			},
			Vegetables: {
				"broccoli":    "Roast it till it begs for mercy!",
				"carrot":      "Sauté like you’re stirrin’ up trouble!",
				"potato":      "Roast ‘em till they’re crisp as a banjo strum!",
				"green beans": "Sauté ‘em till they snap like a whip!",
				"default":     "Roast ‘em till they sing like a banjo!",
			},
			Fruits: {
				"apple":   "Bake it sweeter’n a moonshine pie!",
				"lemon":   "Squeeze it till it cries for mercy!",
				"default": "Bake ‘em sweeter’n a moonshine kiss!",
			},
			Seafood: {
				"shrimp":  "Sauté till they pop like firecrackers!",
				"conch":   "Sauté till it’s tender as a sea shanty!",
				"default": "Grill ‘em till they flop like a fish outta water!",
			},
			Dairy: {
				"cheese":  "Melt it smoother’n a country crooner!",
				"milk":    "Simmer it gentle-like, don’t let it curdle!",
				"default": "Melt it smoother’n a barnyard ballad!",
			},
			BreadCarbs: {
				"bread":   "Toast it crispier’n a tall tale!",
				"default": "Toast it crispier’n a campfire yarn!",
			},
			DevilWater: {
				"tequila":   "Splash it like you’re startin’ a bar fight!",
				"moonshine": "Simmer it sneakier’n a bootlegger’s stash!",
				"beer":      "Pour it like you’re toasting a hoedown!",
				"whiskey":   "Drizzle it like you’re courtin’ trouble!",
				"default":   "Mix it wilder’n a saloon brawl!",
			},
		},
		templates: map[Category][]Template{
			Meat: {
				{
					Prep:  "Prep: Season {ingredients} with {extra}—rub it like you mean it!",
					Cook:  "Cook: {method} in {equipment} over {heat} for {time}, flippin’ like a rodeo clown.",
					Serve: "Serve: Plate with a side of spuds or cornbread. {insult}",
				},
				{
					Prep:  "Prep: Slap {ingredients} on the board and work in {extra}—no half-hearted pattin’!",
					Cook:  "Cook: {method} in {equipment} over {heat} for {time}, turnin’ like you owe it money.",
					Serve: "Serve: Pile it high next to somethin’ starchy. {insult}",
				},
			},
			Vegetables: {
				{
					Prep:  "Prep: Preheat oven to 400°F (or medium-high skillet for sauté). Chop {ingredients} into bite-sized chunks—mind yer fingers!",
					Cook:  "Cook: {method} with {extra} in {equipment} over {heat} for {time}, tossin’ like a salad at a hoedown.",
					Serve: "Serve: Dish up with a sprinkle of herbs or a drizzle of lemon. {insult}",
				},
				{
					Prep:  "Prep: Rinse {ingredients} and hack ‘em into chunks—keep yer thumbs outta the way!",
					Cook:  "Cook: {method} with {extra} in {equipment} over {heat} for {time}, stirrin’ like you’re paddlin’ upstream.",
					Serve: "Serve: Heap onto plates with whatever green stuff’s left. {insult}",
				},
			},
			Fruits: {
				{
					Prep:  "Prep: Slice {ingredients}—don’t let ‘em roll away!",
					Cook:  "Cook: {method} with {extra} in {equipment} over {heat} for {time}, stirrin’ gentle-like.",
					Serve: "Serve: Serve warm with a dollop of yogurt or a splash of devil water. {insult}",
				},
			},
			Seafood: {
				{
					Prep:  "Prep: Clean {ingredients}—watch them fishy bits!",
					Cook:  "Cook: {method} with {extra} in {equipment} over {heat} for {time}, flippin’ careful-like.",
					Serve: "Serve: Plate with a wedge of lemon or a side of rice. {insult}",
				},
			},
			Dairy: {
				{
					Prep:  "Prep: Measure {ingredients}—don’t spill the milk!",
					Cook:  "Cook: {method} with {extra} in {equipment} over {heat} for {time}, stirrin’ smooth.",
					Serve: "Serve: Spread on bread or mix with carbs for a creamy delight. {insult}",
				},
			},
			BreadCarbs: {
				{
					Prep:  "Prep: Prep {ingredients}—slice or cook as needed.",
					Cook:  "Cook: {method} with {extra} in {equipment} over {heat} for {time}, toasty-like.",
					Serve: "Serve: Serve hot with butter or a heap of veggies. {insult}",
				},
			},
			DevilWater: {
				{
					Prep:  "Prep: Measure {ingredients}—don’t drink it yet!",
					Cook:  "Cook: {method} with {extra} in {equipment} over {heat} for {time}, mixin’ like a bar brawl.",
					Serve: "Serve: Sip with a side of grit or pour over dessert. {insult}",
				},
			},
		},
		styles: map[string]Style{
			"cajun":         {"Cajun", "Cajún", "1 tsp Cajun seasoning", "1 tsp paprika, 1/2 tsp cayenne"},
			"latin":         {"Latin", "Latino", "1 tsp cumin", "1 tsp chili powder, 1 tbsp chopped cilantro"},
			"asian":         {"Asian", "Asiático", "1 tbsp soy sauce", "1 tsp ginger, 1/2 tsp sesame seeds"},
			"mediterranean": {"Mediterranean", "Mediterráneo", "1 tsp oregano", "1 tsp thyme, 1 tbsp olive oil drizzle"},
			"indian":        {"Indian", "Indio", "1 tsp cumin seeds", "1 tsp garam masala, 1 tbsp coriander"},
			"french":        {"French", "Francés", "1 tsp butter", "1 tsp tarragon, 2 tbsp white wine"},
			"southern":      {"Southern", "Sureño", "1 tsp smoked paprika", "1 tsp garlic powder, pinch of cayenne"},
		},
	}

	c.byName = make(map[string]Category)
	for _, cat := range c.order {
		for _, name := range c.categories[cat] {
			c.byName[name] = cat
		}
	}

	return c
}
