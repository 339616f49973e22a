// ABOUTME: Static dish catalogs keyed by cuisine zone and diet tier.
// ABOUTME: Pure data; Meals in meals.go assembles them into per-slot pools.
package pools

// regionalDishes holds the vegetarian breakfast, lunch and dinner catalog of a zone.
type regionalDishes struct {
	Breakfast []string
	Lunch     []string
	Dinner    []string
}

var vegetarianByRegion = map[Region]regionalDishes{
	RegionNorth: {
		Breakfast: []string{
			"Besan chilla with mint chutney",
			"Vegetable poha with peanuts",
			"Paneer stuffed paratha with curd",
			"Dalia upma with vegetables",
			"Moong dal chilla with curd",
			"Sprouts chaat with whole wheat toast",
			"Oats porridge with nuts and seeds",
		},
		Lunch: []string{
			"Rajma with white rice and cucumber raita",
			"Chole with 2 rotis and onion salad",
			"Dal makhani with jeera rice",
			"Kadhi pakora with white rice",
			"Palak paneer with 2 rotis",
			"Mixed vegetable sabzi with dal and 2 rotis",
			"Lauki chana dal with white rice",
		},
		Dinner: []string{
			"Moong dal khichdi with curd",
			"Matar paneer with 2 rotis",
			"Lauki sabzi with dal and 1 roti",
			"Vegetable pulao with raita",
			"Baingan bharta with 2 rotis",
			"Tinda masala with moong dal and 1 roti",
			"Aloo gobi with dal and 1 roti",
		},
	},
	RegionSouth: {
		Breakfast: []string{
			"Idli with sambar and coconut chutney",
			"Ragi dosa with tomato chutney",
			"Pesarattu with ginger chutney",
			"Rava upma with vegetables",
			"Appam with vegetable stew",
			"Ven pongal with sambar",
			"Vegetable uttapam with chutney",
		},
		Lunch: []string{
			"Sambar with white rice and beans poriyal",
			"Rasam rice with cabbage thoran",
			"Avial with red rice",
			"Curd rice with carrot kosambari",
			"Bisi bele bath with raita",
			"Vegetable kootu with white rice",
			"Lemon rice with chana sundal",
		},
		Dinner: []string{
			"Ragi mudde with sambar",
			"Wheat dosa with vegetable kurma",
			"Idiyappam with vegetable stew",
			"Chapati with kadala curry",
			"Vegetable semiya upma",
			"Moong dal pongal with chutney",
			"Millet dosa with sambar",
		},
	},
	RegionWest: {
		Breakfast: []string{
			"Methi thepla with curd",
			"Sabudana khichdi with peanuts",
			"Kanda poha with lemon",
			"Khaman dhokla with green chutney",
			"Misal with 1 pav",
			"Handvo with mint chutney",
			"Methi muthia with tea",
		},
		Lunch: []string{
			"Gujarati dal with white rice and bhindi sabzi",
			"Varan bhaat with koshimbir",
			"Undhiyu with 2 rotlis",
			"Pithla bhakri with salad",
			"Dal dhokli with salad",
			"Sev tameta with 2 rotlis",
			"Kadhi khichdi with papad",
		},
		Dinner: []string{
			"Bajra rotla with baingan bharta",
			"Moong dal khichdi with kadhi",
			"Jowar bhakri with zunka",
			"Vegetable handvo with curd",
			"Matki usal with 2 chapatis",
			"Tuvar dal with 2 rotlis and cabbage sambharo",
			"Thalipeeth with curd",
		},
	},
	RegionEast: {
		Breakfast: []string{
			"Chirer pulao with peas",
			"Sattu paratha with curd",
			"Ragi chilla with tomato chutney",
			"Chana ghugni with 1 toast",
			"Suji upma with vegetables",
			"Vegetable daliya",
			"Litti with baingan chokha",
		},
		Lunch: []string{
			"Shukto with white rice and dal",
			"Dalma with white rice",
			"Cholar dal with 2 rotis and begun bhaja",
			"Aloo posto with white rice and masoor dal",
			"Dhokar dalna with white rice",
			"Chhena tarkari with white rice",
			"Mixed vegetable ghonto with white rice",
		},
		Dinner: []string{
			"Moong dal with 2 rotis and lau ghonto",
			"Khichuri with labra",
			"Paneer jhal with 2 rotis",
			"Potol curry with 2 rotis",
			"Vegetable dalia khichdi",
			"Santula with 2 rotis",
			"Kumro chhokka with 2 rotis",
		},
	},
	RegionCentral: {
		Breakfast: []string{
			"Indori poha with sev",
			"Bhutte ka kees",
			"Sabudana khichdi with curd",
			"Moong dal chilla with chutney",
			"Vegetable upma",
			"Besan chilla with curd",
			"Jowar dosa with chutney",
		},
		Lunch: []string{
			"Dal bafla with salad",
			"Chakki ki shaak with white rice",
			"Toor dal with jowar roti and bhindi",
			"Kadhi with white rice and aloo methi",
			"Rajma with 2 rotis",
			"Masoor dal with white rice and lauki",
			"Chana masala with 2 rotis",
		},
		Dinner: []string{
			"Jowar roti with baingan bharta",
			"Moong dal khichdi with curd",
			"Palak dal with 2 rotis",
			"Mixed vegetable curry with 2 rotis",
			"Sev tamatar with 2 rotis",
			"Paneer bhurji with 2 rotis",
			"Lauki chana dal with 1 roti",
		},
	},
	RegionNortheast: {
		Breakfast: []string{
			"Til pitha with tea",
			"Vegetable thukpa",
			"Sticky rice with black sesame",
			"Steamed vegetable momos with clear soup",
			"Poha with vegetables",
			"Boiled sweet potato with sprouted moong",
			"Rice pancake with vegetable stew",
		},
		Lunch: []string{
			"Khar with white rice and dal",
			"Eromba with white rice",
			"Bamboo shoot and vegetable curry with white rice",
			"Black rice with dal and leafy greens",
			"Aloo pitika with white rice and dal",
			"Chakhwi vegetable stew with white rice",
			"Vegetable thukpa with greens",
		},
		Dinner: []string{
			"Vegetable thenthuk",
			"Red rice with mustard greens and dal",
			"Galho vegetable rice porridge",
			"Steamed vegetable momos with soup",
			"Red rice with kidney bean curry and greens",
			"Red rice with pumpkin curry",
			"Vegetable stew with 1 roti",
		},
	},
}

// nonVegetarianByRegion replaces the lunch and dinner catalogs for meat eaters.
var nonVegetarianByRegion = map[Region]regionalDishes{
	RegionNorth: {
		Lunch: []string{
			"Chicken curry with 2 rotis and salad",
			"Egg curry with jeera rice",
			"Tandoori chicken with dal and 1 roti",
			"Keema matar with 2 rotis",
			"Baked amritsari fish with white rice and dal",
			"Chicken tikka with mint raita and 1 roti",
		},
		Dinner: []string{
			"Chicken stew with 2 rotis",
			"Egg bhurji with 2 rotis",
			"Grilled chicken with sautéed vegetables",
			"Fish curry with 1 roti",
			"Chicken saag with 2 rotis",
			"Mutton rogan josh with 1 roti",
		},
	},
	RegionSouth: {
		Lunch: []string{
			"Kerala fish curry with red rice",
			"Chicken chettinad with white rice",
			"Egg roast with appam",
			"Meen pollichathu with white rice",
			"Prawn moilee with white rice",
			"Chicken pepper fry with white rice and rasam",
		},
		Dinner: []string{
			"Fish molee with appam",
			"Chicken stew with idiyappam",
			"Egg curry with 2 chapatis",
			"Grilled fish with vegetable thoran",
			"Mutton sukka with 1 dosa",
			"Chicken curry with ragi mudde",
		},
	},
	RegionWest: {
		Lunch: []string{
			"Malvani chicken with white rice",
			"Goan fish curry with white rice",
			"Egg curry with 2 chapatis",
			"Chicken kolhapuri with bhakri",
			"Pan-seared bombil with dal and white rice",
			"Prawn curry with white rice",
		},
		Dinner: []string{
			"Chicken xacuti with 1 chapati",
			"Surmai tawa fry with salad",
			"Egg bhurji with 2 chapatis",
			"Chicken sukka with bhakri",
			"Grilled recheado fish with vegetables",
			"Mutton kheema with 1 chapati",
		},
	},
	RegionEast: {
		Lunch: []string{
			"Macher jhol with white rice",
			"Chicken kosha with white rice",
			"Doi maach with white rice",
			"Egg curry with white rice and dal",
			"Chingri malai curry with white rice",
			"Mutton curry with white rice",
		},
		Dinner: []string{
			"Fish curry with 2 rotis",
			"Chicken stew with 2 rotis",
			"Egg dalna with 2 rotis",
			"Bhapa fish with 1 roti",
			"Chicken curry with 1 roti and salad",
			"Fish paturi with sautéed vegetables",
		},
	},
	RegionCentral: {
		Lunch: []string{
			"Chicken curry with white rice",
			"Egg masala with 2 rotis",
			"Bhopali chicken rezala with white rice",
			"Fish curry with white rice",
			"Keema with 2 rotis",
			"Chicken do pyaza with 2 rotis",
		},
		Dinner: []string{
			"Grilled chicken with jowar roti",
			"Egg curry with 2 rotis",
			"Fish tikka with salad",
			"Chicken stew with 1 roti",
			"Mutton curry with 1 roti",
			"Egg bhurji with 2 rotis",
		},
	},
	RegionNortheast: {
		Lunch: []string{
			"Masor tenga with white rice",
			"Chicken with bamboo shoot and white rice",
			"Smoked pork with greens and red rice",
			"Fish with mustard greens and white rice",
			"Egg curry with red rice",
			"Chicken thukpa",
		},
		Dinner: []string{
			"Chicken thukpa",
			"Steamed fish with vegetables",
			"Egg fried rice with greens",
			"Chicken momos with soup",
			"Duck curry with red rice",
			"Fish tenga with white rice",
		},
	},
}

var eggBreakfasts = []string{
	"Masala omelette with 2 slices whole wheat toast",
	"Boiled eggs with vegetable poha",
	"Egg bhurji with 1 roti",
	"Egg dosa with chutney",
	"Egg paratha with curd",
	"Poached eggs with sautéed vegetables",
}

var eggMains = []string{
	"Egg curry with 2 rotis",
	"Egg biryani with raita",
	"Egg bhurji with dal and 1 roti",
	"Egg roast with white rice",
}

var coastalFish = []string{
	"Steamed pomfret with white rice and dal",
	"Fish curry with red rice",
	"Grilled mackerel with vegetable thoran",
	"Prawn curry with white rice",
	"Sardine fry with dal and 1 roti",
	"Fish moilee with appam",
	"Baked surmai with salad and 1 roti",
}

// Jain meals avoid root vegetables, onion and garlic.
var jainDishes = regionalDishes{
	Breakfast: []string{
		"Moong dal chilla with coriander chutney",
		"Jain poha with peas and peanuts",
		"Khakhra with curd",
		"Rava upma with capsicum and peas",
		"Besan chilla with tomato",
		"Dhokla with green chutney",
	},
	Lunch: []string{
		"Jain dal tadka with white rice and cabbage sabzi",
		"Gatte ki sabzi with 2 rotis",
		"Jain kadhi with white rice",
		"Paneer capsicum with 2 rotis",
		"Moong dal with white rice and bhindi",
		"Tuvar dal with 2 rotis and lauki",
	},
	Dinner: []string{
		"Moong dal khichdi with kadhi",
		"Methi thepla with curd",
		"Tinda sabzi with 2 rotis",
		"Jain pav bhaji with raw banana and 1 pav",
		"Paneer bhurji with 2 rotis",
		"Dal dhokli",
	},
}

// Sattvic meals are fresh, mildly spiced and free of onion and garlic.
var sattvicDishes = regionalDishes{
	Breakfast: []string{
		"Fruit bowl with soaked almonds",
		"Dalia porridge with milk and dates",
		"Vegetable upma with ghee",
		"Moong dal cheela with coconut chutney",
		"Sabudana khichdi",
		"Ragi porridge with jaggery",
	},
	Lunch: []string{
		"Moong dal with white rice and lauki sabzi",
		"Vegetable khichdi with ghee",
		"Yellow dal with 2 rotis and pumpkin sabzi",
		"Curd rice with steamed beans",
		"Tori sabzi with dal and 2 rotis",
		"Sambar with white rice and vegetable poriyal",
	},
	Dinner: []string{
		"Light moong dal soup with 1 roti",
		"Lauki curry with 1 roti",
		"Vegetable daliya khichdi",
		"Steamed vegetables with 1 roti and dal",
		"Pumpkin soup with 1 roti",
		"Moong dal khichdi with ghee",
	},
}

var ketoDishes = regionalDishes{
	Breakfast: []string{
		"Paneer bhurji with sautéed spinach",
		"Masala omelette with avocado",
		"Coconut flour chilla with chutney",
		"Greek yogurt with seeds and walnuts",
		"Tofu scramble with mushrooms",
		"Almond flour dosa with coconut chutney",
	},
	Lunch: []string{
		"Grilled paneer with cauliflower rice",
		"Palak paneer with cauliflower rice",
		"Butter chicken with sautéed vegetables",
		"Egg curry with zucchini noodles",
		"Tandoori tofu with green salad",
		"Fish tikka with cucumber salad",
	},
	Dinner: []string{
		"Paneer tikka with mint chutney and salad",
		"Chicken soup with vegetables",
		"Cauliflower and broccoli stir fry with tofu",
		"Mushroom masala with cauliflower rice",
		"Grilled fish with sautéed greens",
		"Egg bhurji with sautéed capsicum",
	},
}

// midMorningPairings accompany a fruit in the mid-morning snack slot.
var midMorningPairings = map[Tier][]string{
	TierVegetarian: {
		"a handful of soaked almonds",
		"a glass of buttermilk",
		"1 tbsp roasted seeds",
		"a small bowl of curd",
		"a glass of coconut water",
		"2 walnuts",
	},
	TierVegan: {
		"a handful of soaked almonds",
		"1 tbsp roasted seeds",
		"a glass of coconut water",
		"2 walnuts",
		"a small bowl of soy yogurt",
	},
	TierJain: {
		"a handful of soaked almonds",
		"a glass of buttermilk",
		"a small bowl of curd",
		"2 walnuts",
	},
	TierSattvic: {
		"a handful of soaked almonds",
		"2 dates",
		"a glass of coconut water",
		"a glass of warm milk",
	},
	TierKeto: {
		"a handful of macadamia nuts",
		"cheese cubes",
		"1 tbsp pumpkin seeds",
		"a glass of unsweetened almond milk",
	},
}

var eveningSnacks = map[Tier][]string{
	TierVegetarian: {
		"Roasted makhana",
		"Sprouts chaat",
		"Roasted chana",
		"Vegetable soup",
		"Steamed dhokla",
		"Paneer tikka (4 pieces)",
		"Masala buttermilk with khakhra",
		"Corn and peanut chaat",
	},
	TierEggitarian: {
		"Boiled egg chaat",
		"Roasted makhana",
		"Sprouts chaat",
		"Egg white omelette roll",
		"Vegetable soup",
		"Roasted chana",
	},
	TierVegan: {
		"Roasted makhana",
		"Sprouts chaat",
		"Roasted chana",
		"Vegetable soup",
		"Hummus with carrot sticks",
		"Peanut and corn chaat",
	},
	TierJain: {
		"Roasted makhana",
		"Khakhra with green chutney",
		"Puffed rice bhel without onion",
		"Fruit chaat",
		"Moong dal dhokla",
		"Roasted peanuts",
	},
	TierSattvic: {
		"Fresh fruit chaat",
		"Herbal tea with soaked nuts",
		"Roasted makhana with ghee",
		"Coconut water with dates",
		"Steamed sweet potato",
	},
	TierNonVegetarian: {
		"Boiled egg chaat",
		"Chicken clear soup",
		"Roasted chana",
		"Grilled chicken tikka (4 pieces)",
		"Sprouts chaat",
		"Roasted makhana",
	},
	TierPescatarian: {
		"Fish tikka (4 pieces)",
		"Roasted makhana",
		"Sprouts chaat",
		"Prawn clear soup",
		"Roasted chana",
	},
	TierKeto: {
		"Paneer cubes with pepper",
		"Boiled eggs",
		"Cucumber with cheese dip",
		"Roasted almonds",
		"Coconut chips",
	},
}

// Ingredients are building blocks appended to meals to form composites.
type Ingredients struct {
	Proteins   []string
	Vegetables []string
	Fruits     []string
}

var proteinsByTier = map[Tier][]string{
	TierVegetarian:    {"100 g paneer", "1 bowl dal", "1 cup sprouts", "1 bowl curd", "50 g soya chunks", "1 cup chana"},
	TierEggitarian:    {"2 boiled eggs", "100 g paneer", "1 bowl dal", "1 cup sprouts", "1 bowl curd"},
	TierVegan:         {"100 g tofu", "50 g soya chunks", "1 cup chana", "1 cup rajma", "100 g tempeh", "2 tbsp peanuts"},
	TierJain:          {"100 g paneer", "1 bowl moong dal", "1 bowl curd", "50 g soya chunks"},
	TierSattvic:       {"1 bowl moong dal", "1 glass milk", "100 g paneer", "1 bowl curd"},
	TierNonVegetarian: {"100 g grilled chicken", "2 boiled eggs", "100 g fish", "100 g paneer", "1 bowl dal"},
	TierPescatarian:   {"100 g grilled fish", "100 g prawns", "100 g paneer", "1 bowl dal"},
	TierKeto:          {"100 g paneer", "2 boiled eggs", "100 g grilled chicken", "100 g tofu"},
}

var vegetableSides = []string{
	"cucumber-tomato salad",
	"sautéed spinach",
	"steamed beans",
	"carrot and cabbage slaw",
	"grilled zucchini",
	"beetroot salad",
	"stir-fried broccoli",
}

// Jain sides leave out root vegetables.
var jainVegetableSides = []string{
	"cucumber-tomato salad",
	"steamed beans",
	"sautéed cabbage",
	"grilled zucchini",
	"stir-fried capsicum",
}

var fruits = []string{
	"1 apple",
	"1 guava",
	"a bowl of papaya",
	"1 orange",
	"1 pear",
	"a bowl of watermelon",
	"1 banana",
	"a bowl of pomegranate",
}

var ketoFruits = []string{
	"a few strawberries",
	"half an avocado",
	"a handful of blueberries",
	"a few raspberries",
}

// WholeGrains replace white rice for weight-loss plans, rotated per cycle.
var WholeGrains = []string{"brown rice", "red rice", "foxtail millet", "quinoa", "barnyard millet"}

var cheatMeals = map[Tier][]string{
	TierVegetarian: {
		"Two slices of thin-crust pizza",
		"A plate of pav bhaji",
		"Masala dosa with extra chutney",
		"One bhatura with chole",
		"Two gulab jamuns after dinner",
		"A small plate of pani puri",
		"A scoop of ice cream",
		"A plate of vegetable biryani",
	},
	TierVegan: {
		"Two slices of vegan pizza",
		"A small plate of pani puri",
		"A few squares of dark chocolate",
		"Masala dosa cooked in oil",
		"A plate of vegetable biryani",
	},
	TierJain: {
		"Two slices of Jain pizza",
		"Jain pav bhaji with raw banana",
		"Two pieces of rasmalai",
		"Khakhra chaat",
		"A scoop of ice cream",
	},
	TierNonVegetarian: {
		"A plate of chicken biryani",
		"Two slices of thin-crust pizza",
		"Butter chicken with 1 naan",
		"A plate of pav bhaji",
		"Two gulab jamuns after dinner",
		"A chicken kathi roll",
	},
	TierKeto: {
		"A slice of cheesecake",
		"Paneer butter masala with 1 naan",
		"Two squares of dark chocolate",
		"A small bowl of ice cream",
	},
}

var warmups = []string{
	"Marching in place for 2 minutes",
	"Arm circles, 30 seconds each direction",
	"Neck rolls, 10 each side",
	"Hip circles, 10 each side",
	"Leg swings, 10 each leg",
	"Torso twists for 1 minute",
	"Jumping jacks for 1 minute",
	"Cat-cow stretch, 10 reps",
}

var cooldowns = []string{
	"Child's pose for 30 seconds",
	"Standing hamstring stretch, 30 seconds each side",
	"Quadriceps stretch, 30 seconds each leg",
	"Chest opener stretch for 30 seconds",
	"Seated forward fold for 30 seconds",
	"Deep breathing for 2 minutes",
	"Shoulder stretch, 30 seconds each arm",
	"Supine spinal twist, 30 seconds each side",
}

// RestDayRecovery is the routine listed on rest days in place of a cooldown.
var RestDayRecovery = []string{
	"Easy walk for 20 to 30 minutes",
	"Gentle full-body stretching for 10 minutes",
	"Deep breathing or meditation for 5 minutes",
}
