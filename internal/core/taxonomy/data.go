package taxonomy

// 各類別的已知食材，建構時合併為一張查詢表

var proteins = []string{
	"chicken", "beef", "pork", "lamb", "turkey", "duck", "fish", "salmon", "tuna",
	"shrimp", "prawns", "crab", "lobster", "scallops", "mussels", "clams", "oysters",
	"bacon", "ham", "sausage", "ground beef", "ground turkey", "ground pork",
	"steak", "ribs", "chicken breast", "chicken thigh", "chicken wings",
	"tofu", "tempeh", "seitan", "eggs", "egg whites", "egg yolks",
	"anchovies", "sardines", "cod", "tilapia", "halibut", "trout", "mackerel",
	"venison", "bison", "rabbit", "quail", "goose", "chorizo", "pepperoni",
	"prosciutto", "pancetta", "salami", "hot dog", "meatballs", "ground chicken",
}

var vegetables = []string{
	"onion", "garlic", "tomato", "potato", "carrot", "celery", "bell pepper",
	"broccoli", "cauliflower", "spinach", "kale", "lettuce", "cabbage",
	"zucchini", "squash", "eggplant", "cucumber", "mushroom", "asparagus",
	"green beans", "peas", "corn", "artichoke", "leek", "shallot", "scallion",
	"green onion", "radish", "turnip", "beet", "parsnip", "sweet potato",
	"yam", "butternut squash", "acorn squash", "spaghetti squash", "pumpkin",
	"brussels sprouts", "bok choy", "swiss chard", "arugula", "watercress",
	"endive", "radicchio", "fennel", "okra", "jalapeno", "serrano", "habanero",
	"poblano", "anaheim", "chili", "red onion", "white onion", "yellow onion",
	"cherry tomato", "roma tomato", "sun-dried tomato", "tomatoes", "onions",
	"potatoes", "carrots", "peppers", "mushrooms", "garlic cloves",
}

var fruits = []string{
	"apple", "banana", "orange", "lemon", "lime", "grapefruit", "strawberry",
	"blueberry", "raspberry", "blackberry", "cranberry", "cherry", "grape",
	"peach", "plum", "apricot", "nectarine", "mango", "papaya", "pineapple",
	"coconut", "kiwi", "pomegranate", "fig", "date", "raisin", "prune",
	"watermelon", "cantaloupe", "honeydew", "avocado", "olive", "tomato",
	"pear", "persimmon", "guava", "passion fruit", "lychee", "dragon fruit",
	"starfruit", "tangerine", "clementine", "mandarin", "blood orange",
	"apples", "bananas", "oranges", "lemons", "limes", "berries", "grapes",
	"cherries", "peaches", "plums", "mangoes", "olives", "avocados",
}

var dairy = []string{
	"milk", "cream", "butter", "cheese", "yogurt", "sour cream", "cottage cheese",
	"cream cheese", "ricotta", "mozzarella", "cheddar", "parmesan", "feta",
	"gouda", "brie", "camembert", "blue cheese", "goat cheese", "swiss cheese",
	"provolone", "monterey jack", "pepper jack", "american cheese", "gruyere",
	"mascarpone", "half and half", "heavy cream", "whipping cream", "buttermilk",
	"evaporated milk", "condensed milk", "coconut milk", "almond milk", "soy milk",
	"oat milk", "ice cream", "gelato", "whipped cream", "ghee", "clarified butter",
}

var grains = []string{
	"rice", "pasta", "bread", "flour", "oats", "quinoa", "barley", "bulgur",
	"couscous", "farro", "millet", "buckwheat", "cornmeal", "polenta", "grits",
	"noodles", "spaghetti", "penne", "fettuccine", "linguine", "macaroni",
	"lasagna", "tortilla", "pita", "naan", "baguette", "sourdough", "rye",
	"whole wheat", "white rice", "brown rice", "jasmine rice", "basmati rice",
	"arborio rice", "wild rice", "risotto", "orzo", "gnocchi", "ravioli",
	"tortellini", "breadcrumbs", "panko", "croutons", "crackers", "chips",
	"cereal", "granola", "oatmeal", "cornstarch", "tapioca", "arrowroot",
}

var herbs = []string{
	"basil", "oregano", "thyme", "rosemary", "sage", "parsley", "cilantro",
	"dill", "mint", "chives", "tarragon", "marjoram", "bay leaf", "bay leaves",
	"lavender", "lemongrass", "curry leaves", "kaffir lime leaves", "epazote",
	"chervil", "savory", "sorrel", "lovage", "borage", "fresh basil",
	"fresh oregano", "fresh thyme", "fresh rosemary", "fresh parsley",
	"fresh cilantro", "fresh dill", "fresh mint", "dried basil", "dried oregano",
	"dried thyme", "dried rosemary", "dried parsley", "italian seasoning",
}

var spices = []string{
	"salt", "pepper", "black pepper", "white pepper", "paprika", "cayenne",
	"chili powder", "cumin", "coriander", "turmeric", "ginger", "cinnamon",
	"nutmeg", "cloves", "allspice", "cardamom", "star anise", "fennel seed",
	"mustard seed", "celery seed", "caraway", "anise", "saffron", "sumac",
	"za'atar", "ras el hanout", "garam masala", "curry powder", "five spice",
	"old bay", "cajun seasoning", "taco seasoning", "ranch seasoning",
	"garlic powder", "onion powder", "smoked paprika", "crushed red pepper",
	"red pepper flakes", "sesame seeds", "poppy seeds", "vanilla", "vanilla extract",
	"almond extract", "peppercorns", "sea salt", "kosher salt", "msg",
}

var oils = []string{
	"olive oil", "vegetable oil", "canola oil", "coconut oil", "sesame oil",
	"peanut oil", "sunflower oil", "corn oil", "grapeseed oil", "avocado oil",
	"walnut oil", "truffle oil", "chili oil", "garlic oil", "infused oil",
	"cooking spray", "shortening", "lard", "duck fat", "bacon fat", "schmaltz",
	"oil", "extra virgin olive oil", "light olive oil",
}

var condiments = []string{
	"ketchup", "mustard", "mayonnaise", "hot sauce", "soy sauce", "worcestershire",
	"fish sauce", "oyster sauce", "hoisin sauce", "teriyaki sauce", "bbq sauce",
	"sriracha", "tabasco", "salsa", "guacamole", "hummus", "tahini", "pesto",
	"marinara", "alfredo", "ranch dressing", "italian dressing", "vinaigrette",
	"balsamic vinegar", "red wine vinegar", "white wine vinegar", "apple cider vinegar",
	"rice vinegar", "sherry vinegar", "mirin", "sake", "cooking wine", "white wine",
	"red wine", "beer", "brandy", "rum", "whiskey", "vodka", "tequila",
	"dijon mustard", "honey mustard", "yellow mustard", "relish", "pickles",
	"capers", "anchovies", "miso", "gochujang", "sambal", "harissa", "chimichurri",
}

var sweeteners = []string{
	"sugar", "brown sugar", "powdered sugar", "honey", "maple syrup", "molasses",
	"agave", "stevia", "corn syrup", "golden syrup", "treacle", "coconut sugar",
	"palm sugar", "muscovado", "turbinado", "demerara", "confectioners sugar",
	"cane sugar", "raw sugar", "simple syrup", "caramel", "chocolate syrup",
}

var nutsSeeds = []string{
	"almond", "almonds", "walnut", "walnuts", "pecan", "pecans", "cashew", "cashews",
	"peanut", "peanuts", "pistachio", "pistachios", "hazelnut", "hazelnuts",
	"macadamia", "brazil nut", "pine nut", "pine nuts", "chestnut", "chestnuts",
	"sunflower seed", "sunflower seeds", "pumpkin seed", "pumpkin seeds",
	"sesame seed", "chia seed", "chia seeds", "flax seed", "flaxseed", "hemp seed",
	"peanut butter", "almond butter", "cashew butter", "tahini", "nutella",
}

var legumes = []string{
	"black beans", "kidney beans", "pinto beans", "navy beans", "cannellini beans",
	"great northern beans", "lima beans", "chickpeas", "garbanzo beans", "lentils",
	"split peas", "black-eyed peas", "edamame", "soybeans", "fava beans",
	"mung beans", "adzuki beans", "red beans", "white beans", "baked beans",
	"refried beans", "bean sprouts", "hummus",
}

var baking = []string{
	"flour", "all-purpose flour", "bread flour", "cake flour", "pastry flour",
	"whole wheat flour", "almond flour", "coconut flour", "self-rising flour",
	"baking powder", "baking soda", "yeast", "active dry yeast", "instant yeast",
	"cream of tartar", "gelatin", "pectin", "xanthan gum", "cocoa powder",
	"chocolate chips", "dark chocolate", "milk chocolate", "white chocolate",
	"unsweetened chocolate", "bittersweet chocolate", "semisweet chocolate",
	"food coloring", "sprinkles", "frosting", "fondant", "marzipan",
}

var canned = []string{
	"canned tomatoes", "tomato paste", "tomato sauce", "diced tomatoes",
	"crushed tomatoes", "tomato puree", "canned beans", "canned corn",
	"canned peas", "canned tuna", "canned salmon", "canned chicken",
	"coconut cream", "evaporated milk", "condensed milk", "stock", "broth",
	"chicken broth", "beef broth", "vegetable broth", "chicken stock",
	"beef stock", "vegetable stock", "bouillon", "consomme", "bone broth",
}

// cookingUnits 份量單位，正規化時會移除
var cookingUnits = []string{
	"cup", "cups", "tablespoon", "tablespoons", "tbsp", "teaspoon", "teaspoons",
	"tsp", "ounce", "ounces", "oz", "pound", "pounds", "lb", "lbs",
	"gram", "grams", "g", "kilogram", "kilograms", "kg", "ml", "milliliter",
	"milliliters", "liter", "liters", "l", "quart", "quarts", "qt", "pint",
	"pints", "pt", "gallon", "gallons", "gal", "pinch", "dash", "handful",
	"bunch", "sprig", "sprigs", "clove", "cloves", "slice", "slices",
	"piece", "pieces", "can", "cans", "jar", "jars", "package", "packages",
	"box", "boxes", "bag", "bags", "stick", "sticks", "head", "heads",
	"stalk", "stalks", "leaf", "leaves", "drop", "drops",
}

// cookingVerbs 烹飪動詞，連貫性檢查使用
var cookingVerbs = []string{
	"preheat", "heat", "warm", "boil", "simmer", "sauté", "saute", "fry",
	"deep fry", "pan fry", "stir fry", "bake", "roast", "broil", "grill",
	"barbecue", "smoke", "steam", "poach", "braise", "stew", "blanch",
	"reduce", "deglaze", "caramelize", "brown", "sear", "toast", "char",
	"mix", "stir", "whisk", "beat", "fold", "blend", "puree", "mash",
	"chop", "dice", "mince", "slice", "julienne", "cube", "shred", "grate",
	"peel", "core", "seed", "zest", "juice", "squeeze", "crush", "pound",
	"knead", "roll", "shape", "form", "spread", "layer", "stuff", "fill",
	"coat", "dredge", "bread", "batter", "marinate", "season", "rub",
	"drizzle", "pour", "add", "combine", "incorporate", "toss", "flip",
	"turn", "remove", "transfer", "drain", "strain", "cool", "chill",
	"refrigerate", "freeze", "thaw", "rest", "let", "allow", "set",
	"garnish", "serve", "plate", "top", "sprinkle", "finish", "enjoy",
	"taste", "adjust", "cover", "uncover", "wrap", "unwrap",
}

// endingVerbs 出現在收尾步驟的動詞
var endingVerbs = []string{"serve", "garnish", "enjoy", "plate", "top", "sprinkle", "finish"}

// startingVerbs 出現在開頭步驟的動詞
var startingVerbs = []string{"preheat", "heat", "prepare", "gather", "combine", "mix"}

// modifiers 正規化時移除的修飾詞
var modifiers = []string{
	"fresh", "dried", "chopped", "diced", "minced", "sliced",
	"grated", "shredded", "crushed", "ground", "whole", "large",
	"medium", "small", "thin", "thick", "cooked", "raw", "ripe",
	"unripe", "frozen", "canned", "packed", "loosely", "firmly",
	"about", "approximately", "optional", "to taste", "divided",
}

// abbreviations 常見縮寫展開表
var abbreviations = map[string]string{
	"tbsp": "tablespoon", "tbsps": "tablespoons", "tbs": "tablespoon", "tbl": "tablespoon",
	"tsp": "teaspoon", "tsps": "teaspoons",
	"c": "cup", "c.": "cup",
	"fl oz": "fluid ounce", "fl. oz.": "fluid ounce",
	"pt": "pint", "pts": "pints", "qt": "quart", "qts": "quarts",
	"gal": "gallon", "gals": "gallons",
	"ml": "milliliter", "mls": "milliliters", "l": "liter", "dl": "deciliter",
	"oz": "ounce", "ozs": "ounces", "lb": "pound", "lbs": "pounds",
	"g": "gram", "gr": "gram", "gm": "gram", "gms": "grams",
	"kg": "kilogram", "kgs": "kilograms",
	"sm": "small", "sml": "small", "med": "medium", "md": "medium",
	"lg": "large", "lrg": "large", "xl": "extra large",
	"pkg": "package", "pkgs": "packages", "pkt": "packet",
	"cn": "can", "cns": "cans", "btl": "bottle", "env": "envelope", "ct": "count",
	"chpd": "chopped", "dcd": "diced", "slcd": "sliced", "mcd": "minced",
	"crshd": "crushed", "grnd": "ground", "shrd": "shredded", "grtd": "grated",
	"drnd": "drained", "rns": "rinsed", "frsh": "fresh", "frz": "frozen",
	"thwd": "thawed", "cnd": "canned", "dryd": "dried", "rstd": "roasted",
	"tstd": "toasted", "sknd": "skinned", "bnls": "boneless", "sknls": "skinless",
	"evoo": "extra virgin olive oil", "oo": "olive oil",
	"veg": "vegetable", "vegs": "vegetables",
	"chx": "chicken", "chkn": "chicken", "bf": "beef", "prk": "pork",
	"pot": "potato", "pots": "potatoes", "tom": "tomato", "toms": "tomatoes",
	"mush": "mushroom", "mushs": "mushrooms", "mus": "mushroom",
	"parm": "parmesan", "parmsan": "parmesan", "mozz": "mozzarella",
	"mayo": "mayonnaise", "worcs": "worcestershire", "worc": "worcestershire",
	"approx": "approximately", "abt": "about", "ea": "each",
	"w/": "with", "w/o": "without", "opt": "optional", "temp": "temperature",
	"min": "minute", "mins": "minutes", "hr": "hour", "hrs": "hours",
	"sec": "second", "secs": "seconds", "deg": "degree",
	"f": "fahrenheit", "fahr": "fahrenheit",
}

// synonymPair 同義詞替換項，依序掃描以維持確定性
type synonymPair struct {
	From string
	To   string
}

// synonyms 英式與別名食材對應到標準寫法
var synonyms = []synonymPair{
	{"capsicum", "bell pepper"},
	{"aubergine", "eggplant"},
	{"courgette", "zucchini"},
	{"coriander leaves", "cilantro"},
	{"fresh coriander", "cilantro"},
	{"rocket", "arugula"},
	{"roquette", "arugula"},
	{"prawns", "shrimp"},
	{"king prawns", "large shrimp"},
	{"gammon", "ham"},
	{"rashers", "bacon slices"},
	{"streaky bacon", "bacon"},
	{"back bacon", "canadian bacon"},
	{"mince", "ground meat"},
	{"minced meat", "ground meat"},
	{"minced beef", "ground beef"},
	{"beef mince", "ground beef"},
	{"minced pork", "ground pork"},
	{"pork mince", "ground pork"},
	{"minced lamb", "ground lamb"},
	{"lamb mince", "ground lamb"},
	{"minced turkey", "ground turkey"},
	{"turkey mince", "ground turkey"},
	{"minced chicken", "ground chicken"},
	{"spring onion", "green onion"},
	{"spring onions", "green onions"},
	{"salad onion", "green onion"},
	{"scallion", "green onion"},
	{"scallions", "green onions"},
	{"shallots", "shallot"},
	{"caster sugar", "superfine sugar"},
	{"castor sugar", "superfine sugar"},
	{"icing sugar", "powdered sugar"},
	{"confectioner's sugar", "powdered sugar"},
	{"demerara sugar", "turbinado sugar"},
	{"muscovado sugar", "dark brown sugar"},
	{"golden syrup", "light corn syrup"},
	{"treacle", "molasses"},
	{"black treacle", "blackstrap molasses"},
	{"bicarbonate of soda", "baking soda"},
	{"bicarb", "baking soda"},
	{"bread soda", "baking soda"},
	{"plain flour", "all-purpose flour"},
	{"strong flour", "bread flour"},
	{"strong bread flour", "bread flour"},
	{"self-raising flour", "self-rising flour"},
	{"wholemeal flour", "whole wheat flour"},
	{"cornflour", "cornstarch"},
	{"maize flour", "corn flour"},
	{"polenta", "cornmeal"},
	{"double cream", "heavy cream"},
	{"single cream", "light cream"},
	{"whipping cream", "heavy whipping cream"},
	{"clotted cream", "heavy cream"},
	{"soured cream", "sour cream"},
	{"natural yoghurt", "plain yogurt"},
	{"greek style yogurt", "greek yogurt"},
	{"creme fraiche", "sour cream"},
	{"fromage frais", "cream cheese"},
	{"full fat milk", "whole milk"},
	{"semi-skimmed milk", "2% milk"},
	{"skimmed milk", "skim milk"},
	{"coriander", "cilantro"},
	{"chinese parsley", "cilantro"},
	{"flat-leaf parsley", "italian parsley"},
	{"cos lettuce", "romaine lettuce"},
	{"pak choi", "bok choy"},
	{"chinese cabbage", "napa cabbage"},
	{"chinese leaves", "napa cabbage"},
	{"mangetout", "snow peas"},
	{"mange tout", "snow peas"},
	{"sugar snap peas", "snap peas"},
	{"french beans", "green beans"},
	{"haricot beans", "navy beans"},
	{"haricots verts", "french green beans"},
	{"runner beans", "green beans"},
	{"broad beans", "fava beans"},
	{"butter beans", "lima beans"},
	{"chickpea", "garbanzo bean"},
	{"chick pea", "garbanzo bean"},
	{"besan", "chickpea flour"},
	{"swede", "rutabaga"},
	{"beetroot", "beet"},
	{"celeriac", "celery root"},
	{"salsify", "oyster plant"},
	{"marrow", "large zucchini"},
	{"gem squash", "acorn squash"},
	{"butternut pumpkin", "butternut squash"},
	{"sweet corn", "corn"},
	{"baby sweetcorn", "baby corn"},
	{"tinned tomatoes", "canned tomatoes"},
	{"passata", "tomato puree"},
	{"sun-dried tomatoes", "sun dried tomatoes"},
	{"sundried tomatoes", "sun dried tomatoes"},
	{"cherry toms", "cherry tomatoes"},
	{"plum tomatoes", "roma tomatoes"},
	{"king prawn", "jumbo shrimp"},
	{"tiger prawn", "large shrimp"},
	{"langoustine", "lobster tail"},
	{"crayfish", "crawfish"},
	{"calamari", "squid"},
	{"white fish", "cod"},
	{"oily fish", "salmon"},
	{"smoked haddock", "smoked fish"},
	{"finnan haddie", "smoked haddock"},
	{"gammon steak", "ham steak"},
	{"pork belly slices", "pork belly"},
	{"silverside", "bottom round"},
	{"topside", "top round"},
	{"braising steak", "chuck roast"},
	{"stewing beef", "beef stew meat"},
	{"frying steak", "sirloin steak"},
	{"escalope", "cutlet"},
	{"escalopes", "cutlets"},
	{"mature cheddar", "sharp cheddar"},
	{"red leicester", "colby cheese"},
	{"lancashire", "white cheddar"},
	{"stilton", "blue cheese"},
	{"dolcelatte", "gorgonzola"},
	{"gruyère", "gruyere"},
	{"emmenthal", "swiss cheese"},
	{"emmental", "swiss cheese"},
	{"edam", "gouda"},
	{"halloumi", "grilling cheese"},
	{"paneer", "indian cottage cheese"},
	{"quark", "fromage blanc"},
	{"groundnut oil", "peanut oil"},
	{"rapeseed oil", "canola oil"},
	{"vegetable suet", "shortening"},
	{"lard", "pork fat"},
	{"dripping", "beef fat"},
	{"brown sauce", "steak sauce"},
	{"hp sauce", "steak sauce"},
	{"salad cream", "mayonnaise"},
	{"tomato ketchup", "ketchup"},
	{"tomato sauce", "ketchup"},
	{"english mustard", "hot mustard"},
	{"french mustard", "dijon mustard"},
	{"wholegrain mustard", "whole grain mustard"},
	{"piccalilli", "mustard pickle"},
	{"branston pickle", "sweet pickle relish"},
	{"mango chutney", "indian mango chutney"},
	{"soya sauce", "soy sauce"},
	{"light soy", "light soy sauce"},
	{"dark soy", "dark soy sauce"},
	{"rice wine", "shaoxing wine"},
	{"chinese rice wine", "shaoxing wine"},
	{"nam pla", "fish sauce"},
	{"nuoc mam", "fish sauce"},
	{"galangal", "thai ginger"},
	{"kaffir lime", "makrut lime"},
	{"thai basil", "asian basil"},
	{"holy basil", "tulsi"},
	{"bird's eye chili", "thai chili"},
	{"birds eye chilli", "thai chili"},
	{"red chilli", "red chili"},
	{"green chilli", "green chili"},
	{"chilli flakes", "red pepper flakes"},
	{"chilli powder", "chili powder"},
	{"garam masala", "indian spice blend"},
	{"chinese five-spice", "five spice powder"},
	{"five spice", "five spice powder"},
	{"digestive biscuits", "graham crackers"},
	{"biscuits", "cookies"},
	{"savoury biscuits", "crackers"},
	{"sponge fingers", "ladyfingers"},
	{"hundreds and thousands", "sprinkles"},
	{"desiccated coconut", "shredded coconut"},
	{"glacé cherries", "candied cherries"},
	{"candied peel", "mixed peel"},
	{"mixed spice", "pumpkin pie spice"},
	{"vanilla essence", "vanilla extract"},
	{"almond essence", "almond extract"},
	{"lemon essence", "lemon extract"},
	{"rose water", "rosewater"},
	{"orange blossom water", "orange flower water"},
	{"ground almonds", "almond flour"},
	{"flaked almonds", "sliced almonds"},
	{"nibbed almonds", "chopped almonds"},
	{"monkey nuts", "peanuts in shell"},
	{"pine kernels", "pine nuts"},
	{"macaroni cheese", "mac and cheese"},
	{"vermicelli", "angel hair pasta"},
	{"tagliatelle", "fettuccine"},
	{"pappardelle", "wide egg noodles"},
	{"conchiglie", "shell pasta"},
	{"farfalle", "bow tie pasta"},
	{"rigatoni", "tube pasta"},
	{"penne rigate", "penne"},
	{"wholemeal pasta", "whole wheat pasta"},
	{"egg noodle", "egg noodles"},
	{"rice stick", "rice noodles"},
	{"cellophane noodle", "glass noodles"},
	{"bean thread noodles", "glass noodles"},
	{"fizzy water", "sparkling water"},
	{"soda water", "club soda"},
	{"lemonade", "lemon soda"},
	{"cordial", "fruit syrup"},
}
