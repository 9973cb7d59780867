package seed

type farmerSeed struct {
	Name, Location string
	Rating         float64
	Verified       bool
	ImageURL       string
	JoinedDate     string
}

type productSeed struct {
	Farmer                                  int
	Name, Description, Category, Price, Unit string
	Stock                                   int
	Organic                                 bool
	HarvestDate                             string
	Rating                                  float64
	Reviews                                 int
}

type supplySeed struct {
	Name, Description, Category, Price, Unit string
	Stock                                   int
	Rating                                  float64
	Reviews                                 int
}

func avatar(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?w=200&h=200&fit=crop&crop=face"
}

var farmers = []farmerSeed{
	{"Kinyarwanda Iki", "Gashora, Bugesera", 4.8, true, avatar("1507003211169-0a1dd7228f2d"), "2021-03-15"},
	{"Happy Hens Farm", "Nyamata, Bugesera", 4.6, true, avatar("1600880292203-757bb62b4baf"), "2022-01-10"},
	{"Urban Greens", "Kigali, Gasabo", 4.9, true, avatar("1531123897727-8f129e1688ce"), "2020-11-05"},
	{"Hilltop Harvest", "Huye, Tumba", 4.7, false, avatar("1595152452543-e5fc28ebc2b8"), "2023-05-20"},
	{"Ishema Farms", "Rubavu, Gisenyi", 4.5, true, avatar("1559839734-2b71ea197ec2"), "2022-08-14"},
	{"Ubumwe Dairy", "Musanze, Ruhengeri", 4.9, true, avatar("1472099645785-5658abf4ff4e"), "2019-04-01"},
	{"Imbere Grains", "Muhanga, Gitarama", 4.4, false, avatar("1560250097-0b93528c311a"), "2023-02-28"},
	{"Urugori Herbs", "Karongi, Kibuye", 4.8, true, avatar("1580489944761-15a19d654956"), "2021-09-12"},
	{"Amahoro Poultry", "Nyagatare, Gatsibo", 5.0, true, avatar("1607990281513-2c110a25bd8c"), "2020-06-30"},
	{"Ikizere Orchards", "Rusizi, Kamembe", 4.7, true, avatar("1519085360753-af0119f7cbe7"), "2022-11-22"},
}

var products = []productSeed{
	{0, "Heirloom Carrots", "Crunchy, sweet and colorful heirloom carrots harvested this morning.", "Vegetables", "3.50", "bunch", 50, true, "2023-10-25", 4.8, 124},
	{0, "Red Kale", "Fresh red kale for salads or chips.", "Vegetables", "2.75", "bunch", 30, true, "2023-10-26", 4.5, 45},
	{1, "Roma Tomatoes", "Vine-ripened Roma tomatoes.", "Vegetables", "4.00", "kg", 100, true, "2023-10-24", 4.7, 89},
	{1, "Sweet Corn", "Golden sweet corn picked at peak sweetness.", "Vegetables", "1.00", "ear", 200, false, "2023-10-25", 4.6, 32},
	{2, "Fuji Apples", "Crisp and sweet Fuji apples.", "Fruits", "5.50", "kg", 150, true, "2023-10-20", 4.9, 210},
	{2, "Bartlett Pears", "Juicy pears for snacking or baking.", "Fruits", "4.80", "kg", 80, true, "2023-10-22", 4.8, 56},
	{5, "Raw Milk Cheese", "Aged artisanal raw milk cheese.", "Dairy", "12.00", "block", 20, true, "2023-09-15", 4.9, 312},
	{5, "Fresh Cream", "Thick cream from grass-fed cows.", "Dairy", "6.00", "bottle", 15, true, "2023-10-26", 5.0, 88},
	{8, "Free Range Eggs", "Large brown eggs from pasture-raised hens.", "Dairy", "7.00", "dozen", 40, true, "2023-10-27", 4.8, 450},
	{4, "Wildflower Honey", "Raw, unfiltered honey with floral notes.", "Honey", "15.00", "jar", 25, true, "2023-08-10", 5.0, 120},
	{7, "Fresh Basil", "Aromatic basil, essential for pesto.", "Herbs", "3.00", "bunch", 20, true, "2023-10-27", 4.7, 30},
	{7, "Rosemary", "Woody rosemary sprigs.", "Herbs", "2.50", "bunch", 15, true, "2023-10-25", 4.6, 15},
	{6, "Rolled Oats", "Classic rolled oats.", "Grains", "4.00", "bag", 60, false, "2023-09-01", 4.5, 67},
	{6, "Whole Wheat Flour", "Stone-ground whole wheat flour.", "Grains", "5.00", "bag", 45, false, "2023-09-10", 4.4, 22},
	{3, "Potatoes (Russet)", "Russet potatoes, great for baking.", "Vegetables", "3.00", "kg", 300, false, "2023-10-15", 4.3, 90},
	{9, "Blueberries", "Plump late-season blueberries.", "Fruits", "6.00", "pint", 40, true, "2023-10-24", 4.9, 110},
	{9, "Peaches", "Juicy peaches with a soft fuzz.", "Fruits", "5.00", "kg", 25, true, "2023-10-23", 4.8, 75},
	{0, "Beets", "Earthy red beets, greens attached.", "Vegetables", "3.25", "bunch", 35, true, "2023-10-26", 4.6, 28},
	{1, "Cucumber", "Crunchy slicing cucumbers.", "Vegetables", "1.50", "each", 60, true, "2023-10-27", 4.5, 54},
	{4, "Honeycomb", "Pure honeycomb straight from the hive.", "Honey", "20.00", "box", 10, true, "2023-08-15", 5.0, 40},
}

var supplies = []supplySeed{
	{"Professional Gardening Trowel", "Stainless steel trowel with an ergonomic grip.", "Tools", "24.99", "piece", 150, 4.7, 89},
	{"Organic Tomato Seeds - Heirloom", "Non-GMO heirloom tomato seeds, 50 per pack.", "Seeds", "8.99", "pack", 200, 4.9, 156},
	{"Organic Compost Fertilizer", "Nutrient-rich compost blend for all plants.", "Fertilizers", "19.99", "25kg bag", 75, 4.6, 72},
	{"Drip Irrigation Kit", "Drip irrigation for up to 100 sq ft.", "Equipment", "89.99", "kit", 45, 4.8, 134},
	{"Pruning Shears - Professional Grade", "Corrosion-resistant shears for trees and shrubs.", "Tools", "34.99", "piece", 120, 4.7, 98},
	{"Organic Carrot Seeds", "Organic carrot seeds with high germination.", "Seeds", "6.99", "pack", 180, 4.8, 110},
	{"Liquid Seaweed Fertilizer", "Concentrated seaweed feed.", "Fertilizers", "29.99", "1L bottle", 60, 4.7, 64},
	{"Garden Rake - Heavy Duty", "Steel-tined rake for soil and leaves.", "Tools", "42.99", "piece", 90, 4.6, 51},
	{"Neem Oil Organic Pesticide", "Cold-pressed neem oil for pest control.", "Pesticides", "18.99", "500ml", 110, 4.5, 87},
	{"Greenhouse Starter Kit", "Compact greenhouse for seedlings.", "Equipment", "129.99", "kit", 30, 4.8, 42},
}
