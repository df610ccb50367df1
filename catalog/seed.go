package catalog

import "foodhub/models"

var seedRestaurants = []models.Restaurant{
	{
		ID:           "1",
		Name:         "Italian Bistro",
		Description:  "Authentic Italian cuisine with fresh pasta and wood-fired pizzas",
		Image:        "/images/restaurant1.jpg",
		DeliveryTime: "30-40 min",
		MinimumOrder: 15,
		Categories:   []string{"pizza", "pasta", "salads", "desserts"},
	},
	{
		ID:           "2",
		Name:         "Sushi Palace",
		Description:  "Fresh sushi and Japanese specialties made by expert chefs",
		Image:        "/images/restaurant2.jpg",
		DeliveryTime: "25-35 min",
		MinimumOrder: 20,
		Categories:   []string{"sushi", "ramen", "appetizers", "desserts"},
	},
	{
		ID:           "3",
		Name:         "Burger House",
		Description:  "Juicy burgers, crispy fries, and delicious milkshakes",
		Image:        "/images/restaurant3.jpg",
		DeliveryTime: "20-30 min",
		MinimumOrder: 10,
		Categories:   []string{"burgers", "sides", "drinks", "desserts"},
	},
	{
		ID:           "4",
		Name:         "Thai Spice",
		Description:  "Flavorful Thai dishes with authentic spices and herbs",
		Image:        "/images/restaurant4.jpg",
		DeliveryTime: "35-45 min",
		MinimumOrder: 18,
		Categories:   []string{"curries", "noodles", "rice", "appetizers"},
	},
	{
		ID:           "5",
		Name:         "Mexican Cantina",
		Description:  "Vibrant Mexican food with fresh ingredients and bold flavors",
		Image:        "/images/restaurant5.jpg",
		DeliveryTime: "30-40 min",
		MinimumOrder: 12,
		Categories:   []string{"tacos", "burritos", "sides", "desserts"},
	},
	{
		ID:           "6",
		Name:         "Chinese Dragon",
		Description:  "Traditional Chinese dishes with modern presentation",
		Image:        "/images/restaurant6.jpg",
		DeliveryTime: "25-35 min",
		MinimumOrder: 15,
		Categories:   []string{"mains", "rice", "noodles", "appetizers"},
	},
}

var seedMenuItems = []models.MenuItem{
	{ID: "m1", RestaurantID: "1", Name: "Margherita Pizza", Description: "Classic pizza with fresh mozzarella, tomato sauce, and basil", Price: 12.99, Image: "/images/item1.jpg", Category: "pizza"},
	{ID: "m2", RestaurantID: "1", Name: "Carbonara Pasta", Description: "Creamy pasta with bacon, eggs, and parmesan cheese", Price: 14.99, Image: "/images/item2.jpeg", Category: "pasta"},
	{ID: "m3", RestaurantID: "1", Name: "Caesar Salad", Description: "Crispy romaine lettuce with Caesar dressing and croutons", Price: 8.99, Image: "/images/item3.jpeg", Category: "salads"},
	{ID: "m4", RestaurantID: "1", Name: "Tiramisu", Description: "Classic Italian dessert with coffee-soaked ladyfingers", Price: 6.99, Image: "/images/item4.jpeg", Category: "desserts"},
	{ID: "m5", RestaurantID: "2", Name: "California Roll", Description: "Crab, avocado, and cucumber wrapped in seaweed and rice", Price: 9.99, Image: "/images/item5.jpeg", Category: "sushi"},
	{ID: "m6", RestaurantID: "2", Name: "Spicy Tuna Roll", Description: "Fresh tuna with spicy mayo and sesame seeds", Price: 11.99, Image: "/images/item6.jpeg", Category: "sushi"},
	{ID: "m7", RestaurantID: "2", Name: "Tonkotsu Ramen", Description: "Rich pork bone broth with noodles, egg, and chashu", Price: 13.99, Image: "/images/item7.jpeg", Category: "ramen"},
	{ID: "m8", RestaurantID: "2", Name: "Edamame", Description: "Steamed soybeans with sea salt", Price: 5.99, Image: "/images/item8.jpg", Category: "appetizers"},
	{ID: "m9", RestaurantID: "3", Name: "Classic Cheeseburger", Description: "Beef patty with cheese, lettuce, tomato, and special sauce", Price: 10.99, Image: "/images/item9.jpeg", Category: "burgers"},
	{ID: "m10", RestaurantID: "3", Name: "BBQ Bacon Burger", Description: "Beef patty with bacon, BBQ sauce, and onion rings", Price: 12.99, Image: "/images/item10.jpeg", Category: "burgers"},
	{ID: "m11", RestaurantID: "3", Name: "French Fries", Description: "Crispy golden fries with sea salt", Price: 4.99, Image: "/images/item11.jpeg", Category: "sides"},
	{ID: "m12", RestaurantID: "3", Name: "Chocolate Milkshake", Description: "Thick and creamy chocolate milkshake", Price: 5.99, Image: "/images/item12.jpeg", Category: "drinks"},
	{ID: "m13", RestaurantID: "4", Name: "Pad Thai", Description: "Stir-fried rice noodles with shrimp, peanuts, and lime", Price: 12.99, Image: "/images/item13.jpeg", Category: "noodles"},
	{ID: "m14", RestaurantID: "4", Name: "Green Curry", Description: "Coconut curry with vegetables and your choice of protein", Price: 13.99, Image: "/images/item14.jpeg", Category: "curries"},
	{ID: "m15", RestaurantID: "4", Name: "Thai Fried Rice", Description: "Jasmine rice stir-fried with vegetables and egg", Price: 10.99, Image: "/images/item15.jpeg", Category: "rice"},
	{ID: "m16", RestaurantID: "4", Name: "Spring Rolls", Description: "Fresh vegetables wrapped in rice paper with peanut sauce", Price: 6.99, Image: "/images/item16.jpeg", Category: "appetizers"},
	{ID: "m17", RestaurantID: "5", Name: "Beef Tacos", Description: "Three soft tacos with seasoned beef, salsa, and guacamole", Price: 11.99, Image: "/images/item17.jpeg", Category: "tacos"},
	{ID: "m18", RestaurantID: "5", Name: "Chicken Burrito", Description: "Large flour tortilla filled with chicken, rice, beans, and cheese", Price: 12.99, Image: "/images/item18.jpeg", Category: "burritos"},
	{ID: "m19", RestaurantID: "5", Name: "Nachos Supreme", Description: "Tortilla chips topped with cheese, jalapeños, and sour cream", Price: 8.99, Image: "/images/item19.jpeg", Category: "sides"},
	{ID: "m20", RestaurantID: "5", Name: "Churros", Description: "Fried dough pastry with cinnamon sugar and chocolate sauce", Price: 5.99, Image: "/images/item20.webp", Category: "desserts"},
	{ID: "m21", RestaurantID: "6", Name: "Kung Pao Chicken", Description: "Spicy stir-fried chicken with peanuts and vegetables", Price: 13.99, Image: "/images/item21.jpeg", Category: "mains"},
	{ID: "m22", RestaurantID: "6", Name: "Sweet and Sour Pork", Description: "Crispy pork with bell peppers in tangy sweet and sour sauce", Price: 14.99, Image: "/images/item22.jpeg", Category: "mains"},
	{ID: "m23", RestaurantID: "6", Name: "Chow Mein", Description: "Stir-fried noodles with vegetables and your choice of protein", Price: 11.99, Image: "/images/item23.jpg", Category: "noodles"},
	{ID: "m24", RestaurantID: "6", Name: "Dumplings", Description: "Steamed pork dumplings with soy dipping sauce", Price: 7.99, Image: "/images/item24.jpeg", Category: "appetizers"},
}
