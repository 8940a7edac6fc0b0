package services

var cars = []Car{
	{
		ID:       1,
		Name:     "Toyota Corolla",
		Type:     "Sedan",
		Price:    45,
		Seats:    5,
		Image:    "https://images.unsplash.com/photo-1623869675781-80aa31012a5a?w=600",
		Features: []string{"air conditioning", "automatic", "bluetooth"},
	},
	{
		ID:       2,
		Name:     "Toyota Land Cruiser",
		Type:     "SUV",
		Price:    120,
		Seats:    7,
		Image:    "https://images.unsplash.com/photo-1594502184342-2e12f877aa73?w=600",
		Features: []string{"4x4", "air conditioning", "roof rack"},
	},
	{
		ID:       3,
		Name:     "Hyundai H-1",
		Type:     "Van",
		Price:    95,
		Seats:    9,
		Image:    "https://images.unsplash.com/photo-1617469767053-d3b523a0b982?w=600",
		Features: []string{"air conditioning", "luggage space", "driver available"},
	},
	{
		ID:       4,
		Name:     "Suzuki Jimny",
		Type:     "Compact SUV",
		Price:    70,
		Seats:    4,
		Image:    "https://images.unsplash.com/photo-1606016159991-dfe4f2746ad5?w=600",
		Features: []string{"4x4", "manual", "compact"},
	},
}

var translators = []Translator{
	{ID: 1, Name: "Amélia Cossa", Languages: []string{"Portuguese", "English"}, Rating: 4.9, Price: 60, Available: true},
	{ID: 2, Name: "João Macamo", Languages: []string{"Portuguese", "English", "French"}, Rating: 4.7, Price: 75, Available: true},
	{ID: 3, Name: "Sara Mutola", Languages: []string{"Portuguese", "Changana", "English"}, Rating: 4.8, Price: 55, Available: false},
	{ID: 4, Name: "Carlos Tembe", Languages: []string{"Portuguese", "Spanish", "English"}, Rating: 4.5, Price: 65, Available: true},
}

var cityGuide = []CityGuideEntry{
	{
		ID:          1,
		Title:       "Mercado Central",
		Category:    "shopping",
		Description: "Historic central market with local produce, crafts and spices.",
		Image:       "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=600",
	},
	{
		ID:          2,
		Title:       "Fortaleza de Maputo",
		Category:    "history",
		Description: "Portuguese fort from the 18th century housing a small museum.",
		Image:       "https://images.unsplash.com/photo-1569959220744-ff553533f492?w=600",
	},
	{
		ID:          3,
		Title:       "Avenida Marginal",
		Category:    "leisure",
		Description: "Seaside avenue lined with restaurants and views over Maputo Bay.",
		Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=600",
	},
	{
		ID:          4,
		Title:       "Estação Central dos Caminhos de Ferro",
		Category:    "architecture",
		Description: "Landmark railway station often ranked among the most beautiful in the world.",
		Image:       "https://images.unsplash.com/photo-1474487548417-781cb71495f3?w=600",
	},
	{
		ID:          5,
		Title:       "Ilha de Inhaca",
		Category:    "nature",
		Description: "Day-trip island with coral reefs and a marine biology station.",
		Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=600",
	},
}
