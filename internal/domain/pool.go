package domain

// seedPool is the fixed auction pool every room starts from. Order matters:
// the flow controller auctions players in pool sequence, grouped into sets
// for the "upcoming players" view. Base prices are in lakhs.
var seedPool = []Player{
	// Set 1 - marquee batsmen
	{ID: 1, Name: "Virat Kohli", Role: RoleBatsman, Country: "India", BasePrice: 200, Age: 36, BattingHand: "Right", BowlingStyle: "Right-arm medium", SetNo: 1, Potential: 94},
	{ID: 2, Name: "Rohit Sharma", Role: RoleBatsman, Country: "India", BasePrice: 200, Age: 38, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 1, Potential: 91},
	{ID: 3, Name: "David Warner", Role: RoleBatsman, Country: "Australia", BasePrice: 200, Age: 38, BattingHand: "Left", BowlingStyle: "Leg-spin", SetNo: 1, Potential: 87},
	{ID: 4, Name: "Kane Williamson", Role: RoleBatsman, Country: "New Zealand", BasePrice: 150, Age: 34, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 1, Potential: 85},
	{ID: 5, Name: "Shubman Gill", Role: RoleBatsman, Country: "India", BasePrice: 150, Age: 25, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 1, Potential: 90},
	{ID: 6, Name: "Babar Azam", Role: RoleBatsman, Country: "Pakistan", BasePrice: 150, Age: 30, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 1, Potential: 88},

	// Set 2 - premium bowlers
	{ID: 7, Name: "Jasprit Bumrah", Role: RoleBowler, Country: "India", BasePrice: 200, Age: 31, BattingHand: "Right", BowlingStyle: "Right-arm fast", SetNo: 2, Potential: 95},
	{ID: 8, Name: "Mitchell Starc", Role: RoleBowler, Country: "Australia", BasePrice: 200, Age: 35, BattingHand: "Left", BowlingStyle: "Left-arm fast", SetNo: 2, Potential: 88},
	{ID: 9, Name: "Rashid Khan", Role: RoleBowler, Country: "Afghanistan", BasePrice: 150, Age: 26, BattingHand: "Right", BowlingStyle: "Leg-spin", SetNo: 2, Potential: 92},
	{ID: 10, Name: "Trent Boult", Role: RoleBowler, Country: "New Zealand", BasePrice: 150, Age: 35, BattingHand: "Right", BowlingStyle: "Left-arm fast-medium", SetNo: 2, Potential: 84},
	{ID: 11, Name: "Mohammed Shami", Role: RoleBowler, Country: "India", BasePrice: 150, Age: 34, BattingHand: "Right", BowlingStyle: "Right-arm fast-medium", SetNo: 2, Potential: 86},
	{ID: 12, Name: "Yuzvendra Chahal", Role: RoleBowler, Country: "India", BasePrice: 100, Age: 34, BattingHand: "Right", BowlingStyle: "Leg-spin", SetNo: 2, Potential: 82},

	// Set 3 - all-rounders
	{ID: 13, Name: "Hardik Pandya", Role: RoleAllRounder, Country: "India", BasePrice: 200, Age: 31, BattingHand: "Right", BowlingStyle: "Right-arm fast-medium", SetNo: 3, Potential: 89},
	{ID: 14, Name: "Ravindra Jadeja", Role: RoleAllRounder, Country: "India", BasePrice: 200, Age: 36, BattingHand: "Left", BowlingStyle: "Left-arm orthodox", SetNo: 3, Potential: 88},
	{ID: 15, Name: "Ben Stokes", Role: RoleAllRounder, Country: "England", BasePrice: 200, Age: 33, BattingHand: "Left", BowlingStyle: "Right-arm fast-medium", SetNo: 3, Potential: 86},
	{ID: 16, Name: "Glenn Maxwell", Role: RoleAllRounder, Country: "Australia", BasePrice: 150, Age: 36, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 3, Potential: 83},
	{ID: 17, Name: "Andre Russell", Role: RoleAllRounder, Country: "West Indies", BasePrice: 150, Age: 37, BattingHand: "Right", BowlingStyle: "Right-arm fast", SetNo: 3, Potential: 85},
	{ID: 18, Name: "Axar Patel", Role: RoleAllRounder, Country: "India", BasePrice: 100, Age: 31, BattingHand: "Left", BowlingStyle: "Left-arm orthodox", SetNo: 3, Potential: 84},
	{ID: 19, Name: "Sam Curran", Role: RoleAllRounder, Country: "England", BasePrice: 100, Age: 26, BattingHand: "Left", BowlingStyle: "Left-arm medium-fast", SetNo: 3, Potential: 81},

	// Set 4 - wicket-keepers
	{ID: 20, Name: "MS Dhoni", Role: RoleWicketKeeper, Country: "India", BasePrice: 200, Age: 43, BattingHand: "Right", BowlingStyle: "Right-arm medium", SetNo: 4, Potential: 84},
	{ID: 21, Name: "Rishabh Pant", Role: RoleWicketKeeper, Country: "India", BasePrice: 200, Age: 27, BattingHand: "Left", BowlingStyle: "", SetNo: 4, Potential: 90},
	{ID: 22, Name: "Jos Buttler", Role: RoleWicketKeeper, Country: "England", BasePrice: 150, Age: 34, BattingHand: "Right", BowlingStyle: "", SetNo: 4, Potential: 89},
	{ID: 23, Name: "Quinton de Kock", Role: RoleWicketKeeper, Country: "South Africa", BasePrice: 150, Age: 32, BattingHand: "Left", BowlingStyle: "", SetNo: 4, Potential: 84},
	{ID: 24, Name: "Sanju Samson", Role: RoleWicketKeeper, Country: "India", BasePrice: 100, Age: 30, BattingHand: "Right", BowlingStyle: "", SetNo: 4, Potential: 83},
	{ID: 25, Name: "Ishan Kishan", Role: RoleWicketKeeper, Country: "India", BasePrice: 100, Age: 26, BattingHand: "Left", BowlingStyle: "", SetNo: 4, Potential: 82},

	// Set 5 - middle-order batsmen
	{ID: 26, Name: "Suryakumar Yadav", Role: RoleBatsman, Country: "India", BasePrice: 150, Age: 34, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 5, Potential: 91},
	{ID: 27, Name: "Shreyas Iyer", Role: RoleBatsman, Country: "India", BasePrice: 100, Age: 30, BattingHand: "Right", BowlingStyle: "Leg-spin", SetNo: 5, Potential: 84},
	{ID: 28, Name: "Yashasvi Jaiswal", Role: RoleBatsman, Country: "India", BasePrice: 100, Age: 23, BattingHand: "Left", BowlingStyle: "Leg-spin", SetNo: 5, Potential: 88},
	{ID: 29, Name: "Tim David", Role: RoleBatsman, Country: "Australia", BasePrice: 75, Age: 29, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 5, Potential: 78},
	{ID: 30, Name: "Rinku Singh", Role: RoleBatsman, Country: "India", BasePrice: 75, Age: 27, BattingHand: "Left", BowlingStyle: "Right-arm off-spin", SetNo: 5, Potential: 81},
	{ID: 31, Name: "Heinrich Klaasen", Role: RoleWicketKeeper, Country: "South Africa", BasePrice: 100, Age: 33, BattingHand: "Right", BowlingStyle: "", SetNo: 5, Potential: 86},

	// Set 6 - pace battery
	{ID: 32, Name: "Mohammed Siraj", Role: RoleBowler, Country: "India", BasePrice: 100, Age: 31, BattingHand: "Right", BowlingStyle: "Right-arm fast", SetNo: 6, Potential: 85},
	{ID: 33, Name: "Kagiso Rabada", Role: RoleBowler, Country: "South Africa", BasePrice: 100, Age: 29, BattingHand: "Left", BowlingStyle: "Right-arm fast", SetNo: 6, Potential: 87},
	{ID: 34, Name: "Jofra Archer", Role: RoleBowler, Country: "England", BasePrice: 100, Age: 30, BattingHand: "Right", BowlingStyle: "Right-arm fast", SetNo: 6, Potential: 84},
	{ID: 35, Name: "Arshdeep Singh", Role: RoleBowler, Country: "India", BasePrice: 75, Age: 26, BattingHand: "Left", BowlingStyle: "Left-arm fast-medium", SetNo: 6, Potential: 82},
	{ID: 36, Name: "T Natarajan", Role: RoleBowler, Country: "India", BasePrice: 50, Age: 33, BattingHand: "Left", BowlingStyle: "Left-arm fast-medium", SetNo: 6, Potential: 77},
	{ID: 37, Name: "Anrich Nortje", Role: RoleBowler, Country: "South Africa", BasePrice: 75, Age: 31, BattingHand: "Right", BowlingStyle: "Right-arm fast", SetNo: 6, Potential: 80},

	// Set 7 - spin options
	{ID: 38, Name: "Kuldeep Yadav", Role: RoleBowler, Country: "India", BasePrice: 75, Age: 30, BattingHand: "Left", BowlingStyle: "Left-arm wrist-spin", SetNo: 7, Potential: 84},
	{ID: 39, Name: "Ravichandran Ashwin", Role: RoleAllRounder, Country: "India", BasePrice: 100, Age: 38, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 7, Potential: 81},
	{ID: 40, Name: "Adam Zampa", Role: RoleBowler, Country: "Australia", BasePrice: 50, Age: 33, BattingHand: "Right", BowlingStyle: "Leg-spin", SetNo: 7, Potential: 78},
	{ID: 41, Name: "Wanindu Hasaranga", Role: RoleAllRounder, Country: "Sri Lanka", BasePrice: 75, Age: 27, BattingHand: "Right", BowlingStyle: "Leg-spin", SetNo: 7, Potential: 80},

	// Set 8 - uncapped and finishers
	{ID: 42, Name: "Tilak Varma", Role: RoleBatsman, Country: "India", BasePrice: 50, Age: 22, BattingHand: "Left", BowlingStyle: "Right-arm off-spin", SetNo: 8, Potential: 83},
	{ID: 43, Name: "Abhishek Sharma", Role: RoleAllRounder, Country: "India", BasePrice: 50, Age: 24, BattingHand: "Left", BowlingStyle: "Left-arm orthodox", SetNo: 8, Potential: 82},
	{ID: 44, Name: "Dhruv Jurel", Role: RoleWicketKeeper, Country: "India", BasePrice: 30, Age: 24, BattingHand: "Right", BowlingStyle: "", SetNo: 8, Potential: 79},
	{ID: 45, Name: "Nitish Kumar Reddy", Role: RoleAllRounder, Country: "India", BasePrice: 30, Age: 21, BattingHand: "Right", BowlingStyle: "Right-arm medium", SetNo: 8, Potential: 80},
	{ID: 46, Name: "Shahrukh Khan", Role: RoleBatsman, Country: "India", BasePrice: 30, Age: 29, BattingHand: "Right", BowlingStyle: "Right-arm off-spin", SetNo: 8, Potential: 74},
	{ID: 47, Name: "Umran Malik", Role: RoleBowler, Country: "India", BasePrice: 30, Age: 25, BattingHand: "Right", BowlingStyle: "Right-arm fast", SetNo: 8, Potential: 76},
	{ID: 48, Name: "Riyan Parag", Role: RoleAllRounder, Country: "India", BasePrice: 30, Age: 23, BattingHand: "Right", BowlingStyle: "Leg-spin", SetNo: 8, Potential: 78},
}

// NewPool returns a fresh copy of the seed pool for a new room. Each room
// mutates its own copy as players are sold.
func NewPool() []*Player {
	pool := make([]*Player, len(seedPool))
	for i := range seedPool {
		p := seedPool[i]
		p.Status = PlayerStatusPending
		pool[i] = &p
	}
	return pool
}
