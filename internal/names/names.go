// Package names generates player names and nicknames from fixed pools.
package names

import (
	"fmt"

	"github.com/gkha/league/internal/dice"
)

// Chauncey repeats so drafts see him more often than anyone else
var firstNames = []string{
	"Alex", "Blake", "Callum", "Drew", "Elliot", "Finn", "Gray",
	"Harry", "Ian", "Jordan", "Kyle", "Logan", "Matthew", "Noah",
	"Owen", "Parker", "Quinn", "Riley", "Sam", "Tyler", "Uri",
	"Vince", "West", "Xavier", "John", "Zeke", "Ash", "Bryan",
	"Charlie", "Dante", "Eli", "Felix", "Glen", "Hunter",
	"Chauncey", "Chauncey", "Chauncey", "Chauncey", "Chauncey",
	"Jared", "Josh", "Jameson", "Matt", "David", "Mike", "Joe",
	"Pat", "Chase", "Ed", "Bryce", "Rico", "Jalen",
	"Mitchell", "Jimmy", "Jim", "Johnathon", "Chris", "Collin",
	"Andrew", "Andy", "Michael", "Shawn", "Jon", "Jo",
	"AJ", "DJ", "CJ", "BJ", "EJ", "JJ", "OJ", "PJ", "RJ", "TJ",
	"Bam", "Derek", "Bobby", "Bob", "Corey", "Cory", "Nick",
	"Nicholas", "Thomas", "Tom", "Trevor", "Dylan", "Ben",
	"Benny", "Victor", "Luke", "Lucas", "Elijah",
	"Ryan", "Christian", "Joseph", "Evan", "Ivan", "Travis",
	"Donald", "Brock", "Brian", "Dakota", "George", "Christos",
	"Rick", "Richie", "Ricky", "Colton", "Baker", "Juan",
	"Teddy", "Cade", "Sean", "Cam", "Greg", "Chadd",
	"Colby", "Kyren", "Coby", "Troy", "Jaylen", "Jayden", "Omar",
	"Joshua", "Stu", "Albi", "Kirk", "Eric", "Erik", "Jessie",
	"Brandon", "Brendan", "Jacob", "Connor", "Zack", "Zachary",
	"Ronnie", "Arnold", "Artie", "Mason", "Nathan", "Nate",
	"Marco", "JT", "Simon", "Justin", "Albert", "Moritz",
	"Amadeo", "Adam", "Kent", "Abe", "Isaac", "Tim", "Cole",
	"Timothy", "Dmitri", "Jake", "Damon", "Jet", "Oscar",
	"Matthieu", "Phil", "Mac", "Joel", "Marc",
	"Gabe", "Bo", "Emil", "Tony", "Scott", "Marcus", "Ilya",
	"Max", "Austin", "Auston", "Nico", "Mattias", "Easton",
	"Oliver", "Shooter", "Gunner", "Guy", "Scottie", "Kirby",
	"Kaiden", "Leon", "King", "Ty", "Cal", "Aaron",
	"Sergei", "Wayne", "Ozzy", "Luca", "Elio", "Matteo",
	"Vlad", "Andrei", "Oleg", "Alexei", "Henri", "Arthur",
}

var lastNames = []string{
	"Anderson", "Bennett", "Carter", "Davis", "Evans", "Foster",
	"Garcia", "Harris", "Irving", "Jackson", "King", "Lewis",
	"Martinez", "Nelson", "O'Brien", "Parker", "Quinn", "Roberts",
	"Smith", "Taylor", "Underwood", "Vasquez", "Wilson", "Xavier",
	"Young", "Zhang", "Adams", "Brooks", "Collins", "Dixon",
	"Sneed", "Johnson", "Gibbs", "Parsons", "Braun", "Black",
	"White", "Green", "Brady", "Cooper", "Allen", "Decker",
	"Campbell", "Wall", "Stafford", "Haula", "Wood", "Golden",
	"Appleton", "Kane", "Danielson", "Larkin", "Coleman", "Frost",
	"Wolf", "Petzold", "Cooley", "Douglas", "James", "Paul", "Brink",
	"Hathaway", "Tippett", "York", "Jones", "Holloway",
	"Thomas", "Walker", "Faulk", "Tucker", "Glass", "Hughes",
	"Hamilton", "Swayman", "Lee", "Palmieri", "Schaefer", "Dunn",
	"Benson", "McLeod", "Powers", "Crosby", "Ovechkin", "Malkin",
	"Novak", "Rust", "Graves", "Shea", "Barron", "Connor", "Lowry",
	"Pierce", "Pearson", "Toews", "Stanley", "Judge", "Miller",
	"Frank", "Leonard", "Milano", "Roy", "Berard", "Panarin",
	"Robertson", "Schneider", "Fox", "Blake", "Hall", "Robinson",
	"McMann", "Knight", "Coyle", "Middleton", "Bedard",
	"Moore", "Murphy", "Celebrini", "Orlovsky", "Colt", "Holt",
	"Burns", "Makar", "Caufield", "Suzuki", "Cruise", "Chen",
	"Gomes", "DuBois", "Keller", "Cole", "Marino", "Cousins",
	"Perron", "Pinto", "Spence", "Bowman", "Eichel", "Stone",
	"McNabb", "Whitecloud", "Barns", "Myers", "Gretzky", "Terry",
	"Beck", "Manning", "Benn", "Johnston", "Brightwell", "Wyatt",
	"Steel", "Lindell", "Mayer", "Rock", "Love", "Cook",
	"Hawes", "Palmer", "Knox", "Gilliam", "Poyer",
	"Benford", "Williams", "Franklin", "Bosa", "Graham",
	"Watson", "Sanders", "Hairston", "Mills", "Marks", "Chubb",
	"Noel", "Hutchinson", "Higgins", "Schultz", "Fortin",
	"Stover", "Hunter", "Settle", "Hansen", "Barnett",
	"Bryant", "Horton", "Darnold", "Lassiter", "Warren", "Cox",
	"Pittman", "Ward", "Pierre", "Holcomb", "Slay", "Boswell",
	"Pratt", "Stewart", "Burden", "Swift", "Loveland", "Sweat",
	"Cross", "Gardner", "Gallimore", "Treadwell", "Goodson",
	"Edwards", "Rice", "Gray", "Thornton", "Bolton", "Hicks",
	"McDonald", "Penner", "Knowles", "Rudolph", "Novikoff",
	"Heyward", "Austin", "Ramsey", "Watt", "Turbo", "Booth",
	"Sawyer", "Porter", "Wright", "Brisker", "Dexter", "Booker",
	"Owens", "Scheffler", "Hovland", "Maye", "Woods",
	"Jennings", "Hooper", "Hollins", "Spillane", "Pepper",
	"Gibbens", "Landry", "Ponder", "Powder", "Swinson", "Fears",
	"Browning", "Burrow", "Tinsley", "Ferguson", "Fant",
	"Battle", "Hill", "Jenkins", "Giles", "Burks", "Ivey",
	"Newton", "Turner", "Sherwood", "Reed", "Briggs",
	"Brownlee", "Stephens", "Oliver", "Clemons", "Pavlov",
	"Flowers", "Mitchell", "Andrews", "Henry", "Wallace",
	"Starks", "Sparks", "Martin", "Hummel", "Kolar", "Barner",
	"O'Conner", "O'Connell", "Sheriff", "Morris", "Bieber",
	"Pollard", "Spears", "Chestnut", "Helm", "Jefferson", "Key",
	"Barton", "Kinsey", "Penn", "Teller", "Womack",
	"Day", "McCarthy", "Mason", "Nailor", "Addison", "Price",
	"Cashore", "Metellus", "Redmond", "Rodriguez", "Batty",
	"Dawkins", "Willis", "Musgrave", "Fitzpatick", "McDuffy",
	"Hadden", "McKinney", "Soto", "Bullard", "Winston", "Tracy",
	"Ivanov", "Petrov", "Sidorov", "Smirnoff", "Volkov",
	"Popov", "Bouchard", "Tremblay", "Bergeron", "LeBlanc",
	"Schmid", "Huber", "Fischer", "Meier", "Berger", "Frey",
	"Hurts", "Molette", "Jackson", "Johnson", "Smith", "Jones",
	"Williams", "Davis", "Wilson", "Anderson", "McAfee",
	"Mendoza", "Sarratt", "Scarlett", "Tate", "Boykin",
	"Sharpe", "Unger", "Utzinger", "Ponds", "Boyd", "Ferrell",
	"Baldwin", "Tuggle", "Harkless", "Morrow", "Ohrstrom",
	"Ratcliff", "Kennedy", "Stockton", "McCray", "Frazier",
	"Branch", "Bolden", "Everett", "Butler", "Yates", "Ennis",
	"McCulley", "Ragnow", "Snell",
}

var nicknames = []string{
	"Tank", "Bearcat", "Iceman",
	"Bear", "Wolverine", "Brick",
	"Money", "Bigfoot", "Buckeye",
	"Ace", "Worm", "Roadrunner",
	"Spidey", "Goober", "Arrow",
	"Bobo", "Onions", "The Bolt",
	"Mammoth", "Admiral", "Crowbar",
	"Cash", "Captain Bacon", "Flea",
	"The Joker", "Tarzan", "Mongoose",
	"Doc", "Pipsqueak", "Burrito",
	"Nugget", "Rambo", "Smurf",
	"Pickles", "Hades", "The Rat",
	"Stinky", "Caesar", "Salmon",
	"Pancake", "Ajax", "Candy",
}

// Generator draws names from the pools
type Generator struct {
	roller dice.Roller
}

// Config holds Generator dependencies
type Config struct {
	Roller dice.Roller
}

// New creates a name generator
func New(cfg *Config) *Generator {
	return &Generator{roller: cfg.Roller}
}

// Generate returns a full name not present in used and records it
// there. One in thirty prospects is a Jr., one in sixty carries a
// hyphenated surname. After a hundred collisions a numeric suffix
// forces uniqueness.
func (g *Generator) Generate(used map[string]bool) string {
	var name string
	attempts := 0
	for {
		first := firstNames[g.roller.Intn(len(firstNames))]
		last := lastNames[g.roller.Intn(len(lastNames))]
		for first == last {
			last = lastNames[g.roller.Intn(len(lastNames))]
		}

		if g.roller.Intn(30) == 0 {
			last += " Jr."
		} else if g.roller.Intn(60) == 0 {
			second := lastNames[g.roller.Intn(len(lastNames))]
			for second == last {
				second = lastNames[g.roller.Intn(len(lastNames))]
			}
			last = last + "-" + second
		}

		name = first + " " + last
		attempts++
		if attempts > 100 {
			name = fmt.Sprintf("%s %s %d", first, last, g.roller.Intn(1000))
			break
		}
		if !used[name] {
			break
		}
	}
	used[name] = true
	return name
}

// Nickname draws a random nickname from the pool.
func (g *Generator) Nickname() string {
	return nicknames[g.roller.Intn(len(nicknames))]
}
