// internal/teams/catalog.go
package teams

// All 32 NHL teams with regular and alternate color palettes. Logo URLs use
// the official NHL CDN.
var registry = []TeamConfig{
	// Atlantic
	{
		ID: 1, Name: "Boston Bruins", Abbreviation: "BOS", City: "Boston",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("BOS"),
		Colors: Colors{
			Regular:   Palette{Primary: "#000000", Secondary: "#FFB81C", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#FFB81C", Secondary: "#000000", Accent: "#FFD100", Text: "#000000"},
		},
	},
	{
		ID: 2, Name: "Buffalo Sabres", Abbreviation: "BUF", City: "Buffalo",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("BUF"),
		Colors: Colors{
			Regular:   Palette{Primary: "#003087", Secondary: "#FFB81C", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#C8102E", Secondary: "#000000", Accent: "#8D9093", Text: "#FFFFFF"},
		},
	},
	{
		ID: 3, Name: "Detroit Red Wings", Abbreviation: "DET", City: "Detroit",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("DET"),
		Colors: Colors{
			Regular:   Palette{Primary: "#C8102E", Secondary: "#FFFFFF", Accent: "#000000", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#FFFFFF", Secondary: "#C8102E", Accent: "#000000", Text: "#C8102E"},
		},
	},
	{
		ID: 4, Name: "Florida Panthers", Abbreviation: "FLA", City: "Sunrise",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("FLA"),
		Colors: Colors{
			Regular:   Palette{Primary: "#C8102E", Secondary: "#041E42", Accent: "#B9975B", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#041E42", Secondary: "#C8102E", Accent: "#B9975B", Text: "#FFFFFF"},
		},
	},
	{
		ID: 5, Name: "Montreal Canadiens", Abbreviation: "MTL", City: "Montreal",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("MTL"),
		Colors: Colors{
			Regular:   Palette{Primary: "#A6192E", Secondary: "#001E62", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#001E62", Secondary: "#A6192E", Accent: "#FFFFFF", Text: "#FFFFFF"},
		},
	},
	{
		ID: 6, Name: "Ottawa Senators", Abbreviation: "OTT", City: "Ottawa",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("OTT"),
		Colors: Colors{
			Regular:   Palette{Primary: "#C8102E", Secondary: "#000000", Accent: "#B9975B", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#000000", Secondary: "#C8102E", Accent: "#B9975B", Text: "#FFFFFF"},
		},
	},
	{
		ID: 7, Name: "Tampa Bay Lightning", Abbreviation: "TBL", City: "Tampa Bay",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("TBL"),
		Colors: Colors{
			Regular:   Palette{Primary: "#00205B", Secondary: "#FFFFFF", Accent: "#A2AAAD", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#000000", Secondary: "#00205B", Accent: "#A2AAAD", Text: "#FFFFFF"},
		},
	},
	{
		ID: 8, Name: "Toronto Maple Leafs", Abbreviation: "TOR", City: "Toronto",
		Division: "Atlantic", Conference: "Eastern", LogoURL: logoURL("TOR"),
		Colors: Colors{
			Regular:   Palette{Primary: "#00205B", Secondary: "#FFFFFF", Accent: "#003087", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#046A38", Secondary: "#00205B", Accent: "#FFFFFF", Text: "#FFFFFF"},
		},
	},
	// Metropolitan
	{
		ID: 9, Name: "Carolina Hurricanes", Abbreviation: "CAR", City: "Raleigh",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("CAR"),
		Colors: Colors{
			Regular:   Palette{Primary: "#C8102E", Secondary: "#000000", Accent: "#A2AAAD", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#333F48", Secondary: "#C8102E", Accent: "#76232F", Text: "#FFFFFF"},
		},
	},
	{
		ID: 10, Name: "Columbus Blue Jackets", Abbreviation: "CBJ", City: "Columbus",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("CBJ"),
		Colors: Colors{
			Regular:   Palette{Primary: "#041E42", Secondary: "#C8102E", Accent: "#A2AAAD", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#DDCBA4", Secondary: "#041E42", Accent: "#C8102E", Text: "#041E42"},
		},
	},
	{
		ID: 11, Name: "New Jersey Devils", Abbreviation: "NJD", City: "Newark",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("NJD"),
		Colors: Colors{
			Regular:   Palette{Primary: "#CE1126", Secondary: "#000000", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#000000", Secondary: "#CE1126", Accent: "#FFFFFF", Text: "#FFFFFF"},
		},
	},
	{
		ID: 12, Name: "New York Islanders", Abbreviation: "NYI", City: "Elmont",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("NYI"),
		Colors: Colors{
			Regular:   Palette{Primary: "#003087", Secondary: "#F26822", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#F26822", Secondary: "#003087", Accent: "#FFFFFF", Text: "#FFFFFF"},
		},
	},
	{
		ID: 13, Name: "New York Rangers", Abbreviation: "NYR", City: "New York",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("NYR"),
		Colors: Colors{
			Regular:   Palette{Primary: "#0032A0", Secondary: "#C8102E", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#000043", Secondary: "#0032A0", Accent: "#C8102E", Text: "#FFFFFF"},
		},
	},
	{
		ID: 14, Name: "Philadelphia Flyers", Abbreviation: "PHI", City: "Philadelphia",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("PHI"),
		Colors: Colors{
			Regular:   Palette{Primary: "#F74902", Secondary: "#000000", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#000000", Secondary: "#F74902", Accent: "#FFFFFF", Text: "#F74902"},
		},
	},
	{
		ID: 15, Name: "Pittsburgh Penguins", Abbreviation: "PIT", City: "Pittsburgh",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("PIT"),
		Colors: Colors{
			Regular:   Palette{Primary: "#000000", Secondary: "#FFB81C", Accent: "#FFFFFF", Text: "#FFB81C"},
			Alternate: Palette{Primary: "#FFB81C", Secondary: "#000000", Accent: "#FFFFFF", Text: "#000000"},
		},
	},
	{
		ID: 16, Name: "Washington Capitals", Abbreviation: "WSH", City: "Washington",
		Division: "Metropolitan", Conference: "Eastern", LogoURL: logoURL("WSH"),
		Colors: Colors{
			Regular:   Palette{Primary: "#C8102E", Secondary: "#041E42", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#041E42", Secondary: "#C8102E", Accent: "#FFFFFF", Text: "#FFFFFF"},
		},
	},
	// Central
	{
		ID: 17, Name: "Utah Hockey Club", Abbreviation: "UTA", City: "Salt Lake City",
		Division: "Central", Conference: "Western", LogoURL: logoURL("UTA"),
		Colors: Colors{
			Regular:   Palette{Primary: "#010101", Secondary: "#6CACE4", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#6CACE4", Secondary: "#010101", Accent: "#FFFFFF", Text: "#000000"},
		},
	},
	{
		ID: 18, Name: "Chicago Blackhawks", Abbreviation: "CHI", City: "Chicago",
		Division: "Central", Conference: "Western", LogoURL: logoURL("CHI"),
		Colors: Colors{
			Regular:   Palette{Primary: "#C8102E", Secondary: "#000000", Accent: "#FFD100", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#000000", Secondary: "#C8102E", Accent: "#FFFFFF", Text: "#FFFFFF"},
		},
	},
	{
		ID: 19, Name: "Colorado Avalanche", Abbreviation: "COL", City: "Denver",
		Division: "Central", Conference: "Western", LogoURL: logoURL("COL"),
		Colors: Colors{
			Regular:   Palette{Primary: "#6F263D", Secondary: "#236192", Accent: "#A2AAAD", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#236192", Secondary: "#6F263D", Accent: "#000000", Text: "#FFFFFF"},
		},
	},
	{
		ID: 20, Name: "Dallas Stars", Abbreviation: "DAL", City: "Dallas",
		Division: "Central", Conference: "Western", LogoURL: logoURL("DAL"),
		Colors: Colors{
			Regular:   Palette{Primary: "#00843D", Secondary: "#000000", Accent: "#A2AAAD", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#44D62C", Secondary: "#000000", Accent: "#FFFFFF", Text: "#000000"},
		},
	},
	{
		ID: 21, Name: "Minnesota Wild", Abbreviation: "MIN", City: "Saint Paul",
		Division: "Central", Conference: "Western", LogoURL: logoURL("MIN"),
		Colors: Colors{
			Regular:   Palette{Primary: "#154734", Secondary: "#A6192E", Accent: "#EAAA00", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#DDCBA4", Secondary: "#154734", Accent: "#A6192E", Text: "#154734"},
		},
	},
	{
		ID: 22, Name: "Nashville Predators", Abbreviation: "NSH", City: "Nashville",
		Division: "Central", Conference: "Western", LogoURL: logoURL("NSH"),
		Colors: Colors{
			Regular:   Palette{Primary: "#FFB81C", Secondary: "#041E42", Accent: "#FFFFFF", Text: "#041E42"},
			Alternate: Palette{Primary: "#041E42", Secondary: "#FFB81C", Accent: "#FFFFFF", Text: "#FFFFFF"},
		},
	},
	{
		ID: 23, Name: "St. Louis Blues", Abbreviation: "STL", City: "St. Louis",
		Division: "Central", Conference: "Western", LogoURL: logoURL("STL"),
		Colors: Colors{
			Regular:   Palette{Primary: "#002F87", Secondary: "#FFB81C", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#DDCBA4", Secondary: "#002F87", Accent: "#FFB81C", Text: "#002F87"},
		},
	},
	{
		ID: 24, Name: "Winnipeg Jets", Abbreviation: "WPG", City: "Winnipeg",
		Division: "Central", Conference: "Western", LogoURL: logoURL("WPG"),
		Colors: Colors{
			Regular:   Palette{Primary: "#004C97", Secondary: "#A6192E", Accent: "#A2AAAD", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#56B4F8", Secondary: "#004C97", Accent: "#FFFFFF", Text: "#004C97"},
		},
	},
	// Pacific
	{
		ID: 25, Name: "Anaheim Ducks", Abbreviation: "ANA", City: "Anaheim",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("ANA"),
		Colors: Colors{
			Regular:   Palette{Primary: "#000000", Secondary: "#CF4520", Accent: "#B9975B", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#00685E", Secondary: "#CF4520", Accent: "#FFB81C", Text: "#FFFFFF"},
		},
	},
	{
		ID: 26, Name: "Calgary Flames", Abbreviation: "CGY", City: "Calgary",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("CGY"),
		Colors: Colors{
			Regular: Palette{Primary: "#CE1126", Secondary: "#F1BE48", Accent: "#000000", Text: "#FFFFFF"},
			// Blasty alternate, the retro horse head jersey
			Alternate: Palette{Primary: "#000000", Secondary: "#CE1126", Accent: "#F1BE48", Text: "#CE1126"},
		},
	},
	{
		ID: 27, Name: "Edmonton Oilers", Abbreviation: "EDM", City: "Edmonton",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("EDM"),
		Colors: Colors{
			Regular:   Palette{Primary: "#00205B", Secondary: "#FF4C00", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#041E42", Secondary: "#FF4C00", Accent: "#FFFFFF", Text: "#FF4C00"},
		},
	},
	{
		ID: 28, Name: "Los Angeles Kings", Abbreviation: "LAK", City: "Los Angeles",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("LAK"),
		Colors: Colors{
			Regular:   Palette{Primary: "#000000", Secondary: "#A2AAAD", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#A2AAAD", Secondary: "#000000", Accent: "#FFFFFF", Text: "#000000"},
		},
	},
	{
		ID: 29, Name: "San Jose Sharks", Abbreviation: "SJS", City: "San Jose",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("SJS"),
		Colors: Colors{
			Regular:   Palette{Primary: "#006271", Secondary: "#000000", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#000000", Secondary: "#006271", Accent: "#E57200", Text: "#FFFFFF"},
		},
	},
	{
		ID: 30, Name: "Seattle Kraken", Abbreviation: "SEA", City: "Seattle",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("SEA"),
		Colors: Colors{
			Regular:   Palette{Primary: "#041E42", Secondary: "#9CDBD9", Accent: "#6BA4B8", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#C8102E", Secondary: "#041E42", Accent: "#9CDBD9", Text: "#FFFFFF"},
		},
	},
	{
		ID: 31, Name: "Vancouver Canucks", Abbreviation: "VAN", City: "Vancouver",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("VAN"),
		Colors: Colors{
			Regular:   Palette{Primary: "#00205B", Secondary: "#00843D", Accent: "#FFFFFF", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#C8102E", Secondary: "#FFD100", Accent: "#000000", Text: "#FFFFFF"},
		},
	},
	{
		ID: 32, Name: "Vegas Golden Knights", Abbreviation: "VGK", City: "Las Vegas",
		Division: "Pacific", Conference: "Western", LogoURL: logoURL("VGK"),
		Colors: Colors{
			Regular:   Palette{Primary: "#333F48", Secondary: "#B9975B", Accent: "#C8102E", Text: "#FFFFFF"},
			Alternate: Palette{Primary: "#B9975B", Secondary: "#333F48", Accent: "#C8102E", Text: "#333F48"},
		},
	},
}
