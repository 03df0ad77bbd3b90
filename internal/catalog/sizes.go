package catalog

var logoGroups = []Group{
	{
		Name:  "Digital Logos",
		Sizes: []Size{
			{Title: "Website Favicon", Size: "16 × 16 px"},
			{Title: "Web App Icon (Small)", Size: "32 × 32 px"},
			{Title: "Web App Icon (Standard)", Size: "180 × 180 px"},
			{Title: "App Icon (iOS/Android)", Size: "512 × 512 px"},
			{Title: "Square Logo", Size: "500 × 500 px"},
		},
	},
	{
		Name:  "Print Logos",
		Sizes: []Size{
			{Title: "Business Card Logo", Size: "300 × 300 px"},
			{Title: "Letterhead Logo", Size: "1000 × 1000 px"},
			{Title: "T-Shirt/Clothing Print", Size: "4500 × 5400 px"},
			{Title: "Large Print (Posters)", Size: "2500 × 2500 px"},
			{Title: "Billboard Logo", Size: "5000 × 5000 px"},
		},
	},
	{
		Name:  "Social Media Logos",
		Sizes: []Size{
			{Title: "Facebook/Instagram Profile", Size: "320 × 320 px"},
			{Title: "Twitter Profile", Size: "400 × 400 px"},
			{Title: "LinkedIn Company Logo", Size: "300 × 300 px"},
			{Title: "YouTube Channel Logo", Size: "800 × 800 px"},
			{Title: "Pinterest Profile", Size: "165 × 165 px"},
		},
	},
}

var bannerGroups = []Group{
	{
		Name:  "Popular Web Banners",
		Sizes: []Size{
			{Title: "Leaderboard", Size: "728 × 90 px"},
			{Title: "Medium Rectangle", Size: "300 × 250 px"},
			{Title: "Large Rectangle", Size: "336 × 280 px"},
			{Title: "Half Page", Size: "300 × 600 px"},
			{Title: "Large Mobile Banner", Size: "320 × 100 px"},
			{Title: "Mobile Leaderboard", Size: "320 × 50 px"},
		},
	},
	{
		Name:  "Additional Web Banners",
		Sizes: []Size{
			{Title: "Standard Banner", Size: "468 × 60 px"},
			{Title: "Square", Size: "250 × 250 px"},
			{Title: "Small Square", Size: "200 × 200 px"},
			{Title: "Skyscraper", Size: "120 × 600 px"},
			{Title: "Wide Skyscraper", Size: "160 × 600 px"},
			{Title: "Large Leaderboard", Size: "970 × 90 px"},
			{Title: "Billboard", Size: "970 × 250 px"},
			{Title: "Portrait", Size: "300 × 1050 px"},
			{Title: "Top Banner", Size: "930 × 180 px"},
			{Title: "Small Rectangle", Size: "180 × 150 px"},
		},
	},
	{
		Name:  "Posters",
		Sizes: []Size{
			{Title: "A4 Poster / Flyer", Size: "210 × 297 mm"},
			{Title: "A3 Poster", Size: "297 × 420 mm"},
			{Title: "A2 Poster", Size: "420 × 594 mm"},
			{Title: "A1 Poster", Size: "594 × 841 mm"},
			{Title: "A0 Poster", Size: "841 × 1189 mm"},
		},
	},
	{
		Name:  "Roll-up Banners",
		Sizes: []Size{
			{Title: "Small Roll-up", Size: "2 × 4 ft"},
			{Title: "Vertical Banner", Size: "2 × 6 ft"},
			{Title: "Event Banner", Size: "3 × 6 ft"},
			{Title: "Large Display", Size: "4 × 6 ft"},
			{Title: "Billboard Style", Size: "4 × 8 ft"},
			{Title: "Outdoor Promotion", Size: "5 × 10 ft"},
			{Title: "Trade Show Booth", Size: "6 × 3 ft"},
		},
	},
	{
		Name:  "Billboards",
		Sizes: []Size{
			{Title: "Building Banner", Size: "8 × 20 ft"},
			{Title: "Billboard Banner", Size: "10 × 30 ft"},
			{Title: "Highway Billboard", Size: "14 × 48 ft"},
		},
	},
}

var socialGroups = []Group{
	{
		Name:  "Facebook",
		Sizes: []Size{
			{Title: "Profile Picture", Size: "180 × 180 px"},
			{Title: "Cover Photo", Size: "820 × 312 px"},
			{Title: "Event Cover", Size: "1920 × 1005 px"},
			{Title: "Shared Image", Size: "1200 × 630 px"},
			{Title: "Ad Image", Size: "1080 × 1080 px"},
		},
	},
	{
		Name:  "Instagram",
		Sizes: []Size{
			{Title: "Profile Picture", Size: "320 × 320 px"},
			{Title: "Square Post", Size: "1080 × 1080 px"},
			{Title: "Portrait Post", Size: "1080 × 1350 px"},
			{Title: "Landscape Post", Size: "1080 × 566 px"},
			{Title: "Story/Reel", Size: "1080 × 1920 px"},
		},
	},
	{
		Name:  "X (Twitter)",
		Sizes: []Size{
			{Title: "Profile Picture", Size: "400 × 400 px"},
			{Title: "Header Photo", Size: "1500 × 500 px"},
			{Title: "In-Stream Image", Size: "1200 × 675 px"},
		},
	},
	{
		Name:  "LinkedIn",
		Sizes: []Size{
			{Title: "Profile Picture", Size: "400 × 400 px"},
			{Title: "Personal Cover", Size: "1584 × 396 px"},
			{Title: "Company Logo", Size: "300 × 300 px"},
			{Title: "Company Cover", Size: "1128 × 191 px"},
			{Title: "Shared Image", Size: "1200 × 627 px"},
		},
	},
	{
		Name:  "YouTube",
		Sizes: []Size{
			{Title: "Profile Picture", Size: "800 × 800 px"},
			{Title: "Channel Art", Size: "2560 × 1440 px"},
			{Title: "Thumbnail", Size: "1280 × 720 px"},
		},
	},
	{
		Name:  "TikTok",
		Sizes: []Size{
			{Title: "Profile Picture", Size: "200 × 200 px"},
			{Title: "Video", Size: "1080 × 1920 px"},
		},
	},
	{
		Name:  "Pinterest",
		Sizes: []Size{
			{Title: "Profile Picture", Size: "165 × 165 px"},
			{Title: "Pin", Size: "1000 × 1500 px"},
			{Title: "Board Cover", Size: "222 × 150 px"},
		},
	},
}
