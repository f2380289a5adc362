package respond

// PriceItem is a single line of the salon's price list. The list is an
// ordered slice so specific-treatment lookup is deterministic.
type PriceItem struct {
	Treatment string `json:"treatment"`
	Price     int    `json:"price"`
}

// OpeningHours is one row of the weekly hours table.
type OpeningHours struct {
	Days  string `json:"days"`
	Times string `json:"times"`
}

// Catalog carries the salon facts the composer fills templates with.
// It is injected at construction time so the composer can be tested
// against different salons and price lists.
type Catalog struct {
	SalonName     string
	AssistantName string
	Address       string
	Phone         string
	Instagram     string
	ParkingNote   string
	HoursNote     string
	Hours         []OpeningHours
	Prices        []PriceItem

	// ResponseWindow is quoted in the escalation template.
	ResponseWindow string
}

// DefaultCatalog returns the Yaron Hershberg salon facts.
func DefaultCatalog() Catalog {
	return Catalog{
		SalonName:      "מספרת ירון",
		AssistantName:  "ירון הרשברג",
		Address:        "שדרות ירושלים 27, רמת גן",
		Phone:          "050-7448229",
		Instagram:      "@yaronhershberg",
		ParkingNote:    "חניה בשפע באזור",
		HoursNote:      "פתוחים עד חצות בימי חמישי!",
		ResponseWindow: "עד 4 שעות בשעות הפעילות",
		Hours: []OpeningHours{
			{Days: "ראשון-רביעי", Times: "09:00-22:00"},
			{Days: "חמישי", Times: "09:00-24:00"},
			{Days: "שישי", Times: "09:00-15:00"},
			{Days: "שבת", Times: "סגור"},
		},
		Prices: []PriceItem{
			{Treatment: "תספורת גבר", Price: 120},
			{Treatment: "תספורת אישה", Price: 320},
			{Treatment: "צבע שורש", Price: 280},
			{Treatment: "צבע ראש מלא", Price: 380},
			{Treatment: "צבע שטיפה", Price: 250},
			{Treatment: "גוונים", Price: 750},
			{Treatment: "בליאז מלא", Price: 1200},
			{Treatment: "טיפול קרקפת", Price: 250},
			{Treatment: "אבחון קרקפת", Price: 250},
			{Treatment: "שיקום שיער", Price: 400},
			{Treatment: "קרטין", Price: 800},
			{Treatment: "החלקה", Price: 1200},
		},
	}
}
