// internal/classifier/category_rules.go
package classifier

import (
	"strings"

	"github.com/jansunwai/grievance-classifier/internal/domain"
)

// Keyword tier weights. Local covers Hindi transliterations common in
// grievance text and sits between the English tiers.
const (
	primaryKeywordWeight   = 3.0
	secondaryKeywordWeight = 2.0
	localKeywordWeight     = 2.5
	phraseMatchBonus       = 1.5
)

// categoryProfiles is the complaint taxonomy. Keyword tiers, phrase
// patterns, priorities and suggested departments drive classification;
// the same table seeds the keyword index. Order is significant: scores
// are accumulated and ranked in declaration order, which keeps results
// reproducible across runs.
var categoryProfiles = []domain.CategoryProfile{
	{
		ID: domain.CategoryRoads,
		Primary: []string{
			"road", "highway", "street", "pothole", "traffic", "bridge", "flyover",
			"underpass", "signal", "zebra crossing", "divider", "median", "footpath",
			"pavement", "junction", "intersection", "roundabout", "traffic jam", "congestion",
		},
		Secondary: []string{
			"tar", "cement", "construction", "repair", "maintenance", "broken", "damaged",
			"crack", "accident", "safety", "speed breaker", "rumble strip", "lane",
			"marking", "signage", "board", "direction",
		},
		Local: []string{"sadak", "marg", "path", "raasta", "gaddha", "kharab", "toot", "nirmaan"},
		PhrasePatterns: []string{
			`road.*(?:repair|fix|broken|pothole|damage)`,
			`traffic.*(?:jam|signal|light|problem)`,
			`bridge.*(?:broken|repair|construction)`,
			`highway.*(?:problem|issue|maintenance)`,
		},
		Priority: domain.PriorityHigh,
		Departments: []string{
			"Ministry of Road Transport & Highways", "Public Works Department", "Municipal Corporation",
		},
	},
	{
		ID: domain.CategoryWater,
		Primary: []string{
			"water", "drainage", "sewer", "pipeline", "supply", "tap", "bore", "well",
			"tank", "reservoir", "pump", "leak", "overflow", "blockage", "contamination", "quality",
		},
		Secondary: []string{
			"dirty", "clean", "pressure", "connection", "meter", "bill", "shortage",
			"scarcity", "flood", "waterlogging", "stagnant", "mosquito", "smell", "odor",
		},
		Local: []string{"paani", "pani", "jal", "nalka", "nal", "gandagi", "saaf", "kharab", "leakage"},
		PhrasePatterns: []string{
			`water.*(?:supply|problem|leak|dirty|contaminated)`,
			`drainage.*(?:block|overflow|problem)`,
			`pipe.*(?:burst|leak|broken)`,
			`tap.*(?:not.*work|no.*water|dry)`,
		},
		Priority: domain.PriorityHigh,
		Departments: []string{
			"Ministry of Jal Shakti", "Water Supply Department", "Municipal Corporation",
		},
	},
	{
		ID: domain.CategoryElectricity,
		Primary: []string{
			"power", "electricity", "light", "transformer", "outage", "blackout", "pole",
			"wire", "cable", "meter", "bill", "connection", "voltage", "current", "supply",
		},
		Secondary: []string{
			"cut", "failure", "fluctuation", "broken", "hanging", "dangerous", "spark",
			"short circuit", "overload", "fuse", "mcb", "switch", "socket", "energy",
		},
		Local: []string{"bijli", "current", "light", "kharab", "kat", "band", "nahi", "problem"},
		PhrasePatterns: []string{
			`power.*(?:cut|outage|problem|failure)`,
			`electricity.*(?:bill|connection|problem)`,
			`light.*(?:not.*work|problem|flickering)`,
			`transformer.*(?:blast|problem|noise)`,
		},
		Priority: domain.PriorityHigh,
		Departments: []string{
			"Ministry of Power", "State Electricity Board", "Power Distribution Company",
		},
	},
	{
		ID: domain.CategorySanitation,
		Primary: []string{
			"garbage", "waste", "cleaning", "toilet", "hygiene", "dustbin", "collection",
			"dump", "litter", "sweeping", "sanitation", "public toilet", "washroom", "restroom",
		},
		Secondary: []string{
			"dirty", "smell", "stink", "rats", "flies", "disease", "health", "unhygienic",
			"disposal", "segregation", "compost", "recycling", "plastic", "organic",
		},
		Local: []string{"safai", "gandagi", "kachra", "kuda", "ganda", "saaf", "toilet", "badbu", "smell"},
		PhrasePatterns: []string{
			`garbage.*(?:collection|disposal|problem)`,
			`toilet.*(?:dirty|broken|not.*clean)`,
			`waste.*(?:management|disposal|collection)`,
			`cleaning.*(?:not.*done|poor|inadequate)`,
		},
		Priority: domain.PriorityMedium,
		Departments: []string{
			"Ministry of Housing & Urban Affairs", "Municipal Corporation", "Waste Management Department",
		},
	},
	{
		ID: domain.CategoryHealthcare,
		Primary: []string{
			"hospital", "clinic", "doctor", "medicine", "health", "medical", "treatment",
			"patient", "nurse", "ambulance", "emergency", "pharmacy", "dispensary",
		},
		Secondary: []string{
			"appointment", "queue", "waiting", "staff", "equipment", "facility", "service",
			"care", "consultation", "diagnosis", "surgery", "bed", "ward", "icu",
		},
		Local:    []string{"hospital", "dawai", "daktaar", "doctor", "ilaj", "marij", "bimari", "health"},
		Priority: domain.PriorityHigh,
		Departments: []string{
			"Ministry of Health & Family Welfare", "Health Department", "Medical Services",
		},
	},
	{
		ID: domain.CategoryEducation,
		Primary: []string{
			"school", "college", "teacher", "education", "student", "classroom", "building",
			"playground", "library", "laboratory", "computer", "books", "uniform", "fees",
		},
		Secondary: []string{
			"admission", "exam", "result", "certificate", "scholarship", "transport", "meal",
			"nutrition", "infrastructure", "facility", "staff", "principal", "management",
		},
		Local:    []string{"school", "college", "teacher", "padhai", "bachcha", "student", "shiksha", "pustak"},
		Priority: domain.PriorityMedium,
		Departments: []string{
			"Ministry of Education", "Education Department", "School Education",
		},
	},
	{
		ID: domain.CategoryTransport,
		Primary: []string{
			"bus", "train", "transport", "station", "vehicle", "auto", "rickshaw", "taxi",
			"metro", "railway", "platform", "ticket", "conductor", "driver",
		},
		Secondary: []string{
			"route", "schedule", "timing", "frequency", "crowded", "delay", "fare",
			"booking", "reservation", "waiting", "queue", "service", "maintenance",
		},
		Local:    []string{"bus", "train", "gaadi", "station", "ticket", "safar", "yatra", "transport"},
		Priority: domain.PriorityMedium,
		Departments: []string{
			"Ministry of Road Transport & Highways", "Transport Department", "Railway Ministry",
		},
	},
	{
		ID: domain.CategoryPublicServices,
		Primary: []string{
			"government", "office", "officer", "clerk", "document", "certificate", "license",
			"permit", "application", "form", "service", "counter", "queue", "waiting",
		},
		Secondary: []string{
			"bribe", "corruption", "delay", "harassment", "rude", "behavior", "staff",
			"procedure", "process", "system", "online", "portal", "website",
		},
		Local:    []string{"sarkaar", "office", "kaam", "kagaz", "certificate", "mukhya", "adhikari", "babu"},
		Priority: domain.PriorityLow,
		Departments: []string{
			"Department of Administrative Reforms", "General Administration", "Revenue Department",
		},
	},
	{
		ID: domain.CategoryHousing,
		Primary: []string{
			"housing", "flat", "apartment", "building", "construction", "builder", "society",
			"maintenance", "lift", "elevator", "parking", "security", "guard",
		},
		Secondary: []string{
			"possession", "handover", "registry", "payment", "emi", "loan", "bank",
			"facility", "amenity", "gym", "club", "garden", "playground",
		},
		Local:    []string{"ghar", "makan", "flat", "building", "society", "maintenance", "lift", "security"},
		Priority: domain.PriorityMedium,
		Departments: []string{
			"Ministry of Housing & Urban Affairs", "Housing Department", "Urban Development",
		},
	},
	{
		ID: domain.CategoryFoodSafety,
		Primary: []string{
			"food", "restaurant", "hotel", "eatery", "canteen", "mess", "catering",
			"quality", "hygiene", "license", "fssai", "adulteration", "poisoning",
		},
		Secondary: []string{
			"expired", "stale", "contaminated", "insects", "hair", "dirt", "unhygienic",
			"kitchen", "storage", "preparation", "serving", "packaging",
		},
		Local:    []string{"khana", "bhojan", "restaurant", "hotel", "safai", "kharab", "gandagi", "quality"},
		Priority: domain.PriorityHigh,
		Departments: []string{
			"Ministry of Health & Family Welfare", "Food Safety Department", "FSSAI",
		},
	},
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
