// internal/classifier/department_rules.go
package classifier

import (
	"regexp"

	"github.com/jansunwai/grievance-classifier/internal/domain"
)

// Department ranking score contributions.
const (
	keywordScoreMultiplier = 2.0
	contextPatternBonus    = 15.0
	categoryHintBoost      = 25.0
	departmentHintBoost    = 30.0
	localContextBoost      = 10.0
	stateContextBoost      = 8.0
	highwayContextBoost    = 15.0
	maxRoutingConfidence   = 100.0
	topDepartmentCount     = 3
	fallbackConfidence     = 30.0
)

const (
	cpgramsAPIBase        = "https://api.cpgrams.gov.in"
	emergencyResponseTime = "24-48 hours"
	defaultResponseTime   = "30 days"
)

// departmentProfiles is the CPGRAMS routing table. Central ministries
// first, then state and local bodies. Order is significant: score entries
// are ranked in declaration order so ties resolve the same way every run.
var departmentProfiles = []domain.DepartmentProfile{
	{
		Name:        "Ministry of Road Transport & Highways",
		Code:        "MORTH",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MORTH/submit",
		Description: "National highways, road transport policy, vehicle regulations",
		Keywords: []string{
			"national highway", "nh", "state highway", "expressway", "toll", "overbridge",
			"underpass", "flyover", "road transport", "vehicle registration", "driving license",
			"road safety", "highway construction", "road maintenance", "traffic rules",
			"motor vehicle", "transport policy", "road infrastructure",
		},
		Weight: 8.5,
		Contact: domain.ContactInfo{
			Website:  "https://morth.nic.in",
			Helpline: "1033",
			Email:    "feedback-morth@gov.in",
		},
	},
	{
		Name:        "Ministry of Jal Shakti",
		Code:        "MOJS",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOJS/submit",
		Description: "Water supply, irrigation, river development, groundwater",
		Keywords: []string{
			"water supply", "drinking water", "irrigation", "groundwater", "river",
			"dam", "reservoir", "canal", "water quality", "water treatment",
			"bore well", "hand pump", "water scarcity", "drought", "flood control",
			"watershed", "rainwater harvesting", "water conservation", "river cleaning",
		},
		Weight: 9.0,
		Contact: domain.ContactInfo{
			Website:  "https://jalshakti.gov.in",
			Helpline: "1916",
			Email:    "secy-mowr@nic.in",
		},
	},
	{
		Name:        "Ministry of Power",
		Code:        "MOP",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOP/submit",
		Description: "Electricity generation, transmission, distribution, renewable energy",
		Keywords: []string{
			"electricity", "power", "transformer", "power cut", "load shedding",
			"electric pole", "high tension", "low tension", "power supply",
			"electricity bill", "meter", "solar", "renewable energy", "grid",
			"substation", "electric wire", "power outage", "voltage fluctuation",
		},
		Weight: 8.8,
		Contact: domain.ContactInfo{
			Website:  "https://powermin.gov.in",
			Helpline: "1912",
			Email:    "powermin@gov.in",
		},
	},
	{
		Name:        "Ministry of Housing & Urban Affairs",
		Code:        "MOHUA",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOHUA/submit",
		Description: "Urban planning, smart cities, housing, sanitation",
		Keywords: []string{
			"smart city", "urban development", "housing", "slum", "sanitation",
			"sewerage", "solid waste", "garbage", "municipal", "city planning",
			"urban infrastructure", "affordable housing", "pmay", "swachh bharat",
			"waste management", "urban transport", "metro", "bus rapid transit",
		},
		Weight: 8.2,
		Contact: domain.ContactInfo{
			Website:  "https://mohua.gov.in",
			Helpline: "14434",
			Email:    "mohua@gov.in",
		},
	},
	{
		Name:        "Ministry of Health & Family Welfare",
		Code:        "MOHFW",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOHFW/submit",
		Description: "Public health, hospitals, medical services, disease control",
		Keywords: []string{
			"hospital", "health center", "phc", "chc", "medical", "doctor",
			"medicine", "vaccine", "immunization", "ambulance", "emergency",
			"health insurance", "ayushman bharat", "medical college",
			"disease", "epidemic", "health scheme", "maternal health",
			"child health", "nutrition", "anganwadi", "asha worker",
		},
		Weight: 9.2,
		Contact: domain.ContactInfo{
			Website:  "https://mohfw.gov.in",
			Helpline: "104",
			Email:    "mohfw@gov.in",
		},
	},
	{
		Name:        "Ministry of Education",
		Code:        "MOE",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOE/submit",
		Description: "School education, higher education, skill development",
		Keywords: []string{
			"school", "college", "university", "education", "teacher", "student",
			"admission", "scholarship", "examination", "degree", "certificate",
			"mid day meal", "sarva shiksha", "higher education", "technical education",
			"skill development", "vocational training", "research", "ugc", "aicte",
		},
		Weight: 7.8,
		Contact: domain.ContactInfo{
			Website:  "https://education.gov.in",
			Helpline: "8800440559",
			Email:    "minister.edu@gov.in",
		},
	},
	{
		Name:        "Ministry of Consumer Affairs, Food & Public Distribution",
		Code:        "MOFPD",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOFPD/submit",
		Description: "Food safety, public distribution system, consumer protection",
		Keywords: []string{
			"ration card", "pds", "food grain", "fair price shop", "food safety",
			"fssai", "food quality", "consumer protection", "weights measures",
			"cooking gas", "lpg", "kerosene", "sugar", "wheat", "rice",
			"food adulteration", "food license", "consumer court", "food subsidy",
		},
		Weight: 8.0,
		Contact: domain.ContactInfo{
			Website:  "https://consumeraffairs.nic.in",
			Helpline: "1800-11-4000",
			Email:    "caf@nic.in",
		},
	},
	{
		Name:        "Ministry of Railways",
		Code:        "RAILWAYS",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/RAILWAYS/submit",
		Description: "Railway transport, stations, trains, railway infrastructure",
		Keywords: []string{
			"train", "railway", "station", "platform", "track", "signal",
			"railway crossing", "reservation", "ticket", "passenger",
			"goods train", "railway bridge", "railway line", "metro rail",
			"suburban train", "express train", "railway safety", "railway police",
			"railway hospital", "railway quarters", "railway canteen",
		},
		Weight: 8.3,
		Contact: domain.ContactInfo{
			Website:  "https://indianrailways.gov.in",
			Helpline: "139",
			Email:    "railwayboard@gov.in",
		},
	},
	{
		Name:        "Department of Telecommunications",
		Code:        "DOT",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/DOT/submit",
		Description: "Telecom services, mobile networks, internet connectivity",
		Keywords: []string{
			"mobile", "phone", "telecom", "internet", "broadband", "wifi",
			"network", "signal", "tower", "connectivity", "data",
			"sim card", "mobile number", "landline", "fiber", "digital india",
			"bsnl", "mtnl", "telecom operator", "call drop", "network issue",
		},
		Weight: 7.5,
		Contact: domain.ContactInfo{
			Website:  "https://dot.gov.in",
			Helpline: "198",
			Email:    "dot@gov.in",
		},
	},
	{
		Name:        "Ministry of Finance",
		Code:        "MOFIN",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOFIN/submit",
		Description: "Banking, insurance, taxation, financial services",
		Keywords: []string{
			"bank", "atm", "loan", "insurance", "tax", "income tax",
			"gst", "pension", "pf", "epf", "financial", "money",
			"account", "deposit", "withdrawal", "credit card", "debit card",
			"jan dhan", "mudra", "pradhan mantri", "subsidy", "benefit",
		},
		Weight: 7.2,
		Contact: domain.ContactInfo{
			Website:  "https://finmin.nic.in",
			Helpline: "14448",
			Email:    "finmin@gov.in",
		},
	},
	{
		Name:        "Ministry of Agriculture & Farmers Welfare",
		Code:        "MOAFW",
		Level:       domain.LevelCentral,
		Endpoint:    "/cpgrams/departments/MOAFW/submit",
		Description: "Agriculture, farming, crop insurance, farmer welfare",
		Keywords: []string{
			"agriculture", "farming", "farmer", "crop", "seed", "fertilizer",
			"pesticide", "irrigation", "kisan", "msp", "procurement",
			"crop insurance", "pm kisan", "soil", "land", "agriculture loan",
			"krishi", "animal husbandry", "dairy", "fisheries", "horticulture",
		},
		Weight: 7.9,
		Contact: domain.ContactInfo{
			Website:  "https://agricoop.gov.in",
			Helpline: "155261",
			Email:    "agricoop@gov.in",
		},
	},
	{
		Name:        "Public Works Department",
		Code:        "PWD",
		Level:       domain.LevelState,
		Endpoint:    "/cpgrams/departments/PWD/submit",
		Description: "State roads, government buildings, infrastructure",
		Keywords: []string{
			"state road", "district road", "village road", "government building",
			"public works", "construction", "maintenance", "bridge", "culvert",
			"pwd", "road repair", "building repair", "infrastructure",
		},
		Weight: 8.1,
		Contact: domain.ContactInfo{
			Helpline: "1077",
			Email:    "pwd@state.gov.in",
		},
	},
	{
		Name:        "Municipal Corporation/Council",
		Code:        "MUNICIPAL",
		Level:       domain.LevelLocal,
		Endpoint:    "/cpgrams/departments/MUNICIPAL/submit",
		Description: "Local civic services, water, sanitation, local roads",
		Keywords: []string{
			"municipal", "corporation", "council", "panchayat", "ward",
			"local", "civic", "street light", "garbage collection",
			"sewerage", "drainage", "water supply", "property tax",
			"birth certificate", "death certificate", "trade license",
		},
		Weight: 8.7,
		Contact: domain.ContactInfo{
			Helpline: "1073",
			Email:    "municipal@local.gov.in",
		},
	},
	{
		Name:        "State Police Department",
		Code:        "POLICE",
		Level:       domain.LevelState,
		Endpoint:    "/cpgrams/departments/POLICE/submit",
		Description: "Law and order, crime prevention, traffic management",
		Keywords: []string{
			"police", "crime", "theft", "robbery", "traffic", "challan",
			"fir", "complaint", "law order", "security", "patrol",
			"traffic signal", "traffic police", "women safety", "cyber crime",
			"police station", "constable", "inspector", "violence",
		},
		Weight: 9.5,
		Contact: domain.ContactInfo{
			Helpline: "100",
			Email:    "police@state.gov.in",
		},
	},
	{
		Name:        "Pollution Control Board",
		Code:        "POLLUTION",
		Level:       domain.LevelState,
		Endpoint:    "/cpgrams/departments/POLLUTION/submit",
		Description: "Environmental protection, pollution control, waste management",
		Keywords: []string{
			"pollution", "environment", "air quality", "water pollution",
			"noise pollution", "industrial waste", "smoke", "dust",
			"chemical", "factory", "emission", "environmental clearance",
			"green belt", "tree cutting", "forest", "wildlife",
		},
		Weight: 8.4,
		Contact: domain.ContactInfo{
			Helpline: "1800-11-0909",
			Email:    "pcb@state.gov.in",
		},
	},
}

// issuePattern names a recognizable complaint shape. Matches surface the
// name in the matched-keyword list but carry no department weight of
// their own.
type issuePattern struct {
	name    string
	pattern *regexp.Regexp
}

var issuePatterns = []issuePattern{
	{"road_issues", regexp.MustCompile(`(?i)\b(pothole|crack|broken.*road|road.*repair|traffic.*jam)\b`)},
	{"water_issues", regexp.MustCompile(`(?i)\b(no.*water|water.*problem|leak|pipe.*burst|drainage)\b`)},
	{"electricity_issues", regexp.MustCompile(`(?i)\b(power.*cut|no.*electricity|transformer|wire.*problem)\b`)},
	{"garbage_issues", regexp.MustCompile(`(?i)\b(garbage|waste|dirty|cleaning|dustbin)\b`)},
	{"health_issues", regexp.MustCompile(`(?i)\b(hospital|doctor|medical|health.*problem|emergency)\b`)},
}

// contextPatterns add a flat bonus when department-specific phrasing
// appears in the text. Every listed department receives a score entry even
// without a match, which keeps it reachable by later boosts.
var contextPatterns = []struct {
	code     string
	patterns []*regexp.Regexp
}{
	{"MORTH", []*regexp.Regexp{
		regexp.MustCompile(`(?i)national.*highway`),
		regexp.MustCompile(`(?i)nh\s*\d+`),
		regexp.MustCompile(`(?i)state.*highway`),
	}},
	{"MOJS", []*regexp.Regexp{
		regexp.MustCompile(`(?i)drinking.*water`),
		regexp.MustCompile(`(?i)water.*supply`),
		regexp.MustCompile(`(?i)bore.*well`),
	}},
	{"MOP", []*regexp.Regexp{
		regexp.MustCompile(`(?i)power.*supply`),
		regexp.MustCompile(`(?i)electricity.*bill`),
		regexp.MustCompile(`(?i)load.*shedding`),
	}},
	{"MOHFW", []*regexp.Regexp{
		regexp.MustCompile(`(?i)government.*hospital`),
		regexp.MustCompile(`(?i)primary.*health`),
		regexp.MustCompile(`(?i)medical.*emergency`),
	}},
	{"MUNICIPAL", []*regexp.Regexp{
		regexp.MustCompile(`(?i)street.*light`),
		regexp.MustCompile(`(?i)garbage.*collection`),
		regexp.MustCompile(`(?i)municipal.*corporation`),
	}},
}

// categoryDepartmentBoosts maps a vision category to the departments it
// vouches for. Categories beyond the complaint taxonomy (agriculture,
// police, environment) can still arrive through a vision hint.
var categoryDepartmentBoosts = map[string][]string{
	"roads":       {"MORTH", "PWD", "MUNICIPAL"},
	"water":       {"MOJS", "MUNICIPAL"},
	"electricity": {"MOP"},
	"sanitation":  {"MOHUA", "MUNICIPAL"},
	"healthcare":  {"MOHFW"},
	"education":   {"MOE"},
	"transport":   {"MORTH", "RAILWAYS"},
	"food_safety": {"MOFPD"},
	"agriculture": {"MOAFW"},
	"police":      {"POLICE"},
	"environment": {"POLLUTION"},
}

// Address terms that shift scores toward the matching jurisdiction level.
var (
	localLocationTerms   = []string{"ward", "colony", "society", "street", "lane"}
	stateLocationTerms   = []string{"district", "taluka", "block", "mandal"}
	highwayLocationTerms = []string{"national highway", "nh", "expressway"}

	localBoostDepartments = []string{"MUNICIPAL", "PWD"}
	stateBoostDepartments = []string{"PWD", "POLICE", "POLLUTION"}
)

// baseSubmissionFields are required on every CPGRAMS submission.
var baseSubmissionFields = []string{
	"complaint_description",
	"complainant_name",
	"complainant_mobile",
	"complainant_address",
	"incident_location",
	"category",
	"priority",
}

// departmentExtraFields are appended per department.
var departmentExtraFields = map[string][]string{
	"MORTH":    {"highway_number", "km_post"},
	"MOJS":     {"water_source_type", "quality_issue"},
	"MOP":      {"power_connection_number", "outage_duration"},
	"MOHFW":    {"hospital_name", "emergency_level"},
	"RAILWAYS": {"train_number", "station_name"},
	"POLICE":   {"incident_type", "urgency_level"},
}

// levelResponseTimes estimates turnaround by department level. Police and
// health run on their own clock regardless of level.
var levelResponseTimes = map[string]string{
	domain.LevelLocal:    "3-7 days",
	domain.LevelDistrict: "7-15 days",
	domain.LevelState:    "15-30 days",
	domain.LevelCentral:  "30-60 days",
}

var emergencyDepartments = map[string]bool{
	"POLICE": true,
	"MOHFW":  true,
}
