// internal/data/indian_states.go
package data

// stateNames enumerates Indian states and union territories with their
// common abbreviations, full names before abbreviations so the pattern
// prefers the longer match.
var stateNames = []string{
	"Andhra Pradesh", "AP", "Arunachal Pradesh", "Assam", "Bihar",
	"Chhattisgarh", "CG", "Goa", "Gujarat", "GJ", "Haryana", "HR",
	"Himachal Pradesh", "HP", "Jharkhand", "JH", "Karnataka", "KA",
	"Kerala", "KL", "Madhya Pradesh", "MP", "Maharashtra", "MH",
	"Manipur", "MN", "Meghalaya", "ML", "Mizoram", "MZ", "Nagaland", "NL",
	"Odisha", "OR", "Punjab", "PB", "Rajasthan", "RJ", "Sikkim", "SK",
	"Tamil Nadu", "TN", "Telangana", "TS", "Tripura", "TR",
	"Uttar Pradesh", "UP", "Uttarakhand", "UK", "West Bengal", "WB",
	"Delhi", "DL", "NCR", "Puducherry", "PY", "Chandigarh", "CH",
	"Dadra and Nagar Haveli", "DN", "Daman and Diu", "DD", "Lakshadweep",
	"LD", "Jammu and Kashmir", "JK", "Ladakh", "LA",
}

// StateNames returns the recognizer list for building the state pattern.
func StateNames() []string {
	out := make([]string, len(stateNames))
	copy(out, stateNames)
	return out
}
