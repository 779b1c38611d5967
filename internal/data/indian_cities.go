// internal/data/indian_cities.go
package data

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CityCoordinates is a city centre point in decimal degrees.
type CityCoordinates struct {
	Lat float64
	Lon float64
}

// majorCityCoords maps normalized city names to their coordinates. This is
// the reference table for GPS validation and nearest-city estimation.
var majorCityCoords = map[string]CityCoordinates{
	"mumbai":         {19.0760, 72.8777},
	"delhi":          {28.7041, 77.1025},
	"bangalore":      {12.9716, 77.5946},
	"bengaluru":      {12.9716, 77.5946},
	"hyderabad":      {17.3850, 78.4867},
	"ahmedabad":      {23.0225, 72.5714},
	"chennai":        {13.0827, 80.2707},
	"kolkata":        {22.5726, 88.3639},
	"pune":           {18.5204, 73.8567},
	"jaipur":         {26.9124, 75.7873},
	"lucknow":        {26.8467, 80.9462},
	"kanpur":         {26.4499, 80.3319},
	"nagpur":         {21.1458, 79.0882},
	"indore":         {22.7196, 75.8577},
	"thane":          {19.2183, 72.9781},
	"bhopal":         {23.2599, 77.4126},
	"visakhapatnam":  {17.6868, 83.2185},
	"vadodara":       {22.3072, 73.1812},
	"ghaziabad":      {28.6692, 77.4538},
	"ludhiana":       {30.9010, 75.8573},
	"agra":           {27.1767, 78.0081},
	"nashik":         {19.9975, 73.7898},
	"faridabad":      {28.4089, 77.3178},
	"rajkot":         {22.3039, 70.8022},
	"meerut":         {28.9845, 77.7064},
	"kalyan":         {19.2437, 73.1355},
	"dombivali":      {19.2183, 73.0869},
	"howrah":         {22.5958, 88.2636},
	"ranchi":         {23.3441, 85.3096},
	"allahabad":      {25.4358, 81.8463},
	"coimbatore":     {11.0168, 76.9558},
	"jabalpur":       {23.1815, 79.9864},
	"gwalior":        {26.2183, 78.1828},
}

// cityNames is the recognizer list for the city extraction pattern, major
// metros first. Matching is case-insensitive; the matched text keeps its
// input casing.
var cityNames = []string{
	"Mumbai", "Delhi", "Bangalore", "Bengaluru", "Hyderabad", "Ahmedabad",
	"Chennai", "Kolkata", "Pune", "Jaipur", "Lucknow", "Kanpur", "Nagpur",
	"Indore", "Thane", "Bhopal", "Visakhapatnam", "Vadodara", "Firozabad",
	"Ludhiana", "Rajkot", "Agra", "Siliguri", "Nashik", "Faridabad",
	"Patiala", "Ghaziabad", "Kalyan", "Dombivali", "Howrah", "Ranchi",
	"Allahabad", "Coimbatore", "Jabalpur", "Gwalior", "Vijayawada",
	"Jodhpur", "Madurai", "Raipur", "Kota", "Chandigarh", "Guwahati",
	"Solapur", "Hubballi", "Dharwad", "Tiruchirappalli", "Salem", "Meerut",
	"Thiruvananthapuram", "Bhiwandi", "Saharanpur", "Gorakhpur", "Guntur",
	"Bikaner", "Amravati", "Noida", "Jamshedpur", "Bhilai", "Warangal",
	"Cuttack", "Kochi", "Bhavnagar", "Dehradun", "Durgapur", "Asansol",
	"Nanded", "Kolhapur", "Ajmer", "Akola", "Gulbarga", "Jamnagar",
	"Ujjain", "Loni", "Jhansi", "Ulhasnagar", "Nellore", "Jammu", "Sangli",
	"Miraj", "Kupwad", "Belgaum", "Mangalore", "Ambattur", "Tirunelveli",
	"Malegaon", "Gaya", "Jalgaon", "Udaipur", "Maheshtala",
}

// CityNames returns the recognizer list for building the city pattern.
func CityNames() []string {
	out := make([]string, len(cityNames))
	copy(out, cityNames)
	return out
}

// CoordinatesFor returns the reference coordinates of a major city.
func CoordinatesFor(city string) (CityCoordinates, bool) {
	if city == "" {
		return CityCoordinates{}, false
	}
	coords, ok := majorCityCoords[normalizeForLookup(city)]
	return coords, ok
}

// NearestCity returns the major city closest to the given point and the
// straight-line distance in degrees. Euclidean distance is deliberate: at
// city-table granularity the geodesic correction does not change the
// winner.
func NearestCity(lat, lon float64) (string, float64) {
	nearest := ""
	minDistance := math.Inf(1)
	for city, coords := range majorCityCoords {
		d := math.Hypot(lat-coords.Lat, lon-coords.Lon)
		if d < minDistance || (d == minDistance && city < nearest) {
			minDistance = d
			nearest = city
		}
	}
	return nearest, minDistance
}

// normalizeForLookup prepares a city name for map lookup.
func normalizeForLookup(city string) string {
	s := strings.ToLower(strings.TrimSpace(city))
	s = removeAccents(s)
	return s
}

// removeAccents strips diacritical marks from a string.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
