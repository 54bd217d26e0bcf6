package location

// citiesByState is the fixed state→city table every listing and profile
// location is validated against. Unknown states and out-of-state cities
// are rejected at validation time.
var citiesByState = map[string][]string{
	"Delhi":          {"New Delhi", "Dwarka", "Rohini", "Saket"},
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad"},
	"Karnataka":      {"Bengaluru", "Mysuru", "Mangaluru", "Hubballi"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara", "Rajkot"},
	"Rajasthan":      {"Jaipur", "Jodhpur", "Udaipur", "Kota"},
	"West Bengal":    {"Kolkata", "Howrah", "Durgapur", "Siliguri"},
	"Uttar Pradesh":  {"Lucknow", "Kanpur", "Varanasi", "Agra", "Noida"},
	"Telangana":      {"Hyderabad", "Warangal", "Nizamabad"},
	"Kerala":         {"Thiruvananthapuram", "Kochi", "Kozhikode"},
	"Punjab":         {"Ludhiana", "Amritsar", "Jalandhar"},
	"Madhya Pradesh": {"Bhopal", "Indore", "Gwalior", "Jabalpur"},
}

// ValidState reports whether the state exists in the table.
func ValidState(state string) bool {
	_, ok := citiesByState[state]
	return ok
}

// ValidCity reports whether city belongs to the given state's city set.
func ValidCity(state, city string) bool {
	for _, c := range citiesByState[state] {
		if c == city {
			return true
		}
	}
	return false
}

// States returns all known states.
func States() []string {
	out := make([]string, 0, len(citiesByState))
	for s := range citiesByState {
		out = append(out, s)
	}
	return out
}

// Cities returns the city set for a state (nil for unknown states).
func Cities(state string) []string {
	return citiesByState[state]
}
