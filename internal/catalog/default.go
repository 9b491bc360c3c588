package catalog

import "github.com/jalvord/skyward/internal/domain"

// Default returns the built-in private-pilot catalog. Hand-authored and
// acyclic by construction; Validate checks both properties at startup.
func Default() *Catalog {
	return &Catalog{
		Maneuvers: map[string]domain.Maneuver{
			"certs_documents":     {Code: "certs_documents", Name: "certs documents", Category: "preflight"},
			"weather_information": {Code: "weather_information", Name: "weather information", Category: "preflight"},
			"national_airspace":   {Code: "national_airspace", Name: "national airspace", Category: "preflight"},
			"slow_flight":         {Code: "slow_flight", Name: "slow flight", Category: "airwork"},
			"steep_turns":         {Code: "steep_turns", Name: "steep turns", Category: "airwork"},
			"power_off_stall":     {Code: "power_off_stall", Name: "power off stall", Category: "airwork"},
			"power_on_stall":      {Code: "power_on_stall", Name: "power on stall", Category: "airwork"},
			"normal_takeoff":      {Code: "normal_takeoff", Name: "normal takeoff", Category: "pattern"},
			"normal_landing":      {Code: "normal_landing", Name: "normal landing", Category: "pattern"},
			"traffic_pattern":     {Code: "traffic_pattern", Name: "traffic pattern", Category: "pattern"},
			"short_field_takeoff": {Code: "short_field_takeoff", Name: "short field takeoff", Category: "pattern"},
			"short_field_landing": {Code: "short_field_landing", Name: "short field landing", Category: "pattern"},
			"soft_field_takeoff":  {Code: "soft_field_takeoff", Name: "soft field takeoff", Category: "pattern"},
			"soft_field_landing":  {Code: "soft_field_landing", Name: "soft field landing", Category: "pattern"},
			"ground_reference":    {Code: "ground_reference", Name: "ground reference", Category: "airwork"},
			"emergency_descent":   {Code: "emergency_descent", Name: "emergency descent", Category: "emergency"},
			"emergency_approach":  {Code: "emergency_approach", Name: "emergency approach", Category: "emergency"},
			"basic_instrument":    {Code: "basic_instrument", Name: "basic instrument", Category: "instrument"},
			"navigation_pilotage": {Code: "navigation_pilotage", Name: "navigation pilotage", Category: "cross_country"},
			"diversion":           {Code: "diversion", Name: "diversion", Category: "cross_country"},
			"lost_procedures":     {Code: "lost_procedures", Name: "lost procedures", Category: "cross_country"},
			"night_operations":    {Code: "night_operations", Name: "night operations", Category: "night"},
		},
		Tasks: []domain.TrainingTask{
			{Title: "Pre-flight Procedures", Category: domain.TaskFlight, EstimatedMin: 120},
			{Title: "Basic Flight Maneuvers", Category: domain.TaskFlight, EstimatedMin: 120},
			{Title: "Takeoffs and Landings", Category: domain.TaskFlight, EstimatedMin: 120},
			{Title: "Slow Flight and Stalls", Category: domain.TaskFlight, EstimatedMin: 120},
			{Title: "Ground Reference Maneuvers", Category: domain.TaskFlight, EstimatedMin: 90},
			{Title: "Emergency Procedures", Category: domain.TaskFlight, EstimatedMin: 120},
			{Title: "Short and Soft Field Operations", Category: domain.TaskFlight, EstimatedMin: 120},
			{Title: "Cross-Country Flight", Category: domain.TaskFlight, EstimatedMin: 180},
			{Title: "Night Flying", Category: domain.TaskFlight, EstimatedMin: 120},
			{Title: "Instrument Fundamentals", Category: domain.TaskSimulator, EstimatedMin: 90},
			{Title: "Simulated Emergencies", Category: domain.TaskSimulator, EstimatedMin: 90},
			{Title: "Aircraft Systems", Category: domain.TaskGroundSchool, EstimatedMin: 90},
			{Title: "Aviation Weather", Category: domain.TaskGroundSchool, EstimatedMin: 90},
			{Title: "Airspace and Charts", Category: domain.TaskGroundSchool, EstimatedMin: 90},
			{Title: "Regulations and Documents", Category: domain.TaskGroundSchool, EstimatedMin: 60},
			{Title: "Aerodynamics", Category: domain.TaskGroundSchool, EstimatedMin: 90},
			{Title: "Navigation and Flight Planning", Category: domain.TaskGroundSchool, EstimatedMin: 120},
			{Title: "Knowledge Test Review", Category: domain.TaskExam, EstimatedMin: 120},
			{Title: "Checkride Oral Prep", Category: domain.TaskExam, EstimatedMin: 120},
		},
		TaskManeuvers: map[string][]string{
			"Pre-flight Procedures":           {"certs_documents", "weather_information", "national_airspace"},
			"Basic Flight Maneuvers":          {"slow_flight", "steep_turns"},
			"Takeoffs and Landings":           {"normal_takeoff", "normal_landing", "traffic_pattern"},
			"Slow Flight and Stalls":          {"slow_flight", "power_off_stall", "power_on_stall"},
			"Ground Reference Maneuvers":      {"ground_reference"},
			"Emergency Procedures":            {"emergency_descent", "emergency_approach"},
			"Short and Soft Field Operations": {"short_field_takeoff", "short_field_landing", "soft_field_takeoff", "soft_field_landing"},
			"Cross-Country Flight":            {"navigation_pilotage", "diversion", "lost_procedures"},
			"Night Flying":                    {"night_operations"},
			"Instrument Fundamentals":         {"basic_instrument"},
			"Simulated Emergencies":           {"emergency_approach"},
		},
		TaskPrereqs: map[string][]string{
			"Takeoffs and Landings":           {"Pre-flight Procedures", "Basic Flight Maneuvers"},
			"Slow Flight and Stalls":          {"Basic Flight Maneuvers"},
			"Ground Reference Maneuvers":      {"Basic Flight Maneuvers"},
			"Emergency Procedures":            {"Slow Flight and Stalls"},
			"Short and Soft Field Operations": {"Takeoffs and Landings"},
			"Cross-Country Flight":            {"Takeoffs and Landings", "Navigation and Flight Planning"},
			"Night Flying":                    {"Cross-Country Flight"},
			"Simulated Emergencies":           {"Emergency Procedures"},
			"Knowledge Test Review":           {"Aviation Weather", "Airspace and Charts", "Regulations and Documents"},
			"Checkride Oral Prep":             {"Knowledge Test Review"},
		},
		TopicPrep: map[string][]string{
			"Pre-flight Procedures":  {"Regulations and Documents", "Aviation Weather"},
			"Basic Flight Maneuvers": {"Aerodynamics"},
			"Takeoffs and Landings":  {"Aerodynamics"},
			"Slow Flight and Stalls": {"Aerodynamics"},
			"Emergency Procedures":   {"Aircraft Systems"},
			"Cross-Country Flight":   {"Navigation and Flight Planning", "Aviation Weather"},
			"Night Flying":           {"Aircraft Systems"},
		},
	}
}
