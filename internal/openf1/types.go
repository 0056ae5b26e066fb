package openf1

import "time"

type session struct {
	SessionKey       int    `json:"session_key"`
	SessionName      string `json:"session_name"`
	SessionType      string `json:"session_type"`
	MeetingKey       int    `json:"meeting_key"`
	Location         string `json:"location"`
	CountryName      string `json:"country_name"`
	CircuitShortName string `json:"circuit_short_name"`
	Year             int    `json:"year"`
	DateStart        string `json:"date_start"`
}

type meeting struct {
	MeetingKey  int    `json:"meeting_key"`
	MeetingName string `json:"meeting_name"`
}

type driver struct {
	DriverNumber int    `json:"driver_number"`
	NameAcronym  string `json:"name_acronym"`
	FullName     string `json:"full_name"`
	TeamColour   string `json:"team_colour"`
}

type lap struct {
	LapNumber   int      `json:"lap_number"`
	LapDuration *float64 `json:"lap_duration"`
	DateStart   *string  `json:"date_start"`
}

type location struct {
	Date string  `json:"date"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type carData struct {
	Date  string  `json:"date"`
	Speed float64 `json:"speed"`
}

// parseDate reads the ISO 8601 timestamps the API returns.
func parseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
