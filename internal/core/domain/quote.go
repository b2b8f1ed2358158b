package domain

type Quote struct {
	Text      string `json:"text"`
	Date      string `json:"date"`
	DayOfYear int    `json:"day_of_year"`
}
