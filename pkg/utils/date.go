package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta datas no formato 2006-01-02. String vazia
// retorna data zero sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
