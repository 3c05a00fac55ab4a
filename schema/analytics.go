package schema

import (
	"time"
)

const (
	UserDataCollection = "user_data"
	IPHitCollection    = "ip_hits"
)

// UserData - one anonymized questionnaire submission kept for platform
// analytics. Only the birth year is retained from the date of birth.
type UserData struct {
	Name        string    `json:"name" bson:"name"`
	DOBYear     int       `json:"dob" bson:"dob"`
	ZipCode     string    `json:"zip_code" bson:"zip_code"`
	Answers     []int     `json:"answers" bson:"answers"`
	TopServices []string  `json:"top_services" bson:"top_services"`
	Time        time.Time `json:"time" bson:"time"`
}

// IPHit - one request against a rate-limited endpoint
type IPHit struct {
	Name      string    `json:"name" bson:"name"`
	IPAddress string    `json:"ip_address" bson:"ip_address"`
	Endpoint  string    `json:"endpoint" bson:"endpoint"`
	Date      time.Time `json:"date" bson:"date"`
}

// ZipCodeCount - aggregate of submissions per zip code
type ZipCodeCount struct {
	ZipCode string `json:"zip_code" bson:"_id"`
	Count   int64  `json:"count" bson:"count"`
}
