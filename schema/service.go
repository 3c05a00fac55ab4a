package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ServiceCollection = "services"
)

// GeoJSON - mongodb geojson point stored on the `loc` field. A nil location
// marks an online-only service that is exempt from radius filtering.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// Service - a social-service listing. Listings are read-only to the ranking
// engine; `name` is the deduplication key within one ranking pass.
type Service struct {
	ObjectID      primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ID            string             `json:"id,omitempty" bson:"-"`
	Name          string             `json:"name" bson:"name"`
	Phone         *int64             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	GeneralTopic  string             `json:"general_topic" bson:"general_topic"`
	Tags          []string           `json:"tags" bson:"tags"`
	City          string             `json:"city,omitempty" bson:"city,omitempty"`
	State         string             `json:"state,omitempty" bson:"state,omitempty"`
	Lat           *float64           `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon           *float64           `json:"lon,omitempty" bson:"lon,omitempty"`
	ZipCode       *int               `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	WebSite       string             `json:"web_site,omitempty" bson:"web_site,omitempty"`
	Days          string             `json:"days,omitempty" bson:"days,omitempty"`
	Hours         string             `json:"hours,omitempty" bson:"hours,omitempty"`
	OnlineService bool               `json:"online_service" bson:"online_service"`
	Location      *GeoJSON           `json:"-" bson:"loc,omitempty"`
}

// RankedService - a service augmented with the similarity score of one
// ranking pass. Score is nil when ranking fell back to plain query order,
// which keeps `pocas_score` out of the response payload.
type RankedService struct {
	Service `bson:",inline"`
	Score   *float64 `json:"pocas_score,omitempty" bson:"pocas_score,omitempty"`
}

// UserLocation - resolved coordinates of the requesting user
type UserLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
