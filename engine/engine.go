package engine

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/velaraptor/pocas-backend/geo"
	"github.com/velaraptor/pocas-backend/schema"
	"github.com/velaraptor/pocas-backend/store"
)

const logPrefix = "engine"

var (
	ErrLocationUnresolved = fmt.Errorf("could not resolve address")
	ErrInvalidTopN        = fmt.Errorf("top_n must be at least 1")
)

// Engine matches service listings to a user profile. It is stateless and
// request-scoped; concurrent invocations share nothing but the collaborators.
type Engine struct {
	store    store.PocasStore
	geocoder geo.Geocoder
	now      func() time.Time
}

// New - new matching engine over the given collaborators
func New(pocasStore store.PocasStore, geocoder geo.Geocoder) *Engine {
	return &Engine{
		store:    pocasStore,
		geocoder: geocoder,
		now:      time.Now,
	}
}

// TopResults runs one questionnaire end to end: geocode the address, resolve
// the user tags, fetch eligible candidates and rank them. A topN of zero is
// clamped to one; a negative topN is rejected. When ranking degenerates the
// first topN candidates are returned unscored in retrieval order.
func (e *Engine) TopResults(ctx context.Context, topN int, dob time.Time, answers []int, address string) ([]schema.RankedService, schema.UserLocation, error) {
	if topN == 0 {
		topN = 1
	}
	if topN < 1 {
		return nil, schema.UserLocation{}, ErrInvalidTopN
	}

	loc, err := e.geocoder.Geocode(ctx, address)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"address": address,
			"error":   err,
		}).Warning("geocode user address")
		return nil, schema.UserLocation{}, ErrLocationUnresolved
	}

	questions, err := e.store.FetchQuestions(ctx)
	if err != nil {
		return nil, loc, err
	}

	userTags, err := ResolveTags(answers, questions, Age(dob, e.now()))
	if err != nil {
		return nil, loc, err
	}
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"tags":   userTags,
	}).Debug("resolved user tags")

	candidates, err := e.store.FetchCandidates(ctx, loc, store.DefaultRadiusMeters, userTags)
	if err != nil {
		return nil, loc, err
	}
	if len(candidates) == 0 {
		return []schema.RankedService{}, loc, nil
	}

	return e.rankWithFallback(candidates, userTags, loc, topN), loc, nil
}

// CheckRadius reports whether any listing is reachable from the address
func (e *Engine) CheckRadius(ctx context.Context, address string) (bool, error) {
	loc, err := e.geocoder.Geocode(ctx, address)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"address": address,
			"error":   err,
		}).Warning("geocode user address")
		return false, ErrLocationUnresolved
	}

	return e.store.CheckRadius(ctx, loc, store.DefaultRadiusMeters)
}

// rankWithFallback never fails: any ranking error or panic degrades to the
// unscored retrieval order so the user still gets a list back.
func (e *Engine) rankWithFallback(candidates []schema.Service, userTags []string, loc schema.UserLocation, topN int) (results []schema.RankedService) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"panic":  r,
			}).Warning("similarity ranking panicked, reverting to query results")
			results = unscored(candidates, topN)
		}
	}()

	ranked, err := RankServices(candidates, userTags, loc, topN)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warning("could not run cosine similarity, reverting to query results")
		return unscored(candidates, topN)
	}

	return ranked
}

func unscored(candidates []schema.Service, topN int) []schema.RankedService {
	if topN > len(candidates) {
		topN = len(candidates)
	}

	results := make([]schema.RankedService, 0, topN)
	for _, candidate := range candidates[:topN] {
		if candidate.OnlineService {
			candidate.Lat = nil
			candidate.Lon = nil
		}
		results = append(results, schema.RankedService{Service: candidate})
	}
	return results
}
