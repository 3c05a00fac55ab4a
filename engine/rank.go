package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/velaraptor/pocas-backend/schema"
)

// Location columns carry a much smaller weight than tag columns so that
// proximity breaks ties between topical matches instead of overwhelming them.
const (
	locationWeight = 0.005
	tagWeight      = 1.5
)

var (
	ErrNoCandidates    = fmt.Errorf("no candidates to rank")
	ErrEmptyVocabulary = fmt.Errorf("candidates carry no tags")
)

// RankServices scores every candidate against the user profile with a
// weighted cosine similarity and returns at most topN results, highest score
// first, deduplicated by name. It is a pure function of its inputs: stable
// sorting keeps identical inputs producing identical output order.
func RankServices(candidates []schema.Service, userTags []string, userLoc schema.UserLocation, topN int) ([]schema.RankedService, error) {
	if topN < 1 {
		topN = 1
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	vocabulary := tagVocabulary(candidates)
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	columns := make(map[string]int, len(vocabulary))
	for i, tag := range vocabulary {
		columns[tag] = i
	}

	matrix := make([][]float64, 0, len(candidates)+1)
	for _, candidate := range candidates {
		// online services have no coordinates; using the user's own
		// neutralizes the location component instead of skewing it
		lat, lon := userLoc.Lat, userLoc.Lon
		if candidate.Lat != nil && candidate.Lon != nil {
			lat, lon = *candidate.Lat, *candidate.Lon
		}
		matrix = append(matrix, featureRow(lat, lon, mergedTags(candidate), columns))
	}
	matrix = append(matrix, featureRow(userLoc.Lat, userLoc.Lon, userTags, columns))

	for _, row := range matrix {
		applyWeights(row)
		normalize(row)
	}

	userRow := matrix[len(matrix)-1]
	ranked := make([]schema.RankedService, len(candidates))
	for i, candidate := range candidates {
		score := dot(matrix[i], userRow)
		ranked[i] = schema.RankedService{Service: candidate, Score: &score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Score > *ranked[j].Score
	})

	seen := make(map[string]bool)
	results := make([]schema.RankedService, 0, topN)
	for _, r := range ranked {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true

		// the coordinate substitution above was scoring-only
		if r.OnlineService {
			r.Lat = nil
			r.Lon = nil
		}

		results = append(results, r)
		if len(results) == topN {
			break
		}
	}

	return results, nil
}

// mergedTags treats the primary topic as one more tag for similarity purposes
func mergedTags(service schema.Service) []string {
	tags := make([]string, 0, len(service.Tags)+1)
	tags = append(tags, service.Tags...)
	if service.GeneralTopic != "" {
		tags = append(tags, service.GeneralTopic)
	}
	return tags
}

// tagVocabulary is the sorted union of merged tags across all candidates;
// each entry becomes one binary feature column.
func tagVocabulary(candidates []schema.Service) []string {
	seen := make(map[string]bool)
	vocabulary := make([]string, 0)
	for _, candidate := range candidates {
		for _, tag := range mergedTags(candidate) {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			vocabulary = append(vocabulary, tag)
		}
	}
	sort.Strings(vocabulary)
	return vocabulary
}

// featureRow builds [lat, lon, tag memberships...]. Writing 1 per membership
// clamps any duplicate-tag artifacts from the merge.
func featureRow(lat, lon float64, tags []string, columns map[string]int) []float64 {
	row := make([]float64, 2+len(columns))
	row[0] = lat
	row[1] = lon
	for _, tag := range tags {
		if i, ok := columns[tag]; ok {
			row[2+i] = 1
		}
	}
	return row
}

func applyWeights(row []float64) {
	row[0] *= locationWeight
	row[1] *= locationWeight
	for i := 2; i < len(row); i++ {
		row[i] *= tagWeight
	}
}

// normalize scales the row to unit length so candidates with many tags do not
// gain similarity from magnitude alone. Zero rows stay zero, which makes
// their cosine similarity zero instead of NaN.
func normalize(row []float64) {
	norm := math.Sqrt(dot(row, row))
	if norm == 0 {
		return
	}
	for i := range row {
		row[i] /= norm
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
