package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/velaraptor/pocas-backend/engine"
	"github.com/velaraptor/pocas-backend/geo"
	geomocks "github.com/velaraptor/pocas-backend/geo/mocks"
	"github.com/velaraptor/pocas-backend/schema"
	storemocks "github.com/velaraptor/pocas-backend/store/mocks"
)

func newTestServer(t *testing.T) (*Server, *storemocks.MockPocasStore, *geomocks.MockGeocoder) {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	m := storemocks.NewMockPocasStore(ctl)
	g := geomocks.NewMockGeocoder(ctl)

	s := &Server{
		store:    m,
		geocoder: g,
		engine:   engine.New(m, g),
	}

	return s, m, g
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var topNQuestions = []schema.Question{
	{ID: 1, Question: "housing question", Tags: []string{"Housing"}, MainTag: "Housing"},
	{ID: 2, Question: "food question", Tags: []string{"Food"}, MainTag: "Food"},
}

func TestTopN(t *testing.T) {
	s, m, g := newTestServer(t)

	loc := schema.UserLocation{Lat: 30.27, Lon: -97.74}
	lat, lon := 30.3, -97.7

	g.EXPECT().Geocode(gomock.Any(), "Austin, TX").Return(loc, nil).Times(1)
	m.EXPECT().FetchQuestions(gomock.Any()).Return(topNQuestions, nil).Times(1)
	m.EXPECT().FetchCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Service{
			{Name: "Food Pantry", GeneralTopic: "Food", Tags: []string{"Food"}, Lat: &lat, Lon: &lon},
		}, nil).
		Times(1)
	m.EXPECT().SaveUserData(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.EXPECT().SaveIPHit(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/top_n", s.topN)

	w := postJSON(router, "/top_n", map[string]interface{}{
		"top_n":   3,
		"dob":     "03011998",
		"answers": []int{0, 1},
		"address": "Austin, TX",
	})

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Services      []schema.RankedService `json:"services"`
		NumOfServices int                    `json:"num_of_services"`
		UserLoc       schema.UserLocation    `json:"user_loc"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, jResp.NumOfServices)
	assert.Equal(t, loc, jResp.UserLoc)
	assert.Equal(t, "Food Pantry", jResp.Services[0].Name)
	assert.NotNil(t, jResp.Services[0].Score)
}

func TestTopNInvalidDOB(t *testing.T) {
	s, _, _ := newTestServer(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/top_n", s.topN)

	w := postJSON(router, "/top_n", map[string]interface{}{
		"top_n":   3,
		"dob":     "not-a-date",
		"answers": []int{0, 1},
		"address": "Austin, TX",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorInvalidDateOfBirth.Code, jResp.Code)
}

func TestTopNAnswerMismatch(t *testing.T) {
	s, m, g := newTestServer(t)

	loc := schema.UserLocation{Lat: 30.27, Lon: -97.74}
	g.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(loc, nil).Times(1)
	m.EXPECT().FetchQuestions(gomock.Any()).Return(topNQuestions, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/top_n", s.topN)

	w := postJSON(router, "/top_n", map[string]interface{}{
		"top_n":   3,
		"dob":     "03011998",
		"answers": []int{0, 1, 1},
		"address": "Austin, TX",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorAnswerCountMismatch.Code, jResp.Code)
}

func TestTopNUnresolvedAddress(t *testing.T) {
	s, _, g := newTestServer(t)

	g.EXPECT().Geocode(gomock.Any(), gomock.Any()).
		Return(schema.UserLocation{}, geo.ErrAddressNotFound).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/top_n", s.topN)

	w := postJSON(router, "/top_n", map[string]interface{}{
		"top_n":   3,
		"dob":     "03011998",
		"answers": []int{0, 1},
		"address": "nowhere at all",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorLocationUnresolved.Code, jResp.Code)
}

func TestRadiusCheck(t *testing.T) {
	s, m, g := newTestServer(t)

	loc := schema.UserLocation{Lat: 30.27, Lon: -97.74}
	g.EXPECT().Geocode(gomock.Any(), "Austin, TX").Return(loc, nil).Times(1)
	m.EXPECT().CheckRadius(gomock.Any(), loc, gomock.Any()).Return(true, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/radius_check", s.radiusCheck)

	w := postJSON(router, "/radius_check", map[string]interface{}{
		"address": "Austin, TX",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp map[string]bool
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.True(t, jResp["radius_status"])
}
