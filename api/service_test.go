package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/velaraptor/pocas-backend/geo"
	"github.com/velaraptor/pocas-backend/schema"
	"github.com/velaraptor/pocas-backend/store"
)

func TestGetServices(t *testing.T) {
	s, m, _ := newTestServer(t)

	lat, lon := 30.3, -97.7
	m.EXPECT().AllServices(gomock.Any()).Return([]schema.Service{
		{Name: "Food Pantry", GeneralTopic: "Food", Lat: &lat, Lon: &lon},
		{Name: "Legal Aid", GeneralTopic: "Legal", OnlineService: true},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/services", s.getServices)

	req := httptest.NewRequest("GET", "/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp struct {
		Services      []schema.Service `json:"services"`
		NumOfServices int              `json:"num_of_services"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, 2, jResp.NumOfServices)
	assert.Equal(t, "Food Pantry", jResp.Services[0].Name)
}

func TestGetServicesEmpty(t *testing.T) {
	s, m, _ := newTestServer(t)

	m.EXPECT().AllServices(gomock.Any()).Return([]schema.Service{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/services", s.getServices)

	req := httptest.NewRequest("GET", "/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorServicesNotFound.Code, jResp.Code)
}

func TestCreateService(t *testing.T) {
	s, m, g := newTestServer(t)

	g.EXPECT().Geocode(gomock.Any(), "100 Congress Ave Austin TX 78701").
		Return(schema.UserLocation{Lat: 30.26, Lon: -97.74}, nil).
		Times(1)
	m.EXPECT().CreateService(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, service schema.Service) (string, error) {
			assert.NotNil(t, service.Lat)
			assert.NotNil(t, service.Location)
			assert.Equal(t, []float64{-97.74, 30.26}, service.Location.Coordinates)
			assert.False(t, service.OnlineService)
			return "5e8f2f8f2f8f2f8f2f8f2f8f", nil
		}).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/services", s.createService)

	zip := 78701
	w := postJSON(router, "/services", schema.Service{
		Name:         "Food Pantry",
		GeneralTopic: "Food",
		Address:      "100 Congress Ave",
		City:         "Austin",
		State:        "TX",
		ZipCode:      &zip,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp map[string]string
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "5e8f2f8f2f8f2f8f2f8f2f8f", jResp["id"])
}

func TestCreateServiceUnresolvedAddress(t *testing.T) {
	s, m, g := newTestServer(t)

	g.EXPECT().Geocode(gomock.Any(), gomock.Any()).
		Return(schema.UserLocation{}, geo.ErrAddressNotFound).
		Times(1)
	m.EXPECT().CreateService(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, service schema.Service) (string, error) {
			assert.Nil(t, service.Lat)
			assert.Nil(t, service.Location)
			assert.True(t, service.OnlineService)
			return "5e8f2f8f2f8f2f8f2f8f2f90", nil
		}).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/services", s.createService)

	w := postJSON(router, "/services", schema.Service{
		Name:         "Online Counseling",
		GeneralTopic: "Health",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateServiceDuplicate(t *testing.T) {
	s, m, g := newTestServer(t)

	g.EXPECT().Geocode(gomock.Any(), gomock.Any()).
		Return(schema.UserLocation{Lat: 30.26, Lon: -97.74}, nil).
		Times(1)
	m.EXPECT().CreateService(gomock.Any(), gomock.Any()).
		Return("", store.ErrDuplicateService).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/services", s.createService)

	w := postJSON(router, "/services", schema.Service{
		Name:         "Food Pantry",
		GeneralTopic: "Food",
		Address:      "100 Congress Ave",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorDuplicateService.Code, jResp.Code)
}

func TestCreateServiceMissingName(t *testing.T) {
	s, _, _ := newTestServer(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/services", s.createService)

	w := postJSON(router, "/services", schema.Service{GeneralTopic: "Food"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQuestionsEmpty(t *testing.T) {
	s, m, _ := newTestServer(t)

	m.EXPECT().FetchQuestions(gomock.Any()).Return([]schema.Question{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/questions", s.getQuestions)

	req := httptest.NewRequest("GET", "/questions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorQuestionsNotFound.Code, jResp.Code)
}

func TestBasicAuthentication(t *testing.T) {
	s, _, _ := newTestServer(t)

	viper.Set("server.apiuser", "pocas")
	viper.Set("server.apipass", "secret")
	defer viper.Set("server.apiuser", "")
	defer viper.Set("server.apipass", "")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", s.basicAuthentication(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest("GET", "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="pocas"`, w.Header().Get("WWW-Authenticate"))

	req = httptest.NewRequest("GET", "/guarded", nil)
	req.SetBasicAuth("pocas", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest("GET", "/guarded", nil)
	req.SetBasicAuth("pocas", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
