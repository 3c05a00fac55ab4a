package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/velaraptor/pocas-backend/schema"
)

func TestZipCodes(t *testing.T) {
	s, m, _ := newTestServer(t)

	m.EXPECT().ZipCodeCounts(gomock.Any()).Return([]schema.ZipCodeCount{
		{ZipCode: "78701", Count: 12},
		{ZipCode: "78702", Count: 3},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/platform/zip_codes", s.zipCodes)

	req := httptest.NewRequest("GET", "/platform/zip_codes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp struct {
		ZipCodes []schema.ZipCodeCount `json:"zip_codes"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp.ZipCodes, 2)
	assert.Equal(t, "78701", jResp.ZipCodes[0].ZipCode)
}

func TestUserDataWindow(t *testing.T) {
	s, m, _ := newTestServer(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	m.EXPECT().UserDataByZip(gomock.Any(), "78701", &start, &end).
		Return([]schema.UserData{
			{ZipCode: "78701", Answers: []int{1, 0}},
		}, nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/platform/data/:zipCode", s.userData)

	req := httptest.NewRequest("GET",
		"/platform/data/78701?start=2026-08-01T00:00:00Z&end=2026-09-01T00:00:00Z", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp struct {
		UserData []schema.UserData `json:"user_data"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp.UserData, 1)
}

func TestUserDataBadWindow(t *testing.T) {
	s, _, _ := newTestServer(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/platform/data/:zipCode", s.userData)

	req := httptest.NewRequest("GET", "/platform/data/78701?start=yesterday", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
