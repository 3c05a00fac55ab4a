package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// zipCodes groups questionnaire submissions by zip code
func (s *Server) zipCodes(c *gin.Context) {
	counts, err := s.store.ZipCodeCounts(c)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"zip_codes": counts})
}

// userData returns submissions for one zip code, optionally bounded by an
// RFC3339 start/end window.
func (s *Server) userData(c *gin.Context) {
	zipCode := c.Param("zipCode")

	var start, end *time.Time
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		end = &t
	}

	records, err := s.store.UserDataByZip(c, zipCode, start, end)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_data": records})
}
