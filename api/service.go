package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velaraptor/pocas-backend/schema"
	"github.com/velaraptor/pocas-backend/store"
)

// getServices returns every listing
func (s *Server) getServices(c *gin.Context) {
	services, err := s.store.AllServices(c)
	if shouldInterupt(err, c) {
		return
	}

	if len(services) == 0 {
		abortWithEncoding(c, http.StatusNotFound, errorServicesNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services":        services,
		"num_of_services": len(services),
	})
}

// createService geocodes and inserts a new listing. A listing whose address
// does not resolve is stored as an online-only service with no location.
func (s *Server) createService(c *gin.Context) {
	var params schema.Service
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Name == "" || params.GeneralTopic == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	loc, err := s.geocoder.Geocode(c, fullAddress(params))
	if err == nil {
		lat, lon := loc.Lat, loc.Lon
		params.Lat = &lat
		params.Lon = &lon
		params.Location = &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		}
	} else {
		log.WithError(err).Warning("service address did not resolve, storing as online service")
		params.Lat = nil
		params.Lon = nil
		params.Location = nil
		params.OnlineService = true
	}

	id, err := s.store.CreateService(c, params)
	if err == store.ErrDuplicateService {
		abortWithEncoding(c, http.StatusConflict, errorDuplicateService, err)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func fullAddress(service schema.Service) string {
	parts := []string{service.Address, service.City, service.State}
	if service.ZipCode != nil {
		parts = append(parts, fmt.Sprintf("%d", *service.ZipCode))
	}

	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			fields = append(fields, part)
		}
	}
	return strings.Join(fields, " ")
}
