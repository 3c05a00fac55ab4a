package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velaraptor/pocas-backend/engine"
	"github.com/velaraptor/pocas-backend/schema"
)

// dobLayout is the wire format of the date of birth, MMDDYYYY
const dobLayout = "01022006"

type topNParams struct {
	TopN    int    `json:"top_n"`
	DOB     string `json:"dob"`
	Answers []int  `json:"answers"`
	Address string `json:"address"`
	ZipCode string `json:"zip_code"`
}

// topN runs one questionnaire through the matching engine
func (s *Server) topN(c *gin.Context) {
	var params topNParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.TopN < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	dob, err := time.Parse(dobLayout, params.DOB)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDateOfBirth, err)
		return
	}

	results, loc, err := s.engine.TopResults(c, params.TopN, dob, params.Answers, params.Address)
	switch err {
	case nil:
	case engine.ErrLocationUnresolved:
		abortWithEncoding(c, http.StatusBadRequest, errorLocationUnresolved, err)
		return
	case engine.ErrAnswerCountMismatch:
		abortWithEncoding(c, http.StatusBadRequest, errorAnswerCountMismatch, err)
		return
	case engine.ErrInvalidTopN:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.saveAnalytics(c, params, dob, results)

	c.JSON(http.StatusOK, gin.H{
		"services":        results,
		"num_of_services": len(results),
		"user_loc":        loc,
	})
}

// radiusCheck reports whether any service is reachable from the address
func (s *Server) radiusCheck(c *gin.Context) {
	var params struct {
		Address string `json:"address"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	ok, err := s.engine.CheckRadius(c, params.Address)
	if err == engine.ErrLocationUnresolved {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationUnresolved, err)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"radius_status": ok})
}

// saveAnalytics records the submission for platform analytics. Failures are
// logged and never surfaced to the caller.
func (s *Server) saveAnalytics(c *gin.Context, params topNParams, dob time.Time, results []schema.RankedService) {
	serviceIDs := make([]string, 0, len(results))
	for _, r := range results {
		serviceIDs = append(serviceIDs, r.ID)
	}

	now := time.Now().UTC()
	if err := s.store.SaveUserData(c, schema.UserData{
		Name:        uuid.New().String(),
		DOBYear:     dob.Year(),
		ZipCode:     params.ZipCode,
		Answers:     params.Answers,
		TopServices: serviceIDs,
		Time:        now,
	}); err != nil {
		log.WithError(err).Warning("could not save user data")
	}

	if err := s.store.SaveIPHit(c, schema.IPHit{
		Name:      uuid.New().String(),
		IPAddress: c.ClientIP(),
		Endpoint:  "top_n",
		Date:      now,
	}); err != nil {
		log.WithError(err).Warning("could not save ip hit")
	}
}
